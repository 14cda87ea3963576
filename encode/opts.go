package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact renders without newlines or indentation.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// Depth sets the starting nesting depth.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
