package parse

import (
	"fmt"

	"github.com/minoritea/jsonparser/ir"
	"github.com/minoritea/jsonparser/token"
)

// Parse tokenizes d and builds the document tree, returning the
// top-level value node.  The TopType root remains reachable through the
// value's Parent back-reference.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts...)
}

// ParseTokens builds the document tree from an already tokenized
// stream.  Whitespace tokens are transparent.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	top := &ir.Node{Type: ir.TopType}
	cur := top
	var last *token.Pos
	for i := range toks {
		t := &toks[i]
		if t.Type.IsWhite() {
			continue
		}
		last = t.Pos
		switch t.Type {
		case token.TTrue, token.TFalse:
			if err := attach(cur, ir.FromBool(t.Type == token.TTrue), t, pOpts); err != nil {
				return nil, err
			}
		case token.TNull:
			if err := attach(cur, ir.Null(), t, pOpts); err != nil {
				return nil, err
			}
		case token.TNumber:
			if err := attach(cur, ir.FromNumber(string(t.Bytes)), t, pOpts); err != nil {
				return nil, err
			}
		case token.TString:
			s, err := token.Unquote(string(t.Bytes))
			if err != nil {
				return nil, fmt.Errorf("%w: %w %s", ErrParse, err, t.Pos)
			}
			if cur.Type == ir.ObjectType {
				field := &ir.Node{Type: ir.FieldType, Key: s}
				if err := cur.AddChild(field); err != nil {
					return nil, fmt.Errorf("%w: %w %s", ErrParse, err, t.Pos)
				}
				trackPos(field, t.Pos, pOpts)
				cur = field
				continue
			}
			if err := attach(cur, ir.FromString(s), t, pOpts); err != nil {
				return nil, err
			}
		case token.TLCurl:
			obj := &ir.Node{Type: ir.ObjectType}
			if err := attach(cur, obj, t, pOpts); err != nil {
				return nil, err
			}
			cur = obj
		case token.TRCurl:
			switch cur.Type {
			case ir.ObjectType:
				if err := closeObject(cur, t); err != nil {
					return nil, err
				}
				cur = cur.Parent
			case ir.FieldType:
				obj := cur.Parent
				if err := closeObject(obj, t); err != nil {
					return nil, err
				}
				cur = obj.Parent
			default:
				return nil, unexpected(t, cur)
			}
		case token.TLSquare:
			arr := &ir.Node{Type: ir.ArrayType}
			if err := attach(cur, arr, t, pOpts); err != nil {
				return nil, err
			}
			cur = arr
		case token.TRSquare:
			if cur.Type != ir.ArrayType {
				return nil, unexpected(t, cur)
			}
			if err := checkCommas(cur.Commas, len(cur.Values), t); err != nil {
				return nil, err
			}
			cur = cur.Parent
		case token.TColon:
			if cur.Type != ir.FieldType {
				return nil, unexpected(t, cur)
			}
			if cur.HasColon {
				return nil, fmt.Errorf("%w: %w %s", ErrParse, ErrDuplicateColon, t.Pos)
			}
			cur.HasColon = true
		case token.TComma:
			switch cur.Type {
			case ir.FieldType:
				cur = cur.Parent
				cur.Commas++
			case ir.ArrayType:
				cur.Commas++
			default:
				return nil, unexpected(t, cur)
			}
		default:
			return nil, unexpected(t, cur)
		}
	}
	if cur != top {
		return nil, fmt.Errorf("%w: %w %s", ErrParse, ErrUnclosed, lastPos(last))
	}
	res := top.Value()
	if res == nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrEmptyDoc)
	}
	return res, nil
}

// attach funnels every value through ir.AddChild, first requiring that
// a field cursor has consumed its colon.
func attach(cur, c *ir.Node, t *token.Token, opts *parseOpts) error {
	if cur.Type == ir.FieldType && !cur.HasColon {
		return fmt.Errorf("%w: %w before %q %s", ErrParse, ErrMissingColon, string(t.Bytes), t.Pos)
	}
	if err := cur.AddChild(c); err != nil {
		return fmt.Errorf("%w: %w %s", ErrParse, err, t.Pos)
	}
	trackPos(c, t.Pos, opts)
	return nil
}

func closeObject(obj *ir.Node, t *token.Token) error {
	for _, f := range obj.Fields {
		if !f.HasColon {
			return fmt.Errorf("%w: %w for %q %s", ErrParse, ErrMissingColon, f.Key, t.Pos)
		}
		if f.Value() == nil {
			return fmt.Errorf("%w: %w for %q %s", ErrParse, ErrNoValue, f.Key, t.Pos)
		}
	}
	return checkCommas(obj.Commas, len(obj.Fields), t)
}

// checkCommas enforces that separators number exactly one less than
// the children.
func checkCommas(commas, children int, t *token.Token) error {
	want := children - 1
	if children == 0 {
		want = 0
	}
	switch {
	case commas < want:
		return fmt.Errorf("%w: %w %s", ErrParse, ErrMissingComma, t.Pos)
	case commas > want:
		return fmt.Errorf("%w: %w %s", ErrParse, ErrExtraComma, t.Pos)
	}
	return nil
}

func unexpected(t *token.Token, cur *ir.Node) error {
	return fmt.Errorf("%w: unexpected %q in %s %s", ErrParse, string(t.Bytes), cur.Type, t.Pos)
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func lastPos(p *token.Pos) *token.Pos {
	if p != nil {
		return p
	}
	return &token.Pos{}
}
