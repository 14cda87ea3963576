package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minoritea/jsonparser/ir"
	"github.com/minoritea/jsonparser/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	line, col     int
	depth, indent int
	compact       bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w followed by a trailing newline.  node must
// be a value node; encoding the TopType root or a bare FieldType is a
// programmer error.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s node", ErrEncoding, node.Type)
	}
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeComma(w io.Writer, es *EncState, cType ir.Type) error {
	sep := ","
	es.col += len(sep)
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Object encoding

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	es.col++
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, field.Key, es); err != nil {
			return err
		}
		val := field.Value()
		if val == nil {
			return fmt.Errorf("%w: field %q has no value", ErrEncoding, field.Key)
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeComma(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if n != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	es.col++
	return writeString(w, "}")
}

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ":"
	if !es.compact {
		sep = ": "
	}
	f = token.Quote(f)
	fColor := f
	if es.Color != nil {
		fColor = applyColor(es, ir.ObjectType, FieldColor, f)
		sep = applyColor(es, ir.ObjectType, SepColor, sep)
	}
	if err := writeString(w, fColor+sep); err != nil {
		return err
	}
	es.col += len(f) + len(sep)
	return nil
}

// Array encoding

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	es.col++
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeComma(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if n != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	es.col++
	return writeString(w, "]")
}

// Leaf encoding

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	// re-escape on output so parse/encode round trips
	v := token.Quote(node.String)
	es.col += len(v)
	v = applyValueColor(es, ir.StringType, v)
	return writeString(w, v)
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v := node.Number
	es.col += len(v)
	v = applyValueColor(es, ir.NumberType, v)
	return writeString(w, v)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	es.col += len(v)
	v = applyValueColor(es, ir.BoolType, v)
	return writeString(w, v)
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := "null"
	es.col += len(v)
	v = applyValueColor(es, ir.NullType, v)
	return writeString(w, v)
}
