package parse

import (
	"errors"
	"testing"

	"github.com/minoritea/jsonparser/encode"
	"github.com/minoritea/jsonparser/ir"
	"github.com/minoritea/jsonparser/token"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `null`,
		},
		{
			in: `true`,
		},
		{
			in: `false`,
		},
		{
			in: `22`,
		},
		{
			in: `0`,
		},
		{
			in: `-1.5e3`,
		},
		{
			in: `1e14`,
		},
		{
			in: `"hello"`,
		},
		{
			in: `""`,
		},
		{
			in: `{}`,
		},
		{
			in: `[]`,
		},
		{
			in: `[[]]`,
		},
		{
			in: `[1,2]`,
		},
		{
			in: `[1,[2,[3]]]`,
		},
		{
			in: `[[[1],2],3]`,
		},
		{
			in: `[1, "two", true, null]`,
		},
		{
			in: `{"a": 1}`,
		},
		{
			in: `{"a": {"b": 9}, "c": {"d": 8}}`,
		},
		{
			in: `{"a": [1,2], "f[0]": [0,1,2,"three"]}`,
		},
		{
			in: `[0, {"f": 2, "g": 3}]`,
		},
		{
			in: `{"null": null}`,
		},
		{
			in: `{"a\"b": "esc\\aped"}`,
		},
		{
			in: "\n\t {\n\"a\" : \r\n[ 1 , 2 ]\n}\n",
		},
		{
			in: `{"deep": {"er": {"est": [{"x": null}]}}}`,
		},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		t.Logf("\n%s\n", encode.MustString(node))
	}
}

func TestParseErrs(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrEmptyDoc},
		{in: " \n\t ", e: ErrEmptyDoc},
		{in: `{`, e: ErrUnclosed},
		{in: `[`, e: ErrUnclosed},
		{in: `{"a":`, e: ErrUnclosed},
		{in: `{"a": 1`, e: ErrUnclosed},
		{in: `[1, [2]`, e: ErrUnclosed},
		{in: `[1 2]`, e: ErrMissingComma},
		{in: `{"a": 1, "b": 2 "c": 3}`, e: ir.ErrFieldValue},
		{in: `[1,]`, e: ErrExtraComma},
		{in: `[,1]`, e: ErrExtraComma},
		{in: `[1,,2]`, e: ErrExtraComma},
		{in: `{"a": 1,}`, e: ErrExtraComma},
		{in: `{"a"::1}`, e: ErrDuplicateColon},
		{in: `{"a" 1}`, e: ErrMissingColon},
		{in: `{"a"}`, e: ErrMissingColon},
		{in: `{"a":}`, e: ErrNoValue},
		{in: `1 2`, e: ir.ErrTopValue},
		{in: `{} []`, e: ir.ErrTopValue},
		{in: `{1: 2}`, e: ir.ErrChildKind},
		{in: `}`, e: ErrParse},
		{in: `]`, e: ErrParse},
		{in: `:`, e: ErrParse},
		{in: `,`, e: ErrParse},
		{in: `[}`, e: ErrParse},
		{in: `{"a": 1]`, e: ErrParse},
		{in: `[1, 2}`, e: ErrParse},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: no error, want %v", pt.in, pt.e)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap the parse sentinel", pt.in, err)
		}
	}
}

func TestParseTree(t *testing.T) {
	node, err := Parse([]byte(`{"a": [1, true], "b": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s, want ObjectType", node.Type)
	}
	if node.Parent == nil || node.Parent.Type != ir.TopType {
		t.Fatal("value is not owned by a top node")
	}
	if root := node.Root(); root.Type != ir.TopType {
		t.Errorf("root is %s", root.Type)
	}
	arr := ir.Get(node, "a")
	if arr == nil || arr.Type != ir.ArrayType {
		t.Fatalf("field a: %v", arr)
	}
	if len(arr.Values) != 2 {
		t.Fatalf("field a has %d values", len(arr.Values))
	}
	if arr.Values[0].Number != "1" {
		t.Errorf("a[0] = %q", arr.Values[0].Number)
	}
	if !arr.Values[1].Bool {
		t.Errorf("a[1] = %v", arr.Values[1].Bool)
	}
	if b := ir.Get(node, "b"); b == nil || b.Type != ir.NullType {
		t.Errorf("field b: %v", b)
	}
}

func TestParseNumberText(t *testing.T) {
	// number payloads stay raw, unvalidated text
	for _, in := range []string{`0`, `-0`, `1e14`, `-1.5e+3`, `0.25`} {
		node, err := Parse([]byte(in))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if node.Type != ir.NumberType || node.Number != in {
			t.Errorf("%q: got %s %q", in, node.Type, node.Number)
		}
	}
}

func TestParseStringDecodes(t *testing.T) {
	node, err := Parse([]byte(`{"k\n1": "vA"}`))
	if err != nil {
		t.Fatal(err)
	}
	f := node.Fields[0]
	if f.Key != "k\n1" {
		t.Errorf("key = %q", f.Key)
	}
	if got := f.Value().String; got != "vA" {
		t.Errorf("value = %q", got)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	opt := ParsePositions(positions)
	if got := GetPositions(opt); len(got) != 0 || got == nil {
		t.Fatal("option does not carry the positions map")
	}
	node, err := Parse([]byte("{\n  \"a\": 1\n}"), opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) == 0 {
		t.Fatal("no positions recorded")
	}
	val := ir.Get(node, "a")
	pos := positions[val]
	if pos == nil {
		t.Fatal("no position for value node")
	}
	if l, c := pos.LineCol(); l != 1 || c != 7 {
		t.Errorf("value pos: line=%d col=%d, want 1,7", l, c)
	}
}

func TestParseRoundTrip(t *testing.T) {
	docs := []string{
		`{"a": [1, 2], "b": {"c": null}, "d": "text"}`,
		`[true, false, null, 0, "s"]`,
		`{"nested": [[], {}, [{"x": 1}]]}`,
	}
	for _, in := range docs {
		a, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		text := encode.MustString(a)
		b, err := Parse([]byte(text))
		if err != nil {
			t.Fatalf("rendered %q: %v", text, err)
		}
		if ir.Compare(a, b) != 0 {
			t.Errorf("%q: round trip changed the tree:\n%s", in, text)
		}
		if again := encode.MustString(b); again != text {
			t.Errorf("%q: render not idempotent:\n%s\nvs\n%s", in, text, again)
		}
	}
}
