package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type lexTest struct {
	in    string
	types []TokenType
	e     error
}

func tokenTypes(toks []Token) []TokenType {
	res := make([]TokenType, 0, len(toks))
	for i := range toks {
		res = append(res, toks[i].Type)
	}
	return res
}

func TestTokenize(t *testing.T) {
	lts := []lexTest{
		{
			in:    `{}`,
			types: []TokenType{TLCurl, TRCurl},
		},
		{
			in:    `[]`,
			types: []TokenType{TLSquare, TRSquare},
		},
		{
			in:    `true`,
			types: []TokenType{TTrue},
		},
		{
			in:    `false`,
			types: []TokenType{TFalse},
		},
		{
			in:    `null`,
			types: []TokenType{TNull},
		},
		{
			in:    `0`,
			types: []TokenType{TNumber},
		},
		{
			in:    `-12.5e+7`,
			types: []TokenType{TNumber},
		},
		{
			in:    `"hello"`,
			types: []TokenType{TString},
		},
		{
			in:    `"a\"b"`,
			types: []TokenType{TString},
		},
		{
			in:    `"\\"`,
			types: []TokenType{TString},
		},
		{
			// a whitespace run is one token
			in:    " \t\r\n  {",
			types: []TokenType{TWhite, TLCurl},
		},
		{
			in: `{"a": [1, true, null]}`,
			types: []TokenType{
				TLCurl, TString, TColon, TWhite, TLSquare,
				TNumber, TComma, TWhite, TTrue, TComma, TWhite,
				TNull, TRSquare, TRCurl,
			},
		},
		{
			// keywords self-terminate, no lookahead needed
			in:    `[true,false]`,
			types: []TokenType{TLSquare, TTrue, TComma, TFalse, TRSquare},
		},
		{
			// numbers terminate on the following byte
			in:    `1]`,
			types: []TokenType{TNumber, TRSquare},
		},
		{
			in:    ``,
			types: []TokenType{},
		},
		{
			in: `tru`,
			e:  ErrKeyword,
		},
		{
			in: `trux`,
			e:  ErrKeyword,
		},
		{
			in: `nul`,
			e:  ErrKeyword,
		},
		{
			in: `falze`,
			e:  ErrKeyword,
		},
		{
			in: `"abc`,
			e:  ErrUnterminated,
		},
		{
			in: `"abc\"`,
			e:  ErrUnterminated,
		},
	}
	for i := range lts {
		lt := &lts[i]
		toks, err := Tokenize(nil, []byte(lt.in))
		if lt.e != nil {
			if err == nil {
				t.Errorf("%q: no error, want %v", lt.in, lt.e)
				continue
			}
			if !errors.Is(err, lt.e) {
				t.Errorf("%q: got %v, want %v", lt.in, err, lt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", lt.in, err)
			continue
		}
		if d := cmp.Diff(lt.types, tokenTypes(toks)); d != "" {
			t.Errorf("%q: types (-want +got):\n%s", lt.in, d)
		}
	}
}

func TestTokenizeUnexpected(t *testing.T) {
	for _, in := range []string{`@`, `truee`, `{a: 1}`, `+1`, "\xff"} {
		_, err := Tokenize(nil, []byte(in))
		if err == nil {
			t.Errorf("%q: no error", in)
			continue
		}
		tkErr := &TokenizeErr{}
		if !errors.As(err, &tkErr) {
			t.Errorf("%q: error %v is not a TokenizeErr", in, err)
		}
	}
}

func TestTokenizeBytes(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`{"k": -1.5e3}`))
	if err != nil {
		t.Fatal(err)
	}
	wants := []string{`{`, `"k"`, `:`, ` `, `-1.5e3`, `}`}
	if len(toks) != len(wants) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wants))
	}
	for i, want := range wants {
		if got := string(toks[i].Bytes); got != want {
			t.Errorf("token %d: got %q, want %q", i, got, want)
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("{\n  \"a\": 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	// tokens: { white "a" : white 1 white }
	find := func(tt TokenType) *Token {
		for i := range toks {
			if toks[i].Type == tt {
				return &toks[i]
			}
		}
		t.Fatalf("no %s token", tt)
		return nil
	}
	str := find(TString)
	if l, c := str.Pos.LineCol(); l != 1 || c != 2 {
		t.Errorf("string pos: got line=%d col=%d, want 1,2", l, c)
	}
	rcurl := find(TRCurl)
	if l, c := rcurl.Pos.LineCol(); l != 2 || c != 0 {
		t.Errorf("rcurl pos: got line=%d col=%d, want 2,0", l, c)
	}
}

func TestTokenizeAppends(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	toks, err = Tokenize(toks, []byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TLSquare, TRSquare, TLCurl, TRCurl}
	if d := cmp.Diff(want, tokenTypes(toks)); d != "" {
		t.Errorf("types (-want +got):\n%s", d)
	}
}
