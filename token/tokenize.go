package token

import (
	"fmt"
	"unicode/utf8"
)

// tkState is the tokenizer accumulator: at most one multi-character
// token is in progress at a time.
type tkState struct {
	pending TokenType // TNone when no token is open
	start   int       // offset of the first byte of the pending token
	escaped bool      // backslash toggle, consulted only inside TString
}

var keywords = map[TokenType][]byte{
	TTrue:  []byte("true"),
	TFalse: []byte("false"),
	TNull:  []byte("null"),
}

// Tokenize scans src into tokens, appending to dst.  Whitespace runs are
// retained as TWhite tokens.  The returned tokens alias src.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	ts := &tkState{}
	d := src
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		if c == '\n' {
			posDoc.nl(i)
		}
		switch ts.pending {
		case TTrue, TFalse, TNull:
			kw := keywords[ts.pending]
			k := i - ts.start
			if c != kw[k] {
				return nil, NewTokenizeErr(
					fmt.Errorf("%w: %q", ErrKeyword, string(d[ts.start:i+1])),
					posDoc.Pos(i))
			}
			if k == len(kw)-1 {
				// keywords self-terminate by length
				dst = append(dst, Token{
					Type:  ts.pending,
					Pos:   posDoc.Pos(ts.start),
					Bytes: d[ts.start : i+1],
				})
				ts.pending = TNone
			}
			i++
			continue

		case TNumber:
			switch c {
			case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
				'+', '-', '.', 'e', 'E':
				i++
				continue
			}
			var err error
			dst, err = ts.finish(dst, d, i, posDoc)
			if err != nil {
				return nil, err
			}
			// c dispatches fresh below

		case TString:
			if c == '\\' {
				ts.escaped = !ts.escaped
				i++
				continue
			}
			if c == '"' && !ts.escaped {
				dst = append(dst, Token{
					Type:  TString,
					Pos:   posDoc.Pos(ts.start),
					Bytes: d[ts.start : i+1],
				})
				ts.pending = TNone
				i++
				continue
			}
			ts.escaped = false
			i++
			continue

		case TWhite:
			switch c {
			case ' ', '\t', '\n', '\r':
				i++
				continue
			}
			var err error
			dst, err = ts.finish(dst, d, i, posDoc)
			if err != nil {
				return nil, err
			}
		}

		// top-level dispatch
		switch c {
		case ' ', '\t', '\n', '\r':
			ts.pending = TWhite
			ts.start = i
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
		case '"':
			ts.pending = TString
			ts.start = i
			ts.escaped = false
		case 't':
			ts.pending = TTrue
			ts.start = i
		case 'f':
			ts.pending = TFalse
			ts.start = i
		case 'n':
			ts.pending = TNull
			ts.start = i
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-':
			ts.pending = TNumber
			ts.start = i
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz <= 1 {
				return nil, UnexpectedErr("bad utf8", posDoc.Pos(i))
			}
			return nil, UnexpectedErr(fmt.Sprintf("%q", r), posDoc.Pos(i))
		}
		i++
	}
	return ts.finish(dst, d, n, posDoc)
}

// finish converts the accumulated bytes plus the pending kind into a
// Token and resets the accumulator.
func (ts *tkState) finish(dst []Token, d []byte, end int, posDoc *PosDoc) ([]Token, error) {
	pos := posDoc.Pos(ts.start)
	switch ts.pending {
	case TNone:
		return dst, nil
	case TWhite:
		dst = append(dst, Token{Type: TWhite, Pos: pos, Bytes: d[ts.start:end]})
	case TNumber:
		dst = append(dst, Token{Type: TNumber, Pos: pos, Bytes: d[ts.start:end]})
	case TTrue, TFalse, TNull:
		// complete keywords are emitted in place, so a pending one
		// here was cut short by end of input
		return nil, NewTokenizeErr(
			fmt.Errorf("%w: %q", ErrKeyword, string(d[ts.start:end])), pos)
	case TString:
		return nil, NewTokenizeErr(
			fmt.Errorf("%w quoted string", ErrUnterminated), pos)
	default:
		return nil, NewTokenizeErr(errFinish, pos)
	}
	ts.pending = TNone
	return dst, nil
}
