package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote escapes v for use as a JSON string literal, including the
// surrounding quotes.  Control characters without a short escape are
// written as \u escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a raw string literal, quotes included, into its text.
// The literal must be at least two bytes, begin and end with '"', hold
// well-formed UTF-8, and use only the JSON escape sequences.  Unpaired
// \u surrogates decode to the replacement character.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return "", ErrNoQuote
	}
	d := []byte(v[1 : len(v)-1])
	b := &strings.Builder{}
	i := 0
	n := len(d)
	for i < n {
		if d[i] != '\\' {
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz <= 1 {
				return "", ErrBadUTF8
			}
			if unicode.IsControl(r) {
				return "", ErrUnicodeControl
			}
			b.Write(d[i : i+sz])
			i += sz
			continue
		}
		i++
		if i == n {
			return "", ErrBadEscape
		}
		switch d[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, err := hex4(d[i+1:])
			if err != nil {
				return "", err
			}
			i += 4
			if utf16.IsSurrogate(r) {
				if i+6 < n && d[i+1] == '\\' && d[i+2] == 'u' {
					r2, err := hex4(d[i+3:])
					if err != nil {
						return "", err
					}
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						b.WriteRune(dec)
						i += 6
						break
					}
				}
				b.WriteRune(utf8.RuneError)
				break
			}
			b.WriteRune(r)
		default:
			return "", ErrBadEscape
		}
		i++
	}
	return b.String(), nil
}

func hex4(d []byte) (rune, error) {
	if len(d) < 4 {
		return 0, ErrBadUnicode
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d[:4]); err != nil {
		return 0, ErrBadUnicode
	}
	return rune(dst[0])<<8 | rune(dst[1]), nil
}
