package token

import (
	"errors"
)

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrKeyword        = errors.New("bad keyword")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrUnicodeControl = errors.New("unicode control")
	ErrNoQuote        = errors.New("missing quote")

	// errFinish guards the accumulator: finishing the TNone sentinel
	// with buffered material means the dispatch logic is broken.
	errFinish = errors.New("internal error: finish on empty token")
)
