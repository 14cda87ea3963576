package parse

import (
	"errors"
)

var (
	ErrParse          = errors.New("parse error")
	ErrMissingComma   = errors.New("missing comma")
	ErrExtraComma     = errors.New("extra comma")
	ErrDuplicateColon = errors.New("duplicate colon")
	ErrMissingColon   = errors.New("missing colon")
	ErrNoValue        = errors.New("field has no value")
	ErrUnclosed       = errors.New("unclosed structure")
	ErrEmptyDoc       = errors.New("empty document")
)
