package ir

import (
	"errors"
)

var (
	errInternal = errors.New("internal error")

	ErrChildKind  = errors.New("wrong child kind")
	ErrTopValue   = errors.New("top already has a value")
	ErrFieldValue = errors.New("field already has a value")
)
