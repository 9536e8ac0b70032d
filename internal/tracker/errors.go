package tracker

import "errors"

var (
	ErrCorruptSnapshot    = errors.New("corrupt binary snapshot")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrMalformedText      = errors.New("malformed text snapshot")
	ErrUnencodableField   = errors.New("field can't be written to a text snapshot")
)
