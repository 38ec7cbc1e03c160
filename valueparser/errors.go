package valueparser

import (
	"errors"
)

var (
	ErrUnknownType     = errors.New("unknown type")
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnparsableValue = errors.New("unparsable value")
	ErrInvalidEntry    = errors.New("invalid entry")
)
