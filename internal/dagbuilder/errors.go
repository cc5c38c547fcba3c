package dagbuilder

import "errors"

var (
	// ErrTooFewNodes is returned when n is smaller than a topology's minimum.
	ErrTooFewNodes = errors.New("dagbuilder: too few nodes")
	// ErrInvalidGrid is returned when rows*cols does not match the requested size.
	ErrInvalidGrid = errors.New("dagbuilder: rows*cols mismatch")
)
