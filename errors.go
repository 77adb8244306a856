package vector

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned by checked access when the index is not
	// within [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrAllocation is returned when a buffer of the requested capacity
	// cannot be obtained. The container that triggered it is unchanged.
	ErrAllocation = errors.New("vector: allocation failed")
)
