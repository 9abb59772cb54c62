package canvas

import "errors"

var (
	// ErrNodeNotFound is returned for a node that does not exist.
	ErrNodeNotFound = errors.New("canvas: node not found")

	// ErrNodeHidden is returned when the bounds of a hidden node are queried.
	ErrNodeHidden = errors.New("canvas: node is hidden")

	// ErrRefCountUnderflow is returned when a gradient is released more
	// often than it was retained.
	ErrRefCountUnderflow = errors.New("canvas: gradient reference count underflow")

	// ErrUnknownGradient is returned for a gradient key that is not defined.
	ErrUnknownGradient = errors.New("canvas: unknown gradient")
)
