package axis

import "errors"

var (
	// ErrNilAxis indicates that a leaf node was built from a nil Axis.
	ErrNilAxis = errors.New("axis is nil")

	// ErrShapeMismatch indicates that a position's nesting shape differs from the node it was applied to.
	ErrShapeMismatch = errors.New("position shape does not match axis shape")

	// ErrOutOfLimits indicates a target position outside the soft limits of an axis.
	ErrOutOfLimits = errors.New("position outside axis limits")
)
