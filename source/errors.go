package source

import "errors"

var (
	// ErrZeroStep indicates that a stepped range was requested with a zero step.
	ErrZeroStep = errors.New("step must not be zero")

	// ErrNegativeIntervals indicates that a linear space was requested with a negative interval count.
	ErrNegativeIntervals = errors.New("number of intervals must not be negative")
)
