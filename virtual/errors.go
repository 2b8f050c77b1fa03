package virtual

import "errors"

var (
	// ErrNilFunc indicates that a virtual motor was created without a move or position function.
	ErrNilFunc = errors.New("move and position functions are required")

	// ErrInvalidSpeed indicates that a negative speed was configured for a simulated motor.
	ErrInvalidSpeed = errors.New("speed must not be negative")

	// ErrInvalidTolerance indicates that a negative tolerance was configured.
	ErrInvalidTolerance = errors.New("tolerance must not be negative")

	// ErrInvalidLimits indicates a lower soft limit above the upper one.
	ErrInvalidLimits = errors.New("lower limit must not exceed upper limit")

	// ErrDuplicateName indicates that an axis with the same name is already registered.
	ErrDuplicateName = errors.New("axis name already registered")

	// ErrEmptyName indicates that an axis was registered without a name.
	ErrEmptyName = errors.New("axis name is empty")
)
