package plan

import "errors"

var (
	// ErrInvalidPlan is returned when a plan document cannot be decoded or fails validation.
	ErrInvalidPlan = errors.New("invalid plan")
	// ErrInvalidPoint is returned when a point is neither a number nor a list of points.
	ErrInvalidPoint = errors.New("point must be a number or a list of points")
)
