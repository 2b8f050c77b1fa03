package axis

import "context"

// Axis is the capability set a single controllable device must provide to take part in a scan.
type Axis interface {
	// Move issues a non-blocking motion command towards pos.
	Move(pos float64) error
	// Position returns the current position synchronously.
	Position() (float64, error)
	// Wait blocks until the motion triggered by the most recent Move has completed
	// or ctx is done, in which case ctx.Err() is returned.
	Wait(ctx context.Context) error
}

// Named is implemented by axes that have a human readable name.
type Named interface {
	Name() string
}

// Limited is implemented by axes with soft limits.
type Limited interface {
	WithinLimits(pos float64) bool
}

// NameOf returns the name of a, or def if a does not implement Named.
func NameOf(a Axis, def string) string {
	if n, ok := a.(Named); ok && n.Name() != "" {
		return n.Name()
	}

	return def
}
