package scan

import (
	"fmt"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/source"
)

// NewAbsolute creates a single axis scan from start to stop in the given number of equal
// intervals, visiting intervals+1 positions.
func NewAbsolute(a axis.Axis, start, stop float64, intervals int, opts ...Option) (*Scan, error) {
	return NewAbsoluteMulti([]axis.Axis{a}, []float64{start}, []float64{stop}, intervals, opts...)
}

// NewRelative creates a single axis scan from pos+from to pos+to in the given number of equal
// intervals, where pos is the position of the axis when NewRelative is called.
func NewRelative(a axis.Axis, from, to float64, intervals int, opts ...Option) (*Scan, error) {
	return NewRelativeMulti([]axis.Axis{a}, []float64{from}, []float64{to}, intervals, opts...)
}

// NewAbsoluteMulti creates a linear scan moving every axis in axes from starts[i] to stops[i]
// in the same number of equal intervals, so all axes step together.
//
// Axes implementing axis.Limited must accept both end points.
func NewAbsoluteMulti(axes []axis.Axis, starts, stops []float64, intervals int, opts ...Option) (*Scan, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrConfiguration)
	}
	if len(starts) != len(axes) || len(stops) != len(axes) {
		return nil, fmt.Errorf("%w: %d axes with %d start and %d stop positions",
			ErrConfiguration, len(axes), len(starts), len(stops))
	}

	nodes := make([]axis.Node, len(axes))
	sources := make([]source.Source, len(axes))
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("%w: axis %d: %w", ErrConfiguration, i, axis.ErrNilAxis)
		}
		if err := checkLimits(a, starts[i], stops[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}

		src, err := source.Linspace(starts[i], stops[i], intervals)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		nodes[i] = axis.Leaf(a)
		sources[i] = src
	}

	return New(nodes, sources, opts...)
}

// NewRelativeMulti is like NewAbsoluteMulti with positions given as offsets from the position
// of each axis when NewRelativeMulti is called.
func NewRelativeMulti(axes []axis.Axis, from, to []float64, intervals int, opts ...Option) (*Scan, error) {
	if len(from) != len(axes) || len(to) != len(axes) {
		return nil, fmt.Errorf("%w: %d axes with %d start and %d stop offsets",
			ErrConfiguration, len(axes), len(from), len(to))
	}

	starts := make([]float64, len(axes))
	stops := make([]float64, len(axes))
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("%w: axis %d: %w", ErrConfiguration, i, axis.ErrNilAxis)
		}
		pos, err := a.Position()
		if err != nil {
			return nil, fmt.Errorf("read start position of %s: %w", axis.NameOf(a, "?"), err)
		}
		starts[i] = pos + from[i]
		stops[i] = pos + to[i]
	}

	return NewAbsoluteMulti(axes, starts, stops, intervals, opts...)
}

func checkLimits(a axis.Axis, positions ...float64) error {
	l, ok := a.(axis.Limited)
	if !ok {
		return nil
	}
	for _, pos := range positions {
		if !l.WithinLimits(pos) {
			return fmt.Errorf("%w: %s to %g", axis.ErrOutOfLimits, axis.NameOf(a, "?"), pos)
		}
	}

	return nil
}
