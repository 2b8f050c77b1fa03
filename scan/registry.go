package scan

import (
	"fmt"
	"strconv"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/source"
)

// Add registers an axis with its source. There is no uniqueness constraint on axes.
//
// It returns an error wrapping ErrConfiguration when the axis tree contains a nil axis, the source
// is the zero Source, or the first position of the source does not match the shape of the axis.
func (s *Scan) Add(n axis.Node, src source.Source) error {
	if s.running.Load() {
		return ErrScanRunning
	}

	idx := len(s.axes)
	if err := n.Validate(); err != nil {
		return fmt.Errorf("%w: axis %d: %w", ErrConfiguration, idx, err)
	}
	if src.IsZero() {
		return fmt.Errorf("%w: source %d is empty", ErrConfiguration, idx)
	}
	if err := checkFirstShape(n, src); err != nil {
		return fmt.Errorf("%w: axis %d: %w", ErrConfiguration, idx, err)
	}

	s.axes = append(s.axes, n)
	s.sources = append(s.sources, src)

	return nil
}

// Len returns the number of registered axis/source pairs.
func (s *Scan) Len() int { return len(s.axes) }

func validateCounts(axes []axis.Node, sources []source.Source) error {
	if len(axes) != len(sources) {
		return fmt.Errorf("%w: number of axes (%d) must equal number of sources (%d)",
			ErrConfiguration, len(axes), len(sources))
	}

	return nil
}

// checkFirstShape pulls the first position from a fresh replay of src and checks it against n.
// An empty source passes, it simply yields no steps.
func checkFirstShape(n axis.Node, src source.Source) error {
	c := src.Cursor()
	defer c.Stop()

	p, ok := c.Next()
	if !ok {
		return nil
	}

	return n.Check(p)
}

// cursors returns a fresh replay cursor for every registered source, in registration order.
func cursors(sources []source.Source) []*source.Cursor {
	cs := make([]*source.Cursor, len(sources))
	for i, src := range sources {
		cs[i] = src.Cursor()
	}

	return cs
}

func stopAll(cs []*source.Cursor) {
	for _, c := range cs {
		if c != nil {
			c.Stop()
		}
	}
}

func itoa(i int) string { return strconv.Itoa(i) }
