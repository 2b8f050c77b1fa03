package scan

import (
	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/source"
)

// walker produces the position vector of each scan step.
type walker interface {
	// next returns the positions of the next step, or false when the traversal is exhausted.
	next() ([]axis.Position, bool)
	// stop releases the cursors held by the walker.
	stop()
}

// linearWalker pulls one position from every source per step and ends as soon as any source is exhausted.
type linearWalker struct {
	cursors []*source.Cursor
}

func newLinearWalker(sources []source.Source) *linearWalker {
	return &linearWalker{cursors: cursors(sources)}
}

func (w *linearWalker) next() ([]axis.Position, bool) {
	if len(w.cursors) == 0 {
		return nil, false
	}

	pts := make([]axis.Position, len(w.cursors))
	for i, c := range w.cursors {
		p, ok := c.Next()
		if !ok {
			return nil, false
		}
		pts[i] = p
	}

	return pts, true
}

func (w *linearWalker) stop() {
	stopAll(w.cursors)
}
