package scan

import (
	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/source"
)

// meshWalker visits the cross product of all sources like an odometer: the first source
// cycles fastest and the last source slowest, so a "(fast, fine) x (slow, coarse)" mesh
// moves its first axis most often.
//
// An exhausted source is replaced by a fresh replay and carries into the next source.
// When every source carries on the same advance the mesh is exhausted, and the walker
// starts over from the first point on the following call.
type meshWalker struct {
	sources []source.Source
	cursors []*source.Cursor
	cur     []axis.Position
}

func newMeshWalker(sources []source.Source) *meshWalker {
	return &meshWalker{sources: sources}
}

func (w *meshWalker) next() ([]axis.Position, bool) {
	if len(w.sources) == 0 {
		return nil, false
	}

	if w.cur == nil {
		return w.seed()
	}

	for i := range w.cursors {
		if p, ok := w.cursors[i].Next(); ok {
			w.cur[i] = p
			return w.current(), true
		}

		// carry: restart source i and move on to source i+1
		w.cursors[i].Stop()
		w.cursors[i] = w.sources[i].Cursor()
		p, ok := w.cursors[i].Next()
		if !ok {
			w.reset()
			return nil, false
		}
		w.cur[i] = p
	}

	w.reset()

	return nil, false
}

// seed takes the first position of every source, which is the first mesh point.
func (w *meshWalker) seed() ([]axis.Position, bool) {
	w.cursors = cursors(w.sources)
	cur := make([]axis.Position, len(w.cursors))
	for i, c := range w.cursors {
		p, ok := c.Next()
		if !ok {
			w.reset()
			return nil, false
		}
		cur[i] = p
	}
	w.cur = cur

	return w.current(), true
}

func (w *meshWalker) current() []axis.Position {
	if w.cur == nil {
		return nil
	}
	pts := make([]axis.Position, len(w.cur))
	copy(pts, w.cur)

	return pts
}

func (w *meshWalker) reset() {
	stopAll(w.cursors)
	w.cursors = nil
	w.cur = nil
}

func (w *meshWalker) stop() {
	w.reset()
}
