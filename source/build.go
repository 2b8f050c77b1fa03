package source

import (
	"iter"
	"sync"

	"github.com/arloliu/go-iterscan/axis"
)

// Range returns the scalar positions 0, 1, ..., n-1.
func Range(n int) Source {
	return New(func(yield func(axis.Position) bool) {
		for i := 0; i < n; i++ {
			if !yield(axis.Scalar(float64(i))) {
				return
			}
		}
	})
}

// Arange returns start, start+step, ... up to but excluding stop.
func Arange(start, stop, step float64) (Source, error) {
	if step == 0 {
		return Source{}, ErrZeroStep
	}

	return New(func(yield func(axis.Position) bool) {
		for i := 0; ; i++ {
			v := start + float64(i)*step
			if (step > 0 && v >= stop) || (step < 0 && v <= stop) {
				return
			}
			if !yield(axis.Scalar(v)) {
				return
			}
		}
	}), nil
}

// Linspace returns intervals+1 evenly spaced positions from start to stop inclusive.
// Zero intervals yields the single position start.
func Linspace(start, stop float64, intervals int) (Source, error) {
	if intervals < 0 {
		return Source{}, ErrNegativeIntervals
	}

	return New(func(yield func(axis.Position) bool) {
		if intervals == 0 {
			yield(axis.Scalar(start))
			return
		}
		delta := (stop - start) / float64(intervals)
		for i := 0; i <= intervals; i++ {
			v := start + float64(i)*delta
			if i == intervals {
				v = stop
			}
			if !yield(axis.Scalar(v)) {
				return
			}
		}
	}), nil
}

// Values returns the given scalar positions in order.
func Values(values ...float64) Source {
	vs := make([]float64, len(values))
	copy(vs, values)

	return New(func(yield func(axis.Position) bool) {
		for _, v := range vs {
			if !yield(axis.Scalar(v)) {
				return
			}
		}
	})
}

// Points returns the given positions in order. It is typically used with tuple positions
// for grouped axes.
func Points(points ...axis.Position) Source {
	ps := make([]axis.Position, len(points))
	copy(ps, points)

	return New(func(yield func(axis.Position) bool) {
		for _, p := range ps {
			if !yield(p) {
				return
			}
		}
	})
}

// Count returns the infinite sequence start, start+step, start+2*step, ...
func Count(start, step float64) Source {
	return New(func(yield func(axis.Position) bool) {
		for i := 0; ; i++ {
			if !yield(axis.Scalar(start + float64(i)*step)) {
				return
			}
		}
	})
}

// Func returns a source whose i-th position is fn(i). The sequence ends when fn returns false.
func Func(fn func(i int) (axis.Position, bool)) Source {
	return New(func(yield func(axis.Position) bool) {
		for i := 0; ; i++ {
			p, ok := fn(i)
			if !ok || !yield(p) {
				return
			}
		}
	})
}

// Map returns a source applying fn to every position of s.
func Map(s Source, fn func(axis.Position) axis.Position) Source {
	return New(func(yield func(axis.Position) bool) {
		for p := range s.Seq() {
			if !yield(fn(p)) {
				return
			}
		}
	})
}

// Limit returns a source with at most n positions of s.
func Limit(s Source, n int) Source {
	return New(func(yield func(axis.Position) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for p := range s.Seq() {
			if !yield(p) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	})
}

// Zip returns a source of tuples combining the positions of srcs in lockstep.
// It ends as soon as any of srcs is exhausted, and is meant for grouped axes.
func Zip(srcs ...Source) Source {
	members := make([]Source, len(srcs))
	copy(members, srcs)

	return New(func(yield func(axis.Position) bool) {
		if len(members) == 0 {
			return
		}
		cursors := make([]*Cursor, len(members))
		for i, s := range members {
			cursors[i] = s.Cursor()
		}
		defer func() {
			for _, c := range cursors {
				c.Stop()
			}
		}()

		for {
			elems := make([]axis.Position, len(cursors))
			for i, c := range cursors {
				p, ok := c.Next()
				if !ok {
					return
				}
				elems[i] = p
			}
			if !yield(axis.Tuple(elems...)) {
				return
			}
		}
	})
}

// Replay returns a restartable source over a sequence that can only be consumed once.
//
// The underlying sequence is pulled lazily and at most once per position; every position is
// recorded so later replays return the same values. Memory grows with the number of distinct
// positions pulled.
//
// The pull of seq is held open until seq is exhausted. For a sequence that may never end,
// use ReplayWithStop and call its stop function when the source is no longer needed.
func Replay(seq iter.Seq[axis.Position]) Source {
	src, _ := ReplayWithStop(seq)

	return src
}

// ReplayWithStop is like Replay but also returns a function that ends the pull of seq.
// After stop, the source replays only the positions recorded so far. Calling stop more than
// once is harmless.
func ReplayWithStop(seq iter.Seq[axis.Position]) (Source, func()) {
	r := &replay{seq: seq}

	return New(func(yield func(axis.Position) bool) {
		for i := 0; ; i++ {
			p, ok := r.get(i)
			if !ok || !yield(p) {
				return
			}
		}
	}), r.close
}

type replay struct {
	mu   sync.Mutex
	seq  iter.Seq[axis.Position]
	next func() (axis.Position, bool)
	stop func()
	buf  []axis.Position
	done bool
}

func (r *replay) get(i int) (axis.Position, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i >= len(r.buf) {
		if r.done {
			return axis.Position{}, false
		}
		if r.next == nil {
			r.next, r.stop = iter.Pull(r.seq)
		}
		p, ok := r.next()
		if !ok {
			r.done = true
			r.stop()
			return axis.Position{}, false
		}
		r.buf = append(r.buf, p)
	}

	return r.buf[i], true
}

func (r *replay) close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.done = true
	if r.stop != nil {
		r.stop()
	}
}
