package source

import (
	"iter"

	"github.com/arloliu/go-iterscan/axis"
)

// Source is a restartable sequence of positions for one scan slot.
type Source struct {
	seq iter.Seq[axis.Position]
}

// New returns a Source backed by seq. seq must be restartable: every range over it starts
// from the first position. Use Replay for sequences that can only be consumed once.
func New(seq iter.Seq[axis.Position]) Source {
	return Source{seq: seq}
}

// IsZero reports whether s was not created with a sequence.
func (s Source) IsZero() bool { return s.seq == nil }

// Seq returns the underlying sequence.
func (s Source) Seq() iter.Seq[axis.Position] {
	if s.seq == nil {
		return func(func(axis.Position) bool) {}
	}

	return s.seq
}

// Cursor returns a new cursor positioned at the first element of s.
func (s Source) Cursor() *Cursor {
	next, stop := iter.Pull(s.Seq())

	return &Cursor{next: next, stop: stop}
}

// Collect drains s and returns at most limit positions. A limit <= 0 means no limit,
// which never returns for infinite sources.
func (s Source) Collect(limit int) []axis.Position {
	var out []axis.Position
	for p := range s.Seq() {
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out
}

// Cursor is a pull-style iterator over one replay of a Source.
//
// Cursors must be stopped when they are no longer needed, unless they were drained.
type Cursor struct {
	next   func() (axis.Position, bool)
	stop   func()
	done   bool
	pulled int
}

// Next returns the next position and true, or the zero Position and false once the
// replay is exhausted. After exhaustion Next keeps returning false.
func (c *Cursor) Next() (axis.Position, bool) {
	if c.done {
		return axis.Position{}, false
	}

	p, ok := c.next()
	if !ok {
		c.Stop()
		return axis.Position{}, false
	}
	c.pulled++

	return p, true
}

// Stop releases the resources held by the cursor. It is safe to call more than once.
func (c *Cursor) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}

// Done reports whether the cursor has been exhausted or stopped.
func (c *Cursor) Done() bool { return c.done }

// Pulled returns the number of positions returned so far.
func (c *Cursor) Pulled() int { return c.pulled }
