package scan

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/internal/util"
	"github.com/arloliu/go-iterscan/logger"
	"github.com/arloliu/go-iterscan/source"
)

// Scan moves one or more axes through the positions of their sources, invoking hooks around
// the whole run and around every step.
//
// A Scan may be run any number of times, sequentially: every run replays its sources from
// the beginning. It is not safe for concurrent runs.
type Scan struct {
	axes    []axis.Node
	sources []source.Source
	hooks   Hooks
	logger  logger.Logger
	verbose bool
	runID   string

	running  atomic.Bool
	mode     Mode
	curStep  int
	mesh     *meshWalker
	saved    []axis.Position
	hasSaved bool
}

// New creates a scan pairing axes[i] with sources[i].
//
// It returns an error wrapping ErrConfiguration when the number of axes and sources differ, when an
// axis is nil, or when the first position of a source does not match the shape of its axis.
func New(axes []axis.Node, sources []source.Source, opts ...Option) (*Scan, error) {
	s := &Scan{
		logger:  logger.GetLogger(),
		verbose: true,
	}

	for _, opt := range opts {
		if opt == nil {
			return nil, ErrOptionNil
		}
		if err := opt.apply(s); err != nil {
			return nil, err
		}
	}

	if err := validateCounts(axes, sources); err != nil {
		return nil, err
	}

	for i := range axes {
		if err := s.Add(axes[i], sources[i]); err != nil {
			return nil, err
		}
	}

	if s.hooks == nil {
		s.logger.Warn("no hooks supplied, using default hooks")
		s.hooks = DefaultHooks{}
	}

	return s, nil
}

// Axes returns the axes of the scan.
//
// The returned slice is a copy and safe to mutate; the nodes refer to the same devices as the scan.
func (s *Scan) Axes() []axis.Node {
	return util.CloneSlice(s.axes, 0)
}

// Sources returns the sources of the scan.
//
// Sources are restartable, so iterating the returned sources never affects the scan.
func (s *Scan) Sources() []source.Source {
	return util.CloneSlice(s.sources, 0)
}

// Hooks returns the active hooks.
func (s *Scan) Hooks() Hooks { return s.hooks }

// Logger returns the logger of the scan.
func (s *Scan) Logger() logger.Logger { return s.logger }

// Mode returns the traversal mode of the current or last run.
func (s *Scan) Mode() Mode { return s.mode }

// CurrentStep returns the 1-based step number of the running scan, or 0 when no run is mid-scan.
func (s *Scan) CurrentStep() int { return s.curStep }

// CurrentMesh returns the positions of the current mesh point during a mesh run, or nil.
func (s *Scan) CurrentMesh() []axis.Position {
	if s.mesh == nil {
		return nil
	}

	return s.mesh.current()
}

// Positions reads the current position of every axis. Grouped axes are returned as tuples.
func (s *Scan) Positions() ([]axis.Position, error) {
	positions := make([]axis.Position, len(s.axes))
	for i, n := range s.axes {
		p, err := n.Position()
		if err != nil {
			return nil, err
		}
		positions[i] = p
	}

	return positions, nil
}

// Wait blocks until every axis of the scan has finished moving.
func (s *Scan) Wait(ctx context.Context) error {
	for _, n := range s.axes {
		if err := n.Wait(ctx); err != nil {
			return err
		}
	}

	return nil
}

// MoveToFirstPoint issues the moves to the first position of every source without waiting.
//
// It may be called from a pre-scan hook to start moving axes to their start positions earlier
// than the first step. Call Wait to block until they arrive.
func (s *Scan) MoveToFirstPoint() error {
	w := newLinearWalker(s.sources)
	defer w.stop()

	pts, ok := w.next()
	if !ok {
		return nil
	}

	return s.move(pts)
}

// Abort returns an AbortError carrying msg. Hooks return it to end the scan early:
//
//	func (h *myHooks) PostStep(_ context.Context, s *scan.Scan) error {
//		if h.lost() {
//			return s.Abort("beam lost")
//		}
//		return nil
//	}
func (s *Scan) Abort(msg string) error {
	return &AbortError{Message: msg}
}

// move checks every position against its axis, then issues all move commands in registration order.
func (s *Scan) move(pts []axis.Position) error {
	if len(pts) != len(s.axes) {
		return fmt.Errorf("%w: got %d positions for %d axes", axis.ErrShapeMismatch, len(pts), len(s.axes))
	}
	for i, n := range s.axes {
		if err := n.Check(pts[i]); err != nil {
			return err
		}
	}
	for i, n := range s.axes {
		if err := n.Move(pts[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scan) axisName(i int) string {
	name := s.axes[i].Name()
	if name == "?" {
		return "axis" + itoa(i)
	}

	return name
}
