package scan

import (
	"context"

	"github.com/arloliu/go-iterscan/axis"
)

// DryRun returns the position vectors a linear scan would visit, without moving any axis
// or calling any hook. It stops early, returning the points collected so far, when ctx is done;
// use a cancellable context for infinite sources.
func (s *Scan) DryRun(ctx context.Context) [][]axis.Position {
	return s.dryRun(ctx, newLinearWalker(s.sources))
}

// DryRunMesh returns the position vectors a mesh scan would visit, without moving any axis
// or calling any hook.
func (s *Scan) DryRunMesh(ctx context.Context) [][]axis.Position {
	return s.dryRun(ctx, newMeshWalker(s.sources))
}

func (s *Scan) dryRun(ctx context.Context, w walker) [][]axis.Position {
	defer w.stop()

	var points [][]axis.Position
	for ctx.Err() == nil {
		pts, ok := w.next()
		if !ok {
			s.logger.Debug("reached end of test scan", "points", len(points))
			return points
		}
		points = append(points, pts)
		if s.verbose {
			s.logger.Debug("test scan point", "index", len(points), "positions", positionStrings(pts))
		}
	}
	s.logger.Debug("test scan interrupted", "points", len(points))

	return points
}
