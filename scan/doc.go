// Package scan implements an iterator-driven multi-axis scan engine.
//
// A Scan pairs axes (axis.Node, a single device or a nested group of devices) with position
// sources (source.Source) and moves the axes through those positions, one step at a time:
//
//   - Run performs a linear scan: each step takes the next position of every source, and the
//     scan ends as soon as any source is exhausted.
//   - RunMesh performs a mesh scan over the full cross product of all sources. The first axis
//     cycles fastest and the last axis slowest, like the wheels of an odometer.
//
// In every step the move commands of all axes are issued back to back, then every axis is
// waited on. Axes therefore move concurrently in hardware while the engine stays single threaded.
//
// Hooks:
// A Hooks value receives PreScan, PreStep, PostStep and PostScan callbacks. PostScan runs
// exactly once for every PreScan no matter how the run ends. DefaultHooks save the axis positions
// before the scan and restore them afterwards, so by default a scan returns its axes to where they
// started. A hook returns (*Scan).Abort to end the scan early.
//
// Termination:
// Run and RunMesh report their outcome in a Result rather than an error:
//   - StatusDone: a source was exhausted.
//   - StatusAborted: the context was cancelled or a hook returned an AbortError.
//   - StatusFailed: a hook, axis or source returned an unexpected error or panicked.
//
// Configuration errors, such as a different number of axes and sources, are returned by New.
//
// Example:
//
//	s, err := scan.New(
//		[]axis.Node{axis.Leaf(x), axis.Leaf(y)},
//		[]source.Source{source.Range(2), source.Range(3)},
//		scan.WithHooks(myHooks),
//	)
//	if err != nil {
//		return err
//	}
//	res := s.RunMesh(ctx) // (0,0) (1,0) (0,1) (1,1) (0,2) (1,2)
package scan
