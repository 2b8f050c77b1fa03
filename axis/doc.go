// Package axis defines the capability contract that every controllable axis satisfies
// and the tree types used to move nested groups of axes together.
//
// Axis Contract:
// An Axis is the minimal surface a scan needs from a device:
//   - Move(pos): issue a non-blocking motion command.
//   - Position(): read the current position synchronously.
//   - Wait(ctx): block until the motion triggered by the most recent Move has completed.
//
// Devices that implement the optional Named interface are reported by name in scan status output.
//
// Position and Node Trees:
// A Position is either a scalar float64 or an ordered tuple of positions, nested to any depth.
// A Node is either a leaf wrapping a single Axis or an ordered group of nodes. A group node receives
// a tuple position with the same nesting shape and fans its moves out depth-first before any wait is
// issued, so a group is moved and waited on exactly like the top level of a scan:
//
//	stage := axis.Group(axis.Leaf(x), axis.Leaf(y))
//	_ = stage.Move(axis.Tuple(axis.Scalar(1), axis.Scalar(2)))
//	_ = stage.Wait(ctx)
package axis
