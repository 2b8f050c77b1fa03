// Package virtual provides axes that are not backed by a single hardware channel.
//
// Motor adapts plain functions to the axis.Axis contract, which is how calculated axes (for
// example a photon energy driving several motors) are exposed to scans. SimMotor simulates a
// motor with a finite speed and a position tolerance, for dry runs of scan plans and for tests.
// Registry keeps axes by name and is safe for concurrent use.
package virtual
