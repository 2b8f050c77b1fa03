package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates an invalid scan configuration, such as a different number of
	// axes and sources, a nil axis, an empty source or a source whose positions do not match
	// the nesting shape of its axis.
	ErrConfiguration = errors.New("invalid scan configuration")

	// ErrScanRunning indicates that a run was started while another run of the same scan is in progress.
	ErrScanRunning = errors.New("scan is already running")

	// ErrOptionNil indicates that a nil Option was passed to New.
	ErrOptionNil = errors.New("scan option is nil")
)

// AbortError ends a scan early without treating it as a failure.
//
// Hooks return it, usually through (*Scan).Abort, to skip from the current step to the
// post-scan hook. The message is logged when it is not empty.
type AbortError struct {
	Message string
}

func (e *AbortError) Error() string {
	if e.Message == "" {
		return "scan aborted"
	}

	return "scan aborted: " + e.Message
}

// PanicError wraps a panic recovered from a hook, an axis or a source during a run.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during scan: %v", e.Value)
}
