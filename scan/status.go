package scan

// Mode is the traversal mode of the last run of a scan.
type Mode uint32

const (
	// ModeNone indicates that the scan has not been run yet.
	ModeNone Mode = iota
	// ModeLinear advances every source by one position per step.
	ModeLinear
	// ModeMesh visits the full cross product of all sources, first axis fastest.
	ModeMesh
)

// String returns string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeLinear:
		return "linear"
	case ModeMesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// Status is the terminal state of a scan run.
type Status uint32

const (
	// StatusDone indicates that a source was exhausted and the scan completed normally.
	StatusDone Status = iota
	// StatusAborted indicates that the run was cancelled through its context or a hook returned an AbortError.
	StatusAborted
	// StatusFailed indicates that a hook, an axis or a source failed with an unexpected error or panic.
	StatusFailed
)

// IsDone returns if the run completed normally.
func (s Status) IsDone() bool { return s == StatusDone }

// IsAborted returns if the run was aborted.
func (s Status) IsAborted() bool { return s == StatusAborted }

// IsFailed returns if the run failed.
func (s Status) IsFailed() bool { return s == StatusFailed }

// String returns string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusAborted:
		return "aborted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes how a scan run terminated.
type Result struct {
	// RunID identifies the run in log records.
	RunID string
	// Mode is the traversal mode of the run.
	Mode Mode
	// Status is the terminal state of the run.
	Status Status
	// Steps is the number of steps whose axes were moved to their positions.
	Steps int
	// Message carries the message of an AbortError.
	Message string
	// Err is the cause of a failed run, the context error of a cancelled run, and
	// includes any error returned by the post-scan hook.
	Err error
}
