package scan

import (
	"github.com/arloliu/go-iterscan/logger"
)

// Option represents a functional option for configuring a Scan.
type Option interface {
	apply(*Scan) error
}

type scanOptFunc struct {
	name      string
	applyFunc func(*Scan) error
}

func (o *scanOptFunc) apply(s *Scan) error { return o.applyFunc(s) }

func newScanOptFunc(name string, f func(*Scan) error) *scanOptFunc {
	return &scanOptFunc{
		name:      name,
		applyFunc: f,
	}
}

// WithHooks sets the lifecycle hooks of the scan.
//
// When no hooks are supplied, a warning is logged and DefaultHooks are used, which return
// every axis to its starting position after the scan.
func WithHooks(h Hooks) Option {
	return newScanOptFunc("WithHooks", func(s *Scan) error {
		s.hooks = h
		return nil
	})
}

// WithLogger sets the logger for the scan.
//
// The default logger is the global logger instance.
func WithLogger(l logger.Logger) Option {
	return newScanOptFunc("WithLogger", func(s *Scan) error {
		if l != nil {
			s.logger = l
		}
		return nil
	})
}

// WithVerbose sets whether the scan logs the status of every step and its completion at info level.
//
// Defaults to true.
func WithVerbose(val bool) Option {
	return newScanOptFunc("WithVerbose", func(s *Scan) error {
		s.verbose = val
		return nil
	})
}

// WithRunID sets a fixed identifier used in the log records of every run.
//
// By default each run gets a random UUID.
func WithRunID(id string) Option {
	return newScanOptFunc("WithRunID", func(s *Scan) error {
		s.runID = id
		return nil
	})
}
