package scan

import "context"

// Hooks defines the lifecycle callbacks of a scan.
//
// Hooks are grouped in one value because they usually share state, such as a detector
// configured in PreScan and read out in PostStep. Every hook receives the running scan and
// may return an AbortError, through (*Scan).Abort, to end the scan early. Any other error
// ends the run as failed. PostScan runs exactly once for every PreScan, whatever the outcome.
type Hooks interface {
	// PreScan runs once before the first step.
	PreScan(ctx context.Context, s *Scan) error
	// PostScan runs once after the last step, on every exit path. Its context is not
	// cancelled with the run so cleanup can still wait on axes.
	PostScan(ctx context.Context, s *Scan) error
	// PreStep runs before the axes are moved in each step.
	PreStep(ctx context.Context, s *Scan) error
	// PostStep runs after every axis has reached its position in each step.
	PostStep(ctx context.Context, s *Scan) error
}

// DefaultHooks save the positions of all axes before the scan and move them back afterwards.
//
// Embed DefaultHooks to keep that behavior while overriding individual hooks.
type DefaultHooks struct{}

var _ Hooks = DefaultHooks{}

// PreScan saves the current positions of all axes.
func (DefaultHooks) PreScan(_ context.Context, s *Scan) error {
	return s.SavePositions()
}

// PostScan restores the positions saved by PreScan and waits for the axes to arrive.
func (DefaultHooks) PostScan(ctx context.Context, s *Scan) error {
	return s.RestoreSaved(ctx)
}

// PreStep does nothing.
func (DefaultHooks) PreStep(context.Context, *Scan) error { return nil }

// PostStep does nothing.
func (DefaultHooks) PostStep(context.Context, *Scan) error { return nil }

// HookFunc is a single lifecycle callback.
type HookFunc func(ctx context.Context, s *Scan) error

// HookFuncs adapts individual functions to the Hooks interface. Nil functions do nothing,
// so HookFuncs{} leaves the axes where the scan ended.
type HookFuncs struct {
	OnPreScan  HookFunc
	OnPostScan HookFunc
	OnPreStep  HookFunc
	OnPostStep HookFunc
}

var _ Hooks = HookFuncs{}

func (h HookFuncs) PreScan(ctx context.Context, s *Scan) error {
	return callHook(ctx, h.OnPreScan, s)
}

func (h HookFuncs) PostScan(ctx context.Context, s *Scan) error {
	return callHook(ctx, h.OnPostScan, s)
}

func (h HookFuncs) PreStep(ctx context.Context, s *Scan) error {
	return callHook(ctx, h.OnPreStep, s)
}

func (h HookFuncs) PostStep(ctx context.Context, s *Scan) error {
	return callHook(ctx, h.OnPostStep, s)
}

func callHook(ctx context.Context, f HookFunc, s *Scan) error {
	if f == nil {
		return nil
	}

	return f(ctx, s)
}
