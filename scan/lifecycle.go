package scan

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/logger"
)

// Run performs a linear scan: every step takes the next position of every source, and the scan
// ends when any source is exhausted.
//
// Run never returns runtime failures as a panic or error; the outcome is described by the
// returned Result. Cancelling ctx aborts the scan at the next step boundary or axis wait.
// The post-scan hook runs exactly once for every pre-scan hook on every exit path.
func (s *Scan) Run(ctx context.Context) Result {
	return s.run(ctx, ModeLinear)
}

// RunMesh performs a mesh scan over all combinations of source positions. The first axis
// moves most often and the last axis least often.
//
// A mesh scan may be run again after it completed; it restarts from the first point.
func (s *Scan) RunMesh(ctx context.Context) Result {
	return s.run(ctx, ModeMesh)
}

func (s *Scan) run(ctx context.Context, mode Mode) (res Result) {
	if !s.running.CompareAndSwap(false, true) {
		return Result{Mode: mode, Status: StatusFailed, Err: ErrScanRunning}
	}
	defer s.running.Store(false)

	s.mode = mode
	res = Result{RunID: s.newRunID(), Mode: mode, Status: StatusDone}
	log := s.logger.With("run_id", res.RunID, "mode", mode.String())
	log.Debug("scan started", "axes", s.Len())

	defer func() {
		s.curStep = 0
		s.mesh = nil

		// cleanup must be able to wait on axes after the run context was cancelled
		if err := s.safeHook(context.WithoutCancel(ctx), s.hooks.PostScan); err != nil {
			var abortErr *AbortError
			if errors.As(err, &abortErr) {
				logAbortMessage(log, abortErr)
			} else {
				log.Error("post-scan hook failed", "error", err)
				res.Err = errors.Join(res.Err, err)
			}
		}
		log.Debug("scan finished", "status", res.Status.String(), "steps", res.Steps)
	}()

	if err := s.safeHook(ctx, s.hooks.PreScan); err != nil {
		s.terminate(ctx, log, &res, err)
		return res
	}

	var w walker
	if mode == ModeMesh {
		mw := newMeshWalker(s.sources)
		s.mesh = mw
		w = mw
	} else {
		w = newLinearWalker(s.sources)
	}
	defer w.stop()

	s.curStep = 0
	for {
		if err := ctx.Err(); err != nil {
			s.terminate(ctx, log, &res, err)
			break
		}

		s.curStep++
		more, err := s.step(ctx, w, &res)
		if err != nil {
			s.terminate(ctx, log, &res, err)
			break
		}
		if !more {
			if s.verbose {
				log.Info("reached end of scan", "steps", res.Steps)
			}
			break
		}
		if s.verbose {
			s.logStatus(log)
		}
	}
	s.curStep = 0

	return res
}

// step performs one scan step. It returns false when the traversal is exhausted.
// Panics raised by sources, hooks or axes are returned as a *PanicError.
func (s *Scan) step(ctx context.Context, w walker, res *Result) (more bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	pts, ok := w.next()
	if !ok {
		return false, nil
	}

	if err := s.hooks.PreStep(ctx, s); err != nil {
		return false, err
	}
	if err := s.move(pts); err != nil {
		return false, err
	}
	if err := s.Wait(ctx); err != nil {
		return false, err
	}
	res.Steps++

	if err := s.hooks.PostStep(ctx, s); err != nil {
		return false, err
	}

	return true, nil
}

// terminate classifies err into the terminal status of res and logs a short diagnostic.
func (s *Scan) terminate(ctx context.Context, log logger.Logger, res *Result, err error) {
	var abortErr *AbortError
	var panicErr *PanicError

	switch {
	case errors.As(err, &abortErr):
		res.Status = StatusAborted
		res.Message = abortErr.Message
		logAbortMessage(log, abortErr)

	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		res.Status = StatusAborted
		res.Err = err
		log.Warn("scan interrupted", "step", s.curStep)

	case errors.As(err, &panicErr):
		res.Status = StatusFailed
		res.Err = err
		log.Error("scan failed", "step", s.curStep, "error", err, "stack", string(panicErr.Stack))

	default:
		res.Status = StatusFailed
		res.Err = err
		log.Error("scan failed", "step", s.curStep, "error", err)
	}
}

// safeHook runs a scan-level hook, converting a panic into a *PanicError.
func (s *Scan) safeHook(ctx context.Context, hook HookFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	return hook(ctx, s)
}

func (s *Scan) logStatus(log logger.Logger) {
	kv := make([]any, 0, 2+2*len(s.axes))
	kv = append(kv, "step", s.curStep)
	for i, n := range s.axes {
		p, err := n.Position()
		if err != nil {
			kv = append(kv, s.axisName(i), fmt.Sprintf("<%v>", err))
			continue
		}
		kv = append(kv, s.axisName(i), p.String())
	}
	log.Info("scan step", kv...)
}

func (s *Scan) newRunID() string {
	if s.runID != "" {
		return s.runID
	}

	return uuid.NewString()
}

func logAbortMessage(log logger.Logger, abortErr *AbortError) {
	if abortErr.Message != "" {
		log.Info(abortErr.Message)
	}
}

func positionStrings(positions []axis.Position) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.String()
	}

	return out
}
