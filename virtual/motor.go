package virtual

import (
	"context"
	"math"

	"github.com/arloliu/go-iterscan/axis"
)

// MoveFunc issues a move towards pos.
type MoveFunc func(pos float64) error

// PositionFunc reads the current position.
type PositionFunc func() (float64, error)

// WaitFunc blocks until the last move has completed or ctx is done.
type WaitFunc func(ctx context.Context) error

// Motor is an axis built from functions.
type Motor struct {
	name      string
	move      MoveFunc
	position  PositionFunc
	wait      WaitFunc
	tolerance float64
	target    float64
	hasTarget bool
}

var (
	_ axis.Axis  = (*Motor)(nil)
	_ axis.Named = (*Motor)(nil)
)

// MotorOption represents a functional option for configuring a Motor.
type MotorOption func(*Motor) error

// WithWait sets the function used by Wait. Without it Wait returns as soon as Move has returned.
func WithWait(f WaitFunc) MotorOption {
	return func(m *Motor) error {
		m.wait = f
		return nil
	}
}

// WithTolerance sets the distance within which the motor is considered in position.
func WithTolerance(tol float64) MotorOption {
	return func(m *Motor) error {
		if tol < 0 {
			return ErrInvalidTolerance
		}
		m.tolerance = tol
		return nil
	}
}

// NewMotor creates a virtual motor from a move and a position function.
func NewMotor(name string, move MoveFunc, position PositionFunc, opts ...MotorOption) (*Motor, error) {
	if move == nil || position == nil {
		return nil, ErrNilFunc
	}

	m := &Motor{name: name, move: move, position: position}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Motor) Name() string { return m.name }

func (m *Motor) Move(pos float64) error {
	if err := m.move(pos); err != nil {
		return err
	}
	m.target = pos
	m.hasTarget = true

	return nil
}

func (m *Motor) Position() (float64, error) {
	return m.position()
}

func (m *Motor) Wait(ctx context.Context) error {
	if m.wait == nil {
		return ctx.Err()
	}

	return m.wait(ctx)
}

// Tolerance returns the distance within which the motor is considered in position.
func (m *Motor) Tolerance() float64 { return m.tolerance }

// InPosition reports whether the motor is within tolerance of the target of the last move.
// A motor that was never moved is always in position.
func (m *Motor) InPosition() (bool, error) {
	if !m.hasTarget {
		return true, nil
	}

	pos, err := m.position()
	if err != nil {
		return false, err
	}

	return math.Abs(pos-m.target) <= m.tolerance, nil
}
