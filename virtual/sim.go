package virtual

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/internal/pool"
	"github.com/arloliu/go-iterscan/logger"
)

// SimMotor simulates a motor moving at a constant speed.
//
// Move starts a motion and returns immediately; the position is interpolated from the elapsed
// time, so no goroutine runs while the motor moves. Wait blocks until the motion is complete.
// If the context of Wait is done first, the motor stops where it is.
//
// SimMotor is safe for concurrent use.
type SimMotor struct {
	mu        sync.Mutex
	name      string
	speed     float64
	tolerance float64
	logger    logger.Logger
	now       func() time.Time
	limited   bool
	low, high float64

	start     float64
	target    float64
	startedAt time.Time
	moves     int
}

var (
	_ axis.Axis    = (*SimMotor)(nil)
	_ axis.Named   = (*SimMotor)(nil)
	_ axis.Limited = (*SimMotor)(nil)
)

// SimOption represents a functional option for configuring a SimMotor.
type SimOption func(*SimMotor) error

// WithSpeed sets the speed in position units per second. Zero, the default, moves instantly.
func WithSpeed(speed float64) SimOption {
	return func(m *SimMotor) error {
		if speed < 0 {
			return ErrInvalidSpeed
		}
		m.speed = speed
		return nil
	}
}

// WithSimTolerance sets the distance within which the motor is considered in position.
func WithSimTolerance(tol float64) SimOption {
	return func(m *SimMotor) error {
		if tol < 0 {
			return ErrInvalidTolerance
		}
		m.tolerance = tol
		return nil
	}
}

// WithLimits sets soft limits. Move rejects targets outside [low, high].
func WithLimits(low, high float64) SimOption {
	return func(m *SimMotor) error {
		if low > high {
			return ErrInvalidLimits
		}
		m.limited = true
		m.low, m.high = low, high
		return nil
	}
}

// WithStart sets the initial position.
func WithStart(pos float64) SimOption {
	return func(m *SimMotor) error {
		m.start = pos
		m.target = pos
		return nil
	}
}

// WithSimLogger sets the logger of the motor.
//
// The default logger is the global logger instance.
func WithSimLogger(l logger.Logger) SimOption {
	return func(m *SimMotor) error {
		if l != nil {
			m.logger = l
		}
		return nil
	}
}

// NewSimMotor creates a simulated motor at position 0.
func NewSimMotor(name string, opts ...SimOption) (*SimMotor, error) {
	m := &SimMotor{
		name:   name,
		logger: logger.GetLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	m.startedAt = m.now()

	return m, nil
}

func (m *SimMotor) Name() string { return m.name }

// Speed returns the speed in position units per second.
func (m *SimMotor) Speed() float64 { return m.speed }

// Tolerance returns the distance within which the motor is considered in position.
func (m *SimMotor) Tolerance() float64 { return m.tolerance }

// Moves returns the number of Move calls.
func (m *SimMotor) Moves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.moves
}

// WithinLimits reports whether pos is inside the soft limits. It is always true for a motor
// without limits.
func (m *SimMotor) WithinLimits(pos float64) bool {
	return !m.limited || (pos >= m.low && pos <= m.high)
}

func (m *SimMotor) Move(pos float64) error {
	if !m.WithinLimits(pos) {
		return fmt.Errorf("%w: %s to %g", axis.ErrOutOfLimits, m.name, pos)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.start = m.positionLocked()
	m.target = pos
	m.startedAt = m.now()
	m.moves++
	m.logger.Debug("sim motor move", "axis", m.name, "from", m.start, "to", pos)

	return nil
}

func (m *SimMotor) Position() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.positionLocked(), nil
}

func (m *SimMotor) Wait(ctx context.Context) error {
	m.mu.Lock()
	remaining := m.remainingLocked()
	m.mu.Unlock()

	if remaining <= 0 {
		return ctx.Err()
	}

	timer := pool.Timer(remaining)
	defer pool.Release(timer)

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		m.Stop()
		return ctx.Err()
	}
}

// Stop ends the current motion at the current position.
func (m *SimMotor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos := m.positionLocked()
	m.start = pos
	m.target = pos
	m.startedAt = m.now()
	m.logger.Debug("sim motor stopped", "axis", m.name, "position", pos)
}

// Set redefines the current position without moving, as when calibrating a motor.
func (m *SimMotor) Set(pos float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.start = pos
	m.target = pos
	m.startedAt = m.now()
}

// InPosition reports whether the motor is within tolerance of its last target.
func (m *SimMotor) InPosition() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return math.Abs(m.positionLocked()-m.target) <= m.tolerance
}

func (m *SimMotor) positionLocked() float64 {
	dist := m.target - m.start
	if dist == 0 || m.speed == 0 {
		return m.target
	}

	travelled := m.speed * m.now().Sub(m.startedAt).Seconds()
	if travelled >= math.Abs(dist) {
		return m.target
	}

	return m.start + math.Copysign(travelled, dist)
}

func (m *SimMotor) remainingLocked() time.Duration {
	dist := math.Abs(m.target - m.start)
	if dist == 0 || m.speed == 0 {
		return 0
	}

	total := time.Duration(dist / m.speed * float64(time.Second))

	return total - m.now().Sub(m.startedAt)
}
