package timer

import (
	"time"

	"flowtask/internal/errors"
	"flowtask/internal/validation"
)

// State is the lifecycle of a timer engine.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Pomodoro is a countdown from a configured duration. It only changes state
// through Start, Pause, Resume, Reset, and Tick; the caller owns the tick
// source.
type Pomodoro struct {
	state            State
	totalSeconds     int
	remainingSeconds int
	validator        *validation.TimerValidator
}

// NewPomodoro creates an idle Pomodoro countdown.
func NewPomodoro() *Pomodoro {
	return &Pomodoro{
		state:     StateIdle,
		validator: validation.NewTimerValidator(),
	}
}

// Start begins a countdown of the given length. Minutes outside the valid
// range abort with no state change.
func (p *Pomodoro) Start(minutes int) error {
	if err := p.validator.ValidateMinutes(minutes); err != nil {
		return errors.NewValidationError("invalid timer duration", err)
	}
	if p.state != StateIdle {
		return errors.NewInvalidInputError("timer", string(p.state), "already started")
	}

	p.totalSeconds = minutes * 60
	p.remainingSeconds = p.totalSeconds
	p.state = StateRunning
	return nil
}

// Tick advances the countdown by one second. It reports true when the
// countdown reaches zero, at which point the timer has stopped itself.
func (p *Pomodoro) Tick() bool {
	if p.state != StateRunning {
		return false
	}

	p.remainingSeconds--
	if p.remainingSeconds <= 0 {
		p.remainingSeconds = 0
		p.state = StateIdle
		return true
	}
	return false
}

// Pause suspends the countdown without resetting it.
func (p *Pomodoro) Pause() {
	if p.state == StateRunning {
		p.state = StatePaused
	}
}

// Resume continues a paused countdown.
func (p *Pomodoro) Resume() {
	if p.state == StatePaused {
		p.state = StateRunning
	}
}

// Reset returns the timer to idle, discarding any remaining time.
func (p *Pomodoro) Reset() {
	p.state = StateIdle
	p.remainingSeconds = 0
	p.totalSeconds = 0
}

// State reports the current lifecycle state.
func (p *Pomodoro) State() State {
	return p.state
}

// Remaining reports the time left on the countdown.
func (p *Pomodoro) Remaining() time.Duration {
	return time.Duration(p.remainingSeconds) * time.Second
}

// Total reports the configured countdown length.
func (p *Pomodoro) Total() time.Duration {
	return time.Duration(p.totalSeconds) * time.Second
}
