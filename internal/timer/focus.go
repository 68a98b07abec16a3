package timer

import (
	"time"

	"flowtask/internal/errors"
)

// FocusSession counts elapsed time on a single declared focus task. Pause
// suspends the tick without resetting elapsed time; End clears the focus
// state and reports the total.
type FocusSession struct {
	state          State
	taskID         int64
	elapsedSeconds int
}

// NewFocusSession creates an idle focus session.
func NewFocusSession() *FocusSession {
	return &FocusSession{state: StateIdle}
}

// Start declares the focus task and begins counting.
func (f *FocusSession) Start(taskID int64) error {
	if f.state != StateIdle {
		return errors.NewInvalidInputError("focus session", string(f.state), "already active")
	}

	f.taskID = taskID
	f.elapsedSeconds = 0
	f.state = StateRunning
	return nil
}

// Tick advances the elapsed time by one second while running.
func (f *FocusSession) Tick() {
	if f.state == StateRunning {
		f.elapsedSeconds++
	}
}

// Pause suspends the count without resetting elapsed time.
func (f *FocusSession) Pause() {
	if f.state == StateRunning {
		f.state = StatePaused
	}
}

// Resume continues a paused session.
func (f *FocusSession) Resume() {
	if f.state == StatePaused {
		f.state = StateRunning
	}
}

// End stops the session, clears the focus state, and reports the focused task
// and total elapsed time.
func (f *FocusSession) End() (taskID int64, elapsed time.Duration) {
	taskID = f.taskID
	elapsed = time.Duration(f.elapsedSeconds) * time.Second

	f.state = StateIdle
	f.taskID = 0
	f.elapsedSeconds = 0
	return taskID, elapsed
}

// State reports the current lifecycle state.
func (f *FocusSession) State() State {
	return f.state
}

// TaskID reports the declared focus task. Zero when idle.
func (f *FocusSession) TaskID() int64 {
	return f.taskID
}

// Elapsed reports the accumulated focus time.
func (f *FocusSession) Elapsed() time.Duration {
	return time.Duration(f.elapsedSeconds) * time.Second
}
