package validation

const (
	// TimerMinMinutes and TimerMaxMinutes bound the Pomodoro duration.
	TimerMinMinutes = 1
	TimerMaxMinutes = 60
)

// TimerValidator provides validation for timer configuration
type TimerValidator struct {
	validator *Validator
}

// NewTimerValidator creates a new timer validator
func NewTimerValidator() *TimerValidator {
	return &TimerValidator{
		validator: NewValidator(),
	}
}

// ValidateMinutes validates a Pomodoro duration in minutes
func (tv *TimerValidator) ValidateMinutes(minutes int) error {
	if !tv.validator.IsInRange(minutes, TimerMinMinutes, TimerMaxMinutes) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("timer_minutes", minutes, "must be between 1 and 60")
		return validationError
	}
	return nil
}

// ValidateAdvanceNotice validates the deadline advance-notice window
func (tv *TimerValidator) ValidateAdvanceNotice(minutes int) error {
	if minutes <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("advance_notice_minutes", minutes, "must be a positive integer")
		return validationError
	}
	return nil
}
