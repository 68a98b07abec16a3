package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"flowtask/internal/api"
	"flowtask/internal/settings"
	"flowtask/internal/timer"
)

// PomodoroCommand runs a Pomodoro countdown in the foreground. The countdown
// renders once per second; interrupting the command cancels the timer.
type PomodoroCommand struct {
	api          api.API
	settings     *settings.Store
	clock        timer.Clock
	tone         timer.TonePlayer
	errorHandler *ErrorHandler
	minutes      int
}

// NewPomodoroCommand creates a new pomodoro command handler. minutes of 0
// means the configured default length.
func NewPomodoroCommand(app *App, minutes int) *PomodoroCommand {
	cmd := &PomodoroCommand{
		api:          app.api,
		settings:     app.settings,
		clock:        timer.NewClock(),
		errorHandler: NewErrorHandler(),
		minutes:      minutes,
	}
	if app.settings.Load().TimerSound {
		cmd.tone = timer.NewBellPlayer(os.Stdout)
	} else {
		cmd.tone = timer.SilentPlayer{}
	}
	return cmd
}

// Execute runs the pomodoro command
func (c *PomodoroCommand) Execute(ctx context.Context, args []string) error {
	minutes := c.minutes
	if minutes == 0 {
		minutes = c.settings.Load().DefaultTimerMinutes
	}

	countdown := timer.NewPomodoro()
	if err := countdown.Start(minutes); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	fmt.Printf("Pomodoro started: %d minutes. Press Ctrl-C to cancel.\n", minutes)

	runner := timer.NewRunner(c.clock)
	err := runner.Run(ctx, countdown, func() {
		fmt.Printf("\r%s  ", formatCountdown(countdown.Remaining()))
	})
	fmt.Println()

	if errors.Is(err, context.Canceled) {
		fmt.Println("Pomodoro cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	c.tone.PlayTone(800, 500)
	fmt.Println("Pomodoro complete! Take a break.")
	return nil
}
