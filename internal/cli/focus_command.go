package cli

import (
	"context"
	"errors"
	"fmt"

	"flowtask/internal/api"
	"flowtask/internal/settings"
	"flowtask/internal/timer"
)

// FocusCommand runs a focus session on one task: an elapsed-time clock in
// the foreground, with the per-task tracker linked when auto time tracking
// is enabled. Ending the session (Ctrl-C) stops the linked tracker and
// commits its time.
type FocusCommand struct {
	api          api.API
	settings     *settings.Store
	clock        timer.Clock
	errorHandler *ErrorHandler
}

// NewFocusCommand creates a new focus command handler
func NewFocusCommand(app *App) *FocusCommand {
	return &FocusCommand{
		api:          app.api,
		settings:     app.settings,
		clock:        timer.NewClock(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the focus command
func (c *FocusCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.api.GetTask(ctx, id)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Printf("Task %d not found\n", id)
			return nil
		}
		return c.errorHandler.Handle("start focus session", err)
	}

	session := timer.NewFocusSession()
	if err := session.Start(id); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	tracking := c.settings.Load().AutoTimeTracking
	if tracking {
		if _, err := c.api.StartTracking(ctx, id); err != nil {
			return c.errorHandler.Handle("start tracking", err)
		}
	}

	fmt.Printf("Focusing on task %d: %s. Press Ctrl-C to end the session.\n", task.ID, task.Title)

	runner := timer.NewRunner(c.clock)
	runErr := runner.Run(ctx, timer.TickableFunc(func() bool {
		session.Tick()
		return false
	}), func() {
		fmt.Printf("\r%s  ", formatCountdown(session.Elapsed()))
	})
	fmt.Println()

	_, elapsed := session.End()
	fmt.Printf("Focus session ended after %s\n", formatDuration(int(elapsed.Seconds())))

	if tracking {
		// The run context is already cancelled, so commit with a fresh one.
		_, tracked, err := c.api.StopTracking(context.WithoutCancel(ctx))
		if err != nil && !c.errorHandler.IsNotFoundError(err) {
			return c.errorHandler.Handle("stop tracking", err)
		}
		if tracked != nil {
			fmt.Printf("Tracked time committed: %s total on task %d\n",
				formatDuration(tracked.TimeSpentSeconds), tracked.ID)
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
