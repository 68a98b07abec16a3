package cli

import (
	"context"
	"fmt"

	"flowtask/internal/api"
)

// TrackCommand handles the per-task time tracker: track start <id>, track
// stop, track status. At most one task is tracked at a time; starting a new
// tracker stops and commits the previous one.
type TrackCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewTrackCommand creates a new track command handler
func NewTrackCommand(app *App) *TrackCommand {
	return &TrackCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Start begins tracking the given task.
func (c *TrackCommand) Start(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	session, err := c.api.StartTracking(ctx, id)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Printf("Task %d not found\n", id)
			return nil
		}
		return c.errorHandler.Handle("start tracking", err)
	}

	fmt.Printf("Tracking task %d since %s\n", session.TaskID, session.StartedAt.Local().Format("15:04:05"))
	return nil
}

// Stop ends the running tracker and commits its time to the task.
func (c *TrackCommand) Stop(ctx context.Context, args []string) error {
	session, task, err := c.api.StopTracking(ctx)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Println("No task is being tracked")
			return nil
		}
		return c.errorHandler.Handle("stop tracking", err)
	}

	fmt.Printf("Stopped tracking task %d: %s (+%s, %s total)\n",
		task.ID, task.Title, formatDuration(session.DurationSeconds), formatDuration(task.TimeSpentSeconds))
	return nil
}

// Status reports the currently tracked task, if any.
func (c *TrackCommand) Status(ctx context.Context, args []string) error {
	session, task, err := c.api.CurrentTracking(ctx)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Println("No task is being tracked")
			return nil
		}
		return c.errorHandler.Handle("get tracking status", err)
	}

	elapsed := int(timeNow().Sub(session.StartedAt).Seconds())
	fmt.Printf("Tracking task %d: %s (running %s, %s committed)\n",
		task.ID, task.Title, formatDuration(elapsed), formatDuration(task.TimeSpentSeconds))
	return nil
}
