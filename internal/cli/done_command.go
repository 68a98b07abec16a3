package cli

import (
	"context"
	"fmt"

	"flowtask/internal/api"
	"flowtask/internal/domain"
	"flowtask/internal/settings"
)

// DoneCommand toggles completion on a task. Completing a recurring task
// spawns its next occurrence.
type DoneCommand struct {
	api          api.API
	settings     *settings.Store
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		api:          app.api,
		settings:     app.settings,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	result, err := c.api.ToggleTask(ctx, id)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Printf("Task %d not found\n", id)
			return nil
		}
		return c.errorHandler.Handle("toggle task", err)
	}

	if result.Task.Completed {
		c.printCompleted(result.Task)
		if result.Spawned != nil {
			next := "no deadline"
			if result.Spawned.Deadline != nil {
				next = "due " + result.Spawned.Deadline.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("Next occurrence created as task %d (%s)\n", result.Spawned.ID, next)
		}
	} else {
		fmt.Printf("Task %d marked incomplete: %s\n", result.Task.ID, result.Task.Title)
	}
	return nil
}

func (c *DoneCommand) printCompleted(task *domain.Task) {
	fmt.Printf("Task %d completed: %s\n", task.ID, task.Title)
	if c.settings.Load().Celebration {
		fmt.Println("🎉 Nice work!")
	}
}
