package cli

import (
	"context"
	"fmt"

	"flowtask/internal/api"
)

// ClearCommand bulk-deletes all completed tasks.
type ClearCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clear command
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	count, err := c.api.ClearCompleted(ctx)
	if err != nil {
		return c.errorHandler.Handle("clear completed tasks", err)
	}

	switch count {
	case 0:
		fmt.Println("No completed tasks to clear")
	case 1:
		fmt.Println("Cleared 1 completed task")
	default:
		fmt.Printf("Cleared %d completed tasks\n", count)
	}
	return nil
}
