package cli

import (
	"context"
	"fmt"

	"flowtask/internal/api"
)

// MoveCommand reorders a task to another task's position in the list.
type MoveCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewMoveCommand creates a new move command handler
func NewMoveCommand(app *App) *MoveCommand {
	return &MoveCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context, args []string) error {
	draggedID, err := parseTaskID(args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	targetID, err := parseTaskID(args[1])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.api.ReorderTask(ctx, draggedID, targetID); err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Println(c.errorHandler.HandleSimple(err))
			return nil
		}
		return c.errorHandler.Handle("move task", err)
	}

	fmt.Printf("Moved task %d to the position of task %d\n", draggedID, targetID)
	return nil
}
