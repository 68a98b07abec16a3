package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"flowtask/internal/api"
	"flowtask/internal/settings"
)

// DeleteCommand removes a task and its session history.
type DeleteCommand struct {
	api          api.API
	settings     *settings.Store
	errorHandler *ErrorHandler
	force        bool
	input        io.Reader
}

// NewDeleteCommand creates a new delete command handler. With force set, the
// confirmation prompt is skipped regardless of settings.
func NewDeleteCommand(app *App, force bool) *DeleteCommand {
	return &DeleteCommand{
		api:          app.api,
		settings:     app.settings,
		errorHandler: NewErrorHandler(),
		force:        force,
		input:        os.Stdin,
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
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
		return c.errorHandler.Handle("delete task", err)
	}

	if !c.force && c.settings.Load().DeleteConfirmation {
		if !c.confirm(task.Title) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := c.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}
	fmt.Printf("Deleted task %d: %s\n", id, task.Title)
	return nil
}

func (c *DeleteCommand) confirm(title string) bool {
	fmt.Printf("Delete %q? [y/N] ", title)
	reader := bufio.NewReader(c.input)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
