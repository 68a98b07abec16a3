package cli

import (
	"context"
	"fmt"
	"strings"

	"flowtask/internal/api"
	"flowtask/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command. The first argument may be a filter selector
// (all, today, week, overdue, completed, recurring, or a category name);
// remaining arguments are the search query.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	selector := domain.SelectorAll
	query := ""

	if len(args) > 0 {
		if parsed, ok := domain.ParseSelector(args[0]); ok {
			selector = parsed
			query = strings.Join(args[1:], " ")
		} else {
			query = strings.Join(args, " ")
		}
	}

	tasks, err := c.api.ListTasks(ctx, selector, strings.ToLower(query), timeNow())
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}
	for _, task := range tasks {
		c.app.printTask(task)
	}
	return nil
}
