package cli

import (
	"context"
	"fmt"
	"strings"

	"flowtask/internal/api"
	"flowtask/internal/domain"
	"flowtask/internal/services"
)

// AddOptions carries the flag values for the add command.
type AddOptions struct {
	Category    string
	Priority    string
	Deadline    string
	Description string
	Recurring   string
	Estimate    int
	Tags        string
}

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	opts         *AddOptions
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts *AddOptions) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		opts:         opts,
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")

	deadline, err := parseDeadline(c.opts.Deadline)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	input := services.TaskInput{
		Title:       title,
		Category:    domain.ParseCategory(c.opts.Category),
		Priority:    domain.ParsePriority(c.opts.Priority),
		Deadline:    deadline,
		Description: c.opts.Description,
		Recurrence:  domain.ParseRecurrence(c.opts.Recurring),
		Tags:        parseTags(c.opts.Tags),
	}
	if c.opts.Estimate > 0 {
		estimate := c.opts.Estimate
		input.EstimatedMinutes = &estimate
	}

	task, err := c.api.AddTask(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s\n", task.ID, task.Title)
	return nil
}

// QuickCommand handles the quick-add command: title only, everything else
// defaulted.
type QuickCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewQuickCommand creates a new quick command handler
func NewQuickCommand(app *App) *QuickCommand {
	return &QuickCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the quick command
func (c *QuickCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.api.QuickAddTask(ctx, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s\n", task.ID, task.Title)
	return nil
}
