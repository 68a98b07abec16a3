package cli

import (
	"context"
	"fmt"
	"strings"

	"flowtask/internal/api"
	"flowtask/internal/domain"
	"flowtask/internal/services"
)

// EditOptions carries the flag values for the edit command. The Set booleans
// record which flags were given, so unset fields keep their current values.
type EditOptions struct {
	Title          string
	TitleSet       bool
	Category       string
	CategorySet    bool
	Priority       string
	PrioritySet    bool
	Deadline       string
	DeadlineSet    bool
	Description    string
	DescriptionSet bool
	Recurring      string
	RecurringSet   bool
	Estimate       int
	EstimateSet    bool
	Tags           string
	TagsSet        bool
}

// EditCommand applies a field-level update in place. The task keeps its id,
// creation time, accumulated time, and session history.
type EditCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	opts         *EditOptions
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App, opts *EditOptions) *EditCommand {
	return &EditCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		opts:         opts,
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
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
		return c.errorHandler.Handle("edit task", err)
	}

	input, err := c.merge(task)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	updated, err := c.api.UpdateTask(ctx, id, input)
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	fmt.Printf("Updated task %d: %s\n", updated.ID, updated.Title)
	return nil
}

// merge builds the update input from the current task, overriding only the
// fields whose flags were given.
func (c *EditCommand) merge(task *domain.Task) (services.TaskInput, error) {
	input := services.TaskInput{
		Title:            task.Title,
		Category:         task.Category,
		Priority:         task.Priority,
		Deadline:         task.Deadline,
		Description:      task.Description,
		Recurrence:       task.Recurrence,
		EstimatedMinutes: task.EstimatedMinutes,
		Tags:             task.Tags,
	}

	if c.opts.TitleSet {
		input.Title = strings.TrimSpace(c.opts.Title)
	}
	if c.opts.CategorySet {
		input.Category = domain.ParseCategory(c.opts.Category)
	}
	if c.opts.PrioritySet {
		input.Priority = domain.ParsePriority(c.opts.Priority)
	}
	if c.opts.DeadlineSet {
		deadline, err := parseDeadline(c.opts.Deadline)
		if err != nil {
			return input, err
		}
		input.Deadline = deadline
	}
	if c.opts.DescriptionSet {
		input.Description = c.opts.Description
	}
	if c.opts.RecurringSet {
		input.Recurrence = domain.ParseRecurrence(c.opts.Recurring)
	}
	if c.opts.EstimateSet {
		if c.opts.Estimate > 0 {
			estimate := c.opts.Estimate
			input.EstimatedMinutes = &estimate
		} else {
			input.EstimatedMinutes = nil
		}
	}
	if c.opts.TagsSet {
		input.Tags = parseTags(c.opts.Tags)
	}
	return input, nil
}
