package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"flowtask/internal/api"
	"flowtask/internal/errors"
	"flowtask/internal/services"
)

// CalendarCommand prints the month grid with tasks in their deadline cells.
type CalendarCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the calendar command. An optional argument selects the month
// as YYYY-MM; the default is the current month.
func (c *CalendarCommand) Execute(ctx context.Context, args []string) error {
	now := timeNow()
	year, month := now.Year(), now.Month()

	if len(args) > 0 {
		parsedYear, parsedMonth, err := parseMonth(args[0])
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		year, month = parsedYear, parsedMonth
	}

	view, err := c.api.Calendar(ctx, year, month, now)
	if err != nil {
		return c.errorHandler.Handle("build calendar", err)
	}

	c.printMonth(view)
	return nil
}

func (c *CalendarCommand) printMonth(view *services.CalendarMonth) {
	fmt.Printf("%s %d\n", view.Month, view.Year)
	fmt.Println("Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	column := view.LeadingBlanks
	fmt.Print(strings.Repeat("     ", column))

	for _, day := range view.Days {
		label := fmt.Sprintf("%2d", day.Day)
		switch {
		case day.IsToday:
			label = "[" + label + "]"
		case len(day.Tasks) > 0:
			label = " " + label + "*"
		default:
			label = " " + label + " "
		}
		fmt.Print(label, " ")

		column++
		if column == 7 {
			fmt.Println()
			column = 0
		}
	}
	if column != 0 {
		fmt.Println()
	}

	for _, day := range view.Days {
		for _, task := range day.Tasks {
			fmt.Printf("  %2d: #%d %s (%s)\n", day.Day, task.ID, task.Title, task.Status)
		}
	}
}

// parseMonth parses a YYYY-MM argument.
func parseMonth(arg string) (int, time.Month, error) {
	parts := strings.SplitN(arg, "-", 2)
	if len(parts) != 2 {
		return 0, 0, errors.NewInvalidInputError("month", arg, `must be "YYYY-MM"`)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, errors.NewInvalidInputError("month", arg, `must be "YYYY-MM"`)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.NewInvalidInputError("month", arg, `must be "YYYY-MM"`)
	}
	return year, time.Month(month), nil
}
