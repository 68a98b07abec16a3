package cli

import (
	"context"
	"fmt"

	"flowtask/internal/api"
	"flowtask/internal/domain"
)

// StatsCommand prints the productivity summary.
type StatsCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	stats, err := c.api.Stats(ctx, timeNow())
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}

	fmt.Printf("Tasks:            %d total, %d completed, %d pending\n",
		stats.Total, stats.Completed, stats.Pending)
	fmt.Printf("Streak:           %d day(s) (best %d)\n", stats.StreakDays, stats.BestStreakDays)
	fmt.Printf("Avg completion:   %s day(s)\n", stats.AverageCompletionDays)
	fmt.Printf("Created this week: %d\n", stats.CreatedThisWeek)
	fmt.Printf("Time tracked:     %s\n", formatDuration(stats.TimeSpentSeconds))

	if len(stats.CategoryCounts) > 0 {
		fmt.Println("By category:")
		for _, category := range domain.Categories() {
			if count := stats.CategoryCounts[category]; count > 0 {
				fmt.Printf("  %-10s %d\n", category.DisplayName(), count)
			}
		}
	}

	focus, err := c.api.HighPriority(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}
	if len(focus) > 0 {
		fmt.Println("High priority:")
		for _, task := range focus {
			fmt.Printf("  %4d %s\n", task.ID, task.Title)
		}
	}
	return nil
}
