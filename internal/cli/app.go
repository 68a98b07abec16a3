package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"flowtask/internal/api"
	"flowtask/internal/config"
	"flowtask/internal/domain"
	"flowtask/internal/errors"
	"flowtask/internal/repository/sqlite"
	"flowtask/internal/settings"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api      api.API
	settings *settings.Store
	config   *config.Config
	logger   *zap.Logger
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, settingsStore *settings.Store, cfg *config.Config, logger *zap.Logger) *App {
	return &App{
		api:      apiInstance,
		settings: settingsStore,
		config:   cfg,
		logger:   logger,
	}
}

// NewAppWithDefaultRepository creates the application wired to the configured
// SQLite database and settings file. This is the production path.
func NewAppWithDefaultRepository(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewApp(api.New(repo), settings.NewStore(cfg.GetSettingsPath(), logger), cfg, logger), nil
}

// parseTaskID parses a task id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("task id", arg, "must be a positive integer")
	}
	return id, nil
}

// parseDeadline accepts "2006-01-02 15:04" or a bare date, which lands at
// end of day so the task is not immediately overdue.
func parseDeadline(arg string) (*time.Time, error) {
	if arg == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", arg, time.Local); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", arg, time.Local); err == nil {
		endOfDay := t.Add(23*time.Hour + 59*time.Minute)
		return &endOfDay, nil
	}
	return nil, errors.NewInvalidInputError("deadline", arg, `must be "YYYY-MM-DD" or "YYYY-MM-DD HH:MM"`)
}

// parseTags splits a comma-separated tag list, dropping empties.
func parseTags(arg string) []string {
	if strings.TrimSpace(arg) == "" {
		return []string{}
	}
	parts := strings.Split(arg, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// formatDuration renders seconds as "1h 23m" or "45m" or "30s".
func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// formatCountdown renders a countdown as "MM:SS".
func formatCountdown(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// printTask prints one task line: status, id, priority marker, title, and
// scheduling metadata.
func (a *App) printTask(task *domain.Task) {
	status := "[ ]"
	if task.Completed {
		status = "[x]"
	}

	marker := " "
	switch task.Priority {
	case domain.PriorityHigh:
		marker = "!"
	case domain.PriorityLow:
		marker = "."
	}

	line := fmt.Sprintf("%s %4d %s %s (%s)", status, task.ID, marker, task.Title, task.Category.DisplayName())
	if task.Deadline != nil {
		line += fmt.Sprintf(" due %s", task.Deadline.Local().Format(a.config.Display.TimeFormat))
		if task.IsOverdue(timeNow()) {
			line += " OVERDUE"
		}
	}
	if task.Recurrence.IsRecurring() {
		line += fmt.Sprintf(" [%s]", task.Recurrence)
	}
	if task.TimeSpentSeconds > 0 {
		line += fmt.Sprintf(" (%s tracked)", formatDuration(task.TimeSpentSeconds))
	}
	if len(task.Tags) > 0 {
		line += " #" + strings.Join(task.Tags, " #")
	}
	fmt.Println(line)
}
