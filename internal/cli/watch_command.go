package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"flowtask/internal/api"
	"flowtask/internal/domain"
	"flowtask/internal/notify"
	"flowtask/internal/settings"
)

// WatchCommand runs the deadline sweep loop in the foreground: an immediate
// sweep, then one per interval, printing alerts as they fire.
type WatchCommand struct {
	api          api.API
	settings     *settings.Store
	logger       *zap.Logger
	interval     time.Duration
	errorHandler *ErrorHandler
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App) *WatchCommand {
	return &WatchCommand{
		api:          app.api,
		settings:     app.settings,
		logger:       app.logger,
		interval:     app.config.Notification.SweepInterval,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the watch command
func (c *WatchCommand) Execute(ctx context.Context, args []string) error {
	userSettings := c.settings.Load()
	if !userSettings.NotificationsEnabled {
		fmt.Println("Notifications are disabled in settings")
		return nil
	}

	advance := time.Duration(userSettings.AdvanceNoticeMinutes) * time.Minute
	notifier := notify.New(c.lister(), consoleAlerter{}, nil, advance, c.logger)

	fmt.Printf("Watching deadlines (advance notice %d min). Press Ctrl-C to stop.\n",
		userSettings.AdvanceNoticeMinutes)

	err := notifier.Run(ctx, c.interval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// lister adapts the API's full listing to the notifier's snapshot interface.
func (c *WatchCommand) lister() notify.TaskLister {
	return taskListerFunc(func(ctx context.Context) ([]*domain.Task, error) {
		return c.api.ListTasks(ctx, domain.SelectorAll, "", timeNow())
	})
}

type taskListerFunc func(ctx context.Context) ([]*domain.Task, error)

func (f taskListerFunc) List(ctx context.Context) ([]*domain.Task, error) {
	return f(ctx)
}

// consoleAlerter prints alerts to stdout.
type consoleAlerter struct{}

func (consoleAlerter) Notify(message string, severity notify.Severity) {
	prefix := "INFO"
	switch severity {
	case notify.SeverityWarning:
		prefix = "WARN"
	case notify.SeverityError:
		prefix = "ALERT"
	}
	fmt.Printf("[%s] %s %s\n", prefix, timeNow().Format("15:04"), message)
}
