package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"flowtask/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "flowtask",
		Short: "A command-line task manager with time tracking",
		Long: `flowtask is a command-line task manager: tasks with categories,
priorities, deadlines, tags and recurrence; per-task time tracking with
session history; a Pomodoro timer and focus sessions; deadline alerts; a
calendar view; and productivity statistics.

EXAMPLES:
  flowtask add "Write report" --category work --priority high --deadline 2026-09-05
  flowtask quick "Buy milk"                # Title-only quick add
  flowtask list today                      # Tasks due today
  flowtask list work "report"              # Work tasks matching "report"
  flowtask done 3                          # Toggle completion (spawns recurrence)
  flowtask track start 3                   # Start the per-task time tracker
  flowtask pomodoro --minutes 25           # Run a Pomodoro countdown
  flowtask focus 3                         # Focus session on one task
  flowtask watch                           # Deadline alert loop
  flowtask export                          # Write tasks_YYYY-MM-DD.json

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  FLOWTASK_DB_DIR                    Database directory (default: ~/.flowtask)
  FLOWTASK_DB_FILENAME               Database filename (default: flowtask.db)
  FLOWTASK_SETTINGS_DIR              Settings directory (default: ~/.flowtask)
  FLOWTASK_SETTINGS_FILENAME         Settings filename (default: settings.toml)
  FLOWTASK_NOTIFY_SWEEP_INTERVAL     Deadline sweep interval (default: 1m)
  FLOWTASK_APP_TIMEOUT               Command timeout (default: 60s)
  FLOWTASK_APP_VERBOSE               Enable verbose logging (default: false)

User preferences (themes, timer defaults, confirmations) live in the settings
file; see: flowtask settings show`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides FLOWTASK_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides FLOWTASK_DB_FILENAME)")
	flags.String("settings-dir", "", "Settings directory (overrides FLOWTASK_SETTINGS_DIR)")
	flags.Duration("sweep-interval", 0, "Deadline sweep interval (overrides FLOWTASK_NOTIFY_SWEEP_INTERVAL)")
	flags.Duration("app-timeout", 0, "Command timeout (overrides FLOWTASK_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose logging (overrides FLOWTASK_APP_VERBOSE)")
}

// commandContext returns a context bounded by the application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// interactiveContext returns a context cancelled by SIGINT/SIGTERM, for
// commands that run until the user stops them.
func (r *RootCommand) interactiveContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addOpts := &AddOptions{}
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long:  "Add a new task to the front of the list with the given metadata.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewAddCommand(r.app, addOpts).Execute(ctx, args)
		},
	}
	addCmd.Flags().StringVar(&addOpts.Category, "category", "personal", "Task category (work, personal, urgent, shopping, health, learning, family)")
	addCmd.Flags().StringVar(&addOpts.Priority, "priority", "medium", "Task priority (low, medium, high)")
	addCmd.Flags().StringVar(&addOpts.Deadline, "deadline", "", `Deadline as "YYYY-MM-DD" or "YYYY-MM-DD HH:MM"`)
	addCmd.Flags().StringVar(&addOpts.Description, "description", "", "Task description")
	addCmd.Flags().StringVar(&addOpts.Recurring, "recurring", "none", "Recurrence (none, daily, weekly, monthly)")
	addCmd.Flags().IntVar(&addOpts.Estimate, "estimate", 0, "Estimated minutes")
	addCmd.Flags().StringVar(&addOpts.Tags, "tags", "", "Comma-separated tags")

	quickCmd := &cobra.Command{
		Use:   "quick [title]",
		Short: "Quick-add a task with defaults",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewQuickCommand(r.app).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [filter] [search]",
		Short: "List tasks",
		Long: `List tasks in display order, optionally filtered.

Filters: all, today, week, overdue, completed, recurring, or a category name
(work, personal, urgent, shopping, health, learning, family). Remaining
arguments search titles, descriptions, categories, and tags.

Examples:
  flowtask list                  # All tasks
  flowtask list today            # Tasks due today
  flowtask list work "report"    # Work tasks matching "report"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewListCommand(r.app).Execute(ctx, args)
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle task completion",
		Long:  "Toggle a task's completion. Completing a recurring task creates its next occurrence.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDoneCommand(r.app).Execute(ctx, args)
		},
	}

	editOpts := &EditOptions{}
	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a task in place",
		Long:  "Update task fields in place. Only the given flags change; the task keeps its id, creation time, tracked time, and session history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editOpts.TitleSet = cmd.Flags().Changed("title")
			editOpts.CategorySet = cmd.Flags().Changed("category")
			editOpts.PrioritySet = cmd.Flags().Changed("priority")
			editOpts.DeadlineSet = cmd.Flags().Changed("deadline")
			editOpts.DescriptionSet = cmd.Flags().Changed("description")
			editOpts.RecurringSet = cmd.Flags().Changed("recurring")
			editOpts.EstimateSet = cmd.Flags().Changed("estimate")
			editOpts.TagsSet = cmd.Flags().Changed("tags")

			ctx, cancel := r.commandContext()
			defer cancel()
			return NewEditCommand(r.app, editOpts).Execute(ctx, args)
		},
	}
	editCmd.Flags().StringVar(&editOpts.Title, "title", "", "New title")
	editCmd.Flags().StringVar(&editOpts.Category, "category", "", "New category")
	editCmd.Flags().StringVar(&editOpts.Priority, "priority", "", "New priority")
	editCmd.Flags().StringVar(&editOpts.Deadline, "deadline", "", "New deadline (empty clears it)")
	editCmd.Flags().StringVar(&editOpts.Description, "description", "", "New description")
	editCmd.Flags().StringVar(&editOpts.Recurring, "recurring", "", "New recurrence")
	editCmd.Flags().IntVar(&editOpts.Estimate, "estimate", 0, "New estimate in minutes (0 clears it)")
	editCmd.Flags().StringVar(&editOpts.Tags, "tags", "", "New comma-separated tags")

	var deleteForce bool
	deleteCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Long:  "Delete a task and its session history. Prompts for confirmation unless disabled in settings or forced.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDeleteCommand(r.app, deleteForce).Execute(ctx, args)
		},
	}
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")

	moveCmd := &cobra.Command{
		Use:   "move [id] [target-id]",
		Short: "Move a task to another task's position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewMoveCommand(r.app).Execute(ctx, args)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewClearCommand(r.app).Execute(ctx, args)
		},
	}

	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "Per-task time tracking",
		Long:  "Track time spent on tasks. At most one task is tracked at a time; starting a new tracker stops and commits the previous one.",
	}
	trackCmd.AddCommand(
		&cobra.Command{
			Use:   "start [id]",
			Short: "Start tracking a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTrackCommand(r.app).Start(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop tracking and commit the time",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTrackCommand(r.app).Stop(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the currently tracked task",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTrackCommand(r.app).Status(ctx, args)
			},
		},
	)

	var pomodoroMinutes int
	pomodoroCmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Run a Pomodoro countdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.interactiveContext()
			defer cancel()
			return NewPomodoroCommand(r.app, pomodoroMinutes).Execute(ctx, args)
		},
	}
	pomodoroCmd.Flags().IntVar(&pomodoroMinutes, "minutes", 0, "Countdown length in minutes (default from settings)")

	focusCmd := &cobra.Command{
		Use:   "focus [id]",
		Short: "Run a focus session on one task",
		Long:  "Run a focus session: an elapsed-time clock on a single task, with the per-task tracker linked when auto time tracking is enabled.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.interactiveContext()
			defer cancel()
			return NewFocusCommand(r.app).Execute(ctx, args)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch deadlines and print alerts",
		Long:  "Run the deadline sweep loop: an immediate check, then one per interval, alerting on approaching and overdue deadlines.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.interactiveContext()
			defer cancel()
			return NewWatchCommand(r.app).Execute(ctx, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show productivity statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStatsCommand(r.app).Execute(ctx, args)
		},
	}

	calendarCmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show the month calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewCalendarCommand(r.app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export all tasks to JSON",
		Long:  `Export the whole task collection to a JSON file (default name tasks_YYYY-MM-DD.json; "-" writes to stdout).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import [path]",
		Short: "Import tasks from an export file",
		Long:  "Import tasks from a JSON export. Tasks keep their exported ids; ids already present are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewImportCommand(r.app).Execute(ctx, args)
		},
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change user preferences",
	}
	settingsCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show all settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewSettingsCommand(r.app).Show(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "set [key] [value]",
			Short: "Change one setting",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewSettingsCommand(r.app).Set(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "themes",
			Short: "List the color theme catalog",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewSettingsCommand(r.app).Themes(ctx, args)
			},
		},
	)

	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks and restore default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewResetCommand(r.app, resetForce).Execute(ctx, args)
		},
	}
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")

	r.cmd.AddCommand(
		addCmd,
		quickCmd,
		listCmd,
		doneCmd,
		editCmd,
		deleteCmd,
		moveCmd,
		clearCmd,
		trackCmd,
		pomodoroCmd,
		focusCmd,
		watchCmd,
		statsCmd,
		calendarCmd,
		exportCmd,
		importCmd,
		settingsCmd,
		resetCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if settingsDir, _ := flags.GetString("settings-dir"); settingsDir != "" {
		r.config.Settings.Dir = settingsDir
	}
	if interval, _ := flags.GetDuration("sweep-interval"); interval > 0 {
		r.config.Notification.SweepInterval = interval
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
