package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"flowtask/internal/domain"
	"flowtask/internal/errors"
	"flowtask/internal/settings"
)

// SettingsCommand shows and updates user preferences: settings show,
// settings set <key> <value>, settings themes.
type SettingsCommand struct {
	settings     *settings.Store
	errorHandler *ErrorHandler
}

// NewSettingsCommand creates a new settings command handler
func NewSettingsCommand(app *App) *SettingsCommand {
	return &SettingsCommand{
		settings:     app.settings,
		errorHandler: NewErrorHandler(),
	}
}

// Show prints all current settings.
func (c *SettingsCommand) Show(ctx context.Context, args []string) error {
	s := c.settings.Load()

	fmt.Printf("notifications          %t\n", s.NotificationsEnabled)
	fmt.Printf("advance_notice_minutes %d\n", s.AdvanceNoticeMinutes)
	fmt.Printf("timer_sound            %t\n", s.TimerSound)
	fmt.Printf("auto_time_tracking     %t\n", s.AutoTimeTracking)
	fmt.Printf("delete_confirmation    %t\n", s.DeleteConfirmation)
	fmt.Printf("celebration            %t\n", s.Celebration)
	fmt.Printf("default_timer_minutes  %d\n", s.DefaultTimerMinutes)
	fmt.Printf("default_view           %s\n", s.DefaultView)
	fmt.Printf("color_theme            %s\n", s.ColorTheme)
	fmt.Printf("dark_mode              %t\n", s.DarkMode)
	return nil
}

// Set updates one setting and persists the file.
func (c *SettingsCommand) Set(ctx context.Context, args []string) error {
	key, value := args[0], args[1]

	current := c.settings.Load()
	updated, err := applySetting(current, key, value)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.settings.Save(updated); err != nil {
		return c.errorHandler.Handle("save settings", err)
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// Themes lists the theme catalog with its color values.
func (c *SettingsCommand) Themes(ctx context.Context, args []string) error {
	current := c.settings.Load().ColorTheme

	for _, name := range domain.ThemeNames() {
		theme, _ := domain.ThemeByName(name)
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Printf("%s %-8s %s %s %s\n", marker, name, theme.Primary, theme.PrimaryDark, theme.Secondary)
	}
	return nil
}

// applySetting returns a copy of s with one key changed.
func applySetting(s domain.Settings, key, value string) (domain.Settings, error) {
	switch key {
	case "notifications":
		b, err := parseBoolSetting(key, value)
		if err != nil {
			return s, err
		}
		s.NotificationsEnabled = b
	case "advance_notice_minutes":
		n, err := parseIntSetting(key, value)
		if err != nil {
			return s, err
		}
		s.AdvanceNoticeMinutes = n
	case "timer_sound":
		b, err := parseBoolSetting(key, value)
		if err != nil {
			return s, err
		}
		s.TimerSound = b
	case "auto_time_tracking":
		b, err := parseBoolSetting(key, value)
		if err != nil {
			return s, err
		}
		s.AutoTimeTracking = b
	case "delete_confirmation":
		b, err := parseBoolSetting(key, value)
		if err != nil {
			return s, err
		}
		s.DeleteConfirmation = b
	case "celebration":
		b, err := parseBoolSetting(key, value)
		if err != nil {
			return s, err
		}
		s.Celebration = b
	case "default_timer_minutes":
		n, err := parseIntSetting(key, value)
		if err != nil {
			return s, err
		}
		s.DefaultTimerMinutes = n
	case "default_view":
		s.DefaultView = string(domain.ParseView(value))
	case "color_theme":
		if _, ok := domain.ThemeByName(value); !ok {
			return s, errors.NewInvalidInputError(key, value,
				"unknown theme, see: flowtask settings themes")
		}
		s.ColorTheme = value
	case "dark_mode":
		b, err := parseBoolSetting(key, value)
		if err != nil {
			return s, err
		}
		s.DarkMode = b
	default:
		return s, errors.NewInvalidInputError("setting", key, "unknown key")
	}
	return s, nil
}

func parseBoolSetting(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return false, errors.NewInvalidInputError(key, value, "must be true or false")
	}
	return b, nil
}

func parseIntSetting(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.NewInvalidInputError(key, value, "must be an integer")
	}
	return n, nil
}
