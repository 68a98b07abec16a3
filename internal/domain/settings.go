package domain

// View identifies the landing screen the application opens on.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewTasks     View = "tasks"
	ViewTimer     View = "timer"
	ViewCalendar  View = "calendar"
	ViewStats     View = "stats"
)

// ParseView maps a string to a View, falling back to the dashboard.
func ParseView(s string) View {
	switch View(s) {
	case ViewTasks, ViewTimer, ViewCalendar, ViewStats:
		return View(s)
	default:
		return ViewDashboard
	}
}

// Settings is the flat record of user preferences. It is loaded once at
// startup, merged over defaults so missing keys fall back, and persisted
// after every change.
type Settings struct {
	NotificationsEnabled bool   `toml:"notifications"`
	AdvanceNoticeMinutes int    `toml:"advance_notice_minutes"`
	TimerSound           bool   `toml:"timer_sound"`
	AutoTimeTracking     bool   `toml:"auto_time_tracking"`
	DeleteConfirmation   bool   `toml:"delete_confirmation"`
	Celebration          bool   `toml:"celebration"`
	DefaultTimerMinutes  int    `toml:"default_timer_minutes"`
	DefaultView          string `toml:"default_view"`
	ColorTheme           string `toml:"color_theme"`
	DarkMode             bool   `toml:"dark_mode"`
}

// DefaultSettings returns the built-in preference defaults.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		AdvanceNoticeMinutes: 30,
		TimerSound:           true,
		AutoTimeTracking:     true,
		DeleteConfirmation:   true,
		Celebration:          true,
		DefaultTimerMinutes:  25,
		DefaultView:          string(ViewDashboard),
		ColorTheme:           DefaultThemeName,
		DarkMode:             false,
	}
}
