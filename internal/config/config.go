package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the application
type Config struct {
	Database     DatabaseConfig
	Settings     SettingsConfig
	Notification NotificationConfig
	Display      DisplayConfig
	Application  ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"FLOWTASK_DB_DIR"`
	Filename       string        `env:"FLOWTASK_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"FLOWTASK_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"FLOWTASK_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"FLOWTASK_DB_DIR_PERMISSIONS"`
}

// SettingsConfig holds the location of the user settings file
type SettingsConfig struct {
	Dir      string `env:"FLOWTASK_SETTINGS_DIR"`
	Filename string `env:"FLOWTASK_SETTINGS_FILENAME"`
}

// NotificationConfig holds deadline-sweep configuration
type NotificationConfig struct {
	SweepInterval time.Duration `env:"FLOWTASK_NOTIFY_SWEEP_INTERVAL"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"FLOWTASK_TIME_DISPLAY_FORMAT"`
	DateFormat string `env:"FLOWTASK_DATE_DISPLAY_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"FLOWTASK_APP_TIMEOUT"`
	Verbose bool          `env:"FLOWTASK_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".flowtask")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDir,
			Filename:       "flowtask.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Settings: SettingsConfig{
			Dir:      defaultDir,
			Filename: "settings.toml",
		},
		Notification: NotificationConfig{
			SweepInterval: time.Minute,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
			DateFormat: "2006-01-02",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetSettingsPath returns the full path to the settings file
func (c *Config) GetSettingsPath() string {
	return filepath.Join(c.Settings.Dir, c.Settings.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("FLOWTASK_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("FLOWTASK_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("FLOWTASK_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("FLOWTASK_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("FLOWTASK_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	if dir := os.Getenv("FLOWTASK_SETTINGS_DIR"); dir != "" {
		c.Settings.Dir = dir
	}
	if filename := os.Getenv("FLOWTASK_SETTINGS_FILENAME"); filename != "" {
		c.Settings.Filename = filename
	}

	if interval := os.Getenv("FLOWTASK_NOTIFY_SWEEP_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Notification.SweepInterval = d
		}
	}

	if format := os.Getenv("FLOWTASK_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("FLOWTASK_DATE_DISPLAY_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	if timeout := os.Getenv("FLOWTASK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("FLOWTASK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Settings.Dir == "" {
		return &ConfigError{Field: "settings.dir", Message: "settings directory cannot be empty"}
	}
	if c.Settings.Filename == "" {
		return &ConfigError{Field: "settings.filename", Message: "settings filename cannot be empty"}
	}

	if c.Notification.SweepInterval <= 0 {
		return &ConfigError{Field: "notification.sweep_interval", Message: "sweep interval must be positive"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
