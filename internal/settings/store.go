// Package settings persists user preferences to a TOML file, merged over
// built-in defaults so missing keys fall back.
package settings

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"flowtask/internal/domain"
	"flowtask/internal/errors"
	"flowtask/internal/validation"
)

// Store reads and writes the settings file.
type Store struct {
	path      string
	logger    *zap.Logger
	validator *validation.TimerValidator
}

// NewStore creates a settings store backed by the given file path.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:      path,
		logger:    logger,
		validator: validation.NewTimerValidator(),
	}
}

// Load reads the settings file and merges it over the defaults. A missing
// file yields the defaults; a corrupt file is logged and also yields the
// defaults, never a fatal error.
func (s *Store) Load() domain.Settings {
	loaded := domain.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read settings file, using defaults",
				zap.String("path", s.path), zap.Error(err))
		}
		return loaded
	}

	if err := toml.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("failed to parse settings file, using defaults",
			zap.String("path", s.path), zap.Error(err))
		return domain.DefaultSettings()
	}

	return s.sanitize(loaded)
}

// Save validates and writes the settings to disk, creating the parent
// directory on first run.
func (s *Store) Save(settings domain.Settings) error {
	if err := s.validator.ValidateMinutes(settings.DefaultTimerMinutes); err != nil {
		return errors.NewValidationError("invalid default timer duration", err)
	}
	if err := s.validator.ValidateAdvanceNotice(settings.AdvanceNoticeMinutes); err != nil {
		return errors.NewValidationError("invalid advance notice", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return errors.NewStorageError("encode settings", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.NewStorageError("create settings directory", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.NewStorageError("write settings file", err)
	}
	return nil
}

// Reset restores the defaults and persists them.
func (s *Store) Reset() (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if err := s.Save(defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}

// sanitize clamps out-of-range loaded values back to their defaults rather
// than failing the load.
func (s *Store) sanitize(settings domain.Settings) domain.Settings {
	defaults := domain.DefaultSettings()

	if err := s.validator.ValidateMinutes(settings.DefaultTimerMinutes); err != nil {
		s.logger.Warn("invalid default timer duration in settings file, using default",
			zap.Int("minutes", settings.DefaultTimerMinutes))
		settings.DefaultTimerMinutes = defaults.DefaultTimerMinutes
	}
	if err := s.validator.ValidateAdvanceNotice(settings.AdvanceNoticeMinutes); err != nil {
		s.logger.Warn("invalid advance notice in settings file, using default",
			zap.Int("minutes", settings.AdvanceNoticeMinutes))
		settings.AdvanceNoticeMinutes = defaults.AdvanceNoticeMinutes
	}
	settings.DefaultView = string(domain.ParseView(settings.DefaultView))
	if _, ok := domain.ThemeByName(settings.ColorTheme); !ok {
		settings.ColorTheme = defaults.ColorTheme
	}
	return settings
}
