package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flowtask/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	return NewStore(path, zap.NewNop()), path
}

func TestStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	loaded := store.Load()
	assert.Equal(t, domain.DefaultSettings(), loaded)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	settings := domain.DefaultSettings()
	settings.NotificationsEnabled = false
	settings.DefaultTimerMinutes = 45
	settings.ColorTheme = "emerald"
	settings.DefaultView = string(domain.ViewCalendar)
	settings.DarkMode = true

	require.NoError(t, store.Save(settings))
	assert.Equal(t, settings, store.Load())
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.toml")
	store := NewStore(path, zap.NewNop())

	require.NoError(t, store.Save(domain.DefaultSettings()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_SaveRejectsInvalidValues(t *testing.T) {
	store, _ := newTestStore(t)

	settings := domain.DefaultSettings()
	settings.DefaultTimerMinutes = 0
	assert.Error(t, store.Save(settings))

	settings = domain.DefaultSettings()
	settings.AdvanceNoticeMinutes = -1
	assert.Error(t, store.Save(settings))
}

func TestStore_LoadMergesPartialFile(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("default_timer_minutes = 50\nnotifications = false\n"), 0o644))

	loaded := store.Load()
	assert.Equal(t, 50, loaded.DefaultTimerMinutes)
	assert.False(t, loaded.NotificationsEnabled)

	// Keys absent from the file keep their defaults.
	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.AdvanceNoticeMinutes, loaded.AdvanceNoticeMinutes)
	assert.Equal(t, defaults.ColorTheme, loaded.ColorTheme)
}

func TestStore_LoadCorruptFileReturnsDefaults(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	assert.Equal(t, domain.DefaultSettings(), store.Load())
}

func TestStore_LoadSanitizesOutOfRangeValues(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte(
		"default_timer_minutes = 500\nadvance_notice_minutes = -3\ndefault_view = \"kanban\"\ncolor_theme = \"neon\"\n"), 0o644))

	loaded := store.Load()
	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.DefaultTimerMinutes, loaded.DefaultTimerMinutes)
	assert.Equal(t, defaults.AdvanceNoticeMinutes, loaded.AdvanceNoticeMinutes)
	assert.Equal(t, string(domain.ViewDashboard), loaded.DefaultView)
	assert.Equal(t, defaults.ColorTheme, loaded.ColorTheme)
}

func TestStore_Reset(t *testing.T) {
	store, _ := newTestStore(t)

	custom := domain.DefaultSettings()
	custom.DefaultTimerMinutes = 55
	require.NoError(t, store.Save(custom))

	defaults, err := store.Reset()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), defaults)
	assert.Equal(t, domain.DefaultSettings(), store.Load())
}
