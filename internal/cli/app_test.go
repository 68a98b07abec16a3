package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskID(t *testing.T) {
	id, err := parseTaskID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, arg := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := parseTaskID(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}

func TestParseDeadline(t *testing.T) {
	t.Run("empty is no deadline", func(t *testing.T) {
		deadline, err := parseDeadline("")
		require.NoError(t, err)
		assert.Nil(t, deadline)
	})

	t.Run("date and time", func(t *testing.T) {
		deadline, err := parseDeadline("2024-06-20 17:30")
		require.NoError(t, err)
		require.NotNil(t, deadline)
		assert.Equal(t, 17, deadline.Hour())
		assert.Equal(t, 30, deadline.Minute())
	})

	t.Run("bare date lands at end of day", func(t *testing.T) {
		deadline, err := parseDeadline("2024-06-20")
		require.NoError(t, err)
		require.NotNil(t, deadline)
		assert.Equal(t, 20, deadline.Day())
		assert.Equal(t, 23, deadline.Hour())
		assert.Equal(t, 59, deadline.Minute())
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		for _, arg := range []string{"tomorrow", "20/06/2024", "2024-6-20"} {
			_, err := parseDeadline(arg)
			assert.Error(t, err, "arg %q", arg)
		}
	})
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{}, parseTags(""))
	assert.Equal(t, []string{}, parseTags("   "))
	assert.Equal(t, []string{"work"}, parseTags("work"))
	assert.Equal(t, []string{"work", "urgent"}, parseTags("work, urgent"))
	assert.Equal(t, []string{"a", "b"}, parseTags("a,,b,"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0s"},
		{30, "30s"},
		{59, "59s"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h 0m"},
		{4980, "1h 23m"},
		{7265, "2h 1m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatDuration(tt.seconds))
	}
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "25:00", formatCountdown(25*time.Minute))
	assert.Equal(t, "00:09", formatCountdown(9*time.Second))
	assert.Equal(t, "01:05", formatCountdown(65*time.Second))
	assert.Equal(t, "00:00", formatCountdown(0))
}
