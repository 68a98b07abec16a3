package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{name: "known category", input: "work", expected: CategoryWork},
		{name: "mixed case", input: "Health", expected: CategoryHealth},
		{name: "surrounding whitespace", input: "  family  ", expected: CategoryFamily},
		{name: "unknown falls back to personal", input: "finance", expected: CategoryPersonal},
		{name: "empty falls back to personal", input: "", expected: CategoryPersonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategory(tt.input))
		})
	}
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, ParsePriority("high"))
	assert.Equal(t, PriorityLow, ParsePriority("LOW"))
	assert.Equal(t, PriorityMedium, ParsePriority("medium"))
	assert.Equal(t, PriorityMedium, ParsePriority("critical"))
	assert.Equal(t, PriorityMedium, ParsePriority(""))
}

func TestPriority_Rank(t *testing.T) {
	assert.Equal(t, 0, PriorityHigh.Rank())
	assert.Equal(t, 1, PriorityMedium.Rank())
	assert.Equal(t, 2, PriorityLow.Rank())
}

func TestParseRecurrence(t *testing.T) {
	assert.Equal(t, RecurrenceDaily, ParseRecurrence("daily"))
	assert.Equal(t, RecurrenceNone, ParseRecurrence("yearly"))
	assert.Equal(t, RecurrenceNone, ParseRecurrence(""))
	assert.False(t, RecurrenceNone.IsRecurring())
	assert.True(t, RecurrenceMonthly.IsRecurring())
}

func TestRecurrence_NextDeadline(t *testing.T) {
	base := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		recurrence Recurrence
		deadline   time.Time
		expected   time.Time
	}{
		{
			name:       "daily advances one day",
			recurrence: RecurrenceDaily,
			deadline:   base,
			expected:   time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name:       "weekly advances seven days",
			recurrence: RecurrenceWeekly,
			deadline:   base,
			expected:   time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC),
		},
		{
			name:       "monthly advances one month",
			recurrence: RecurrenceMonthly,
			deadline:   base,
			expected:   time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:       "monthly overflow normalizes",
			recurrence: RecurrenceMonthly,
			deadline:   time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC),
			expected:   time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name:       "none leaves the deadline alone",
			recurrence: RecurrenceNone,
			deadline:   base,
			expected:   base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.recurrence.NextDeadline(tt.deadline))
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, Task{Deadline: &past}.IsOverdue(now))
	assert.False(t, Task{Deadline: &future}.IsOverdue(now))
	assert.False(t, Task{Deadline: &past, Completed: true}.IsOverdue(now))
	assert.False(t, Task{}.IsOverdue(now))
}

func TestTask_DueOn(t *testing.T) {
	deadline := time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC)
	task := Task{Deadline: &deadline}

	assert.True(t, task.DueOn(time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)))
	assert.False(t, task.DueOn(time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, Task{}.DueOn(deadline))
}

func TestTask_DueWithin(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	inWindow := now.Add(3 * 24 * time.Hour)
	atEdge := now.Add(window)
	past := now.Add(-time.Minute)
	beyond := now.Add(window + time.Minute)

	assert.True(t, Task{Deadline: &inWindow}.DueWithin(now, window))
	assert.True(t, Task{Deadline: &atEdge}.DueWithin(now, window))
	assert.False(t, Task{Deadline: &past}.DueWithin(now, window))
	assert.False(t, Task{Deadline: &beyond}.DueWithin(now, window))
	assert.False(t, Task{}.DueWithin(now, window))
}

func TestTask_MatchesSearch(t *testing.T) {
	task := Task{
		Title:       "Write quarterly report",
		Description: "Include revenue numbers",
		Category:    CategoryWork,
		Tags:        []string{"finance", "q2"},
	}

	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{name: "empty matches everything", query: "", expected: true},
		{name: "title substring", query: "quarterly", expected: true},
		{name: "description substring", query: "revenue", expected: true},
		{name: "category display name", query: "work", expected: true},
		{name: "tag", query: "finance", expected: true},
		{name: "case insensitive", query: "QUARTERLY", expected: true},
		{name: "no match", query: "holiday", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, task.MatchesSearch(tt.query))
		})
	}
}
