package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowtask/internal/domain"
)

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.June, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "tasks_2024-06-05.json", Filename(now))
}

func TestWriteRead_RoundTrip(t *testing.T) {
	deadline := time.Date(2024, time.June, 20, 17, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	completedAt := time.Date(2024, time.June, 18, 14, 30, 0, 0, time.UTC)
	stoppedAt := time.Date(2024, time.June, 2, 10, 30, 0, 0, time.UTC)
	estimate := 90
	parentID := int64(3)

	tasks := []*domain.Task{
		{
			ID:               7,
			Title:            "Quarterly review",
			Category:         domain.CategoryWork,
			Priority:         domain.PriorityHigh,
			Deadline:         &deadline,
			Description:      "prepare slides",
			Recurrence:       domain.RecurrenceMonthly,
			EstimatedMinutes: &estimate,
			Tags:             []string{"q2", "slides"},
			Completed:        true,
			CreatedAt:        createdAt,
			CompletedAt:      &completedAt,
			LastRecurringID:  &parentID,
			SortOrder:        2,
			TimeSpentSeconds: 1800,
			Sessions: []domain.Session{
				{ID: 1, TaskID: 7, StartedAt: stoppedAt.Add(-30 * time.Minute), StoppedAt: &stoppedAt, DurationSeconds: 1800},
			},
		},
		{
			ID:        8,
			Title:     "Bare minimum",
			Category:  domain.CategoryPersonal,
			Priority:  domain.PriorityMedium,
			CreatedAt: createdAt,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tasks))

	decoded, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	got := decoded[0]
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Quarterly review", got.Title)
	assert.Equal(t, domain.CategoryWork, got.Category)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))
	assert.Equal(t, "prepare slides", got.Description)
	assert.Equal(t, domain.RecurrenceMonthly, got.Recurrence)
	require.NotNil(t, got.EstimatedMinutes)
	assert.Equal(t, 90, *got.EstimatedMinutes)
	assert.Equal(t, []string{"q2", "slides"}, got.Tags)
	assert.True(t, got.Completed)
	assert.True(t, got.CreatedAt.Equal(createdAt))
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(completedAt))
	require.NotNil(t, got.LastRecurringID)
	assert.Equal(t, parentID, *got.LastRecurringID)
	assert.Equal(t, 2, got.SortOrder)
	assert.Equal(t, 1800, got.TimeSpentSeconds)

	require.Len(t, got.Sessions, 1)
	session := got.Sessions[0]
	assert.Equal(t, 1800, session.DurationSeconds)
	require.NotNil(t, session.StoppedAt)
	assert.True(t, session.StoppedAt.Equal(stoppedAt))
	assert.True(t, session.StartedAt.Equal(stoppedAt.Add(-30*time.Minute)))

	bare := decoded[1]
	assert.Nil(t, bare.Deadline)
	assert.Nil(t, bare.CompletedAt)
	assert.Empty(t, bare.Sessions)
	assert.Equal(t, []string{}, bare.Tags)
}

func TestRead_DefaultsAbsentFields(t *testing.T) {
	// Minimal record shape without tags, sessions, or timeSpent.
	input := `[{"id": 1, "title": "old export", "category": "work", "priority": "low",
		"createdAt": "2024-01-02T15:04:05Z", "completed": false}]`

	tasks, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, []string{}, task.Tags)
	assert.Empty(t, task.Sessions)
	assert.Zero(t, task.TimeSpentSeconds)
	assert.Nil(t, task.EstimatedMinutes)
	assert.Equal(t, domain.RecurrenceNone, task.Recurrence)
}

func TestRead_RejectsMalformedInput(t *testing.T) {
	_, err := Read(strings.NewReader("{not json"))
	assert.Error(t, err)

	_, err = Read(strings.NewReader(`[{"id": 1, "title": "bad time", "createdAt": "yesterday"}]`))
	assert.Error(t, err)
}

func TestWrite_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))

	tasks, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
