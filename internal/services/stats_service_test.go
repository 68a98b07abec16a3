package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowtask/internal/domain"
)

// fakeTaskLister satisfies just enough of TaskService for stats tests.
type fakeTaskLister struct {
	TaskService
	tasks []*domain.Task
}

func (f *fakeTaskLister) List(ctx context.Context) ([]*domain.Task, error) {
	return f.tasks, nil
}

func statsOver(tasks []*domain.Task) StatsService {
	return NewStatsService(&fakeTaskLister{tasks: tasks})
}

func TestStatsService_SummaryCounts(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	completedAt := now.Add(-time.Hour)

	stats, err := statsOver([]*domain.Task{
		{ID: 1, Category: domain.CategoryWork, CreatedAt: now.Add(-48 * time.Hour), TimeSpentSeconds: 300},
		{ID: 2, Category: domain.CategoryWork, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, Category: domain.CategoryHealth, Completed: true, CompletedAt: &completedAt,
			CreatedAt: now.Add(-30 * time.Hour), TimeSpentSeconds: 60},
	}).Summary(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 2, stats.CategoryCounts[domain.CategoryWork])
	assert.Equal(t, 1, stats.CategoryCounts[domain.CategoryHealth])
	assert.Equal(t, 360, stats.TimeSpentSeconds)
}

func TestStatsService_StreakDays(t *testing.T) {
	now := time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)
	today := now.Add(-2 * time.Hour)
	yesterday := now.Add(-26 * time.Hour)

	stats, err := statsOver([]*domain.Task{
		{ID: 1, Completed: true, CompletedAt: &today, CreatedAt: now},
	}).Summary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.StreakDays)

	stats, err = statsOver([]*domain.Task{
		{ID: 1, Completed: true, CompletedAt: &yesterday, CreatedAt: now},
	}).Summary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.StreakDays, "no completion today means no streak")
}

func TestStatsService_BestStreak(t *testing.T) {
	now := time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)

	day := func(offset int) *time.Time {
		d := time.Date(2024, time.June, 1+offset, 10, 0, 0, 0, time.UTC)
		return &d
	}

	// Completions on June 1, 2, 3, then a gap, then June 6.
	stats, err := statsOver([]*domain.Task{
		{ID: 1, Completed: true, CompletedAt: day(0), CreatedAt: now},
		{ID: 2, Completed: true, CompletedAt: day(1), CreatedAt: now},
		{ID: 3, Completed: true, CompletedAt: day(2), CreatedAt: now},
		{ID: 4, Completed: true, CompletedAt: day(5), CreatedAt: now},
	}).Summary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.BestStreakDays)

	stats, err = statsOver(nil).Summary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.BestStreakDays)
}

func TestStatsService_AverageCompletionDays(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no completed tasks", func(t *testing.T) {
		stats, err := statsOver([]*domain.Task{
			{ID: 1, CreatedAt: now},
		}).Summary(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, "-", stats.AverageCompletionDays)
	})

	t.Run("completed instantly", func(t *testing.T) {
		completedAt := now
		stats, err := statsOver([]*domain.Task{
			{ID: 1, Completed: true, CreatedAt: now, CompletedAt: &completedAt},
		}).Summary(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, "<1", stats.AverageCompletionDays)
	})

	t.Run("multi-day average rounds", func(t *testing.T) {
		done1 := now
		done2 := now
		stats, err := statsOver([]*domain.Task{
			{ID: 1, Completed: true, CreatedAt: now.Add(-50 * time.Hour), CompletedAt: &done1},
			{ID: 2, Completed: true, CreatedAt: now.Add(-98 * time.Hour), CompletedAt: &done2},
		}).Summary(context.Background(), now)
		require.NoError(t, err)
		// ceil(50h/24) = 3 days, ceil(98h/24) = 5 days, average 4.
		assert.Equal(t, "4", stats.AverageCompletionDays)
	})
}

func TestStatsService_CreatedThisWeek(t *testing.T) {
	// June 15 2024 is a Saturday; the week runs Sunday June 9 .. Saturday June 15.
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	stats, err := statsOver([]*domain.Task{
		{ID: 1, CreatedAt: time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)},
		{ID: 2, CreatedAt: time.Date(2024, time.June, 14, 23, 0, 0, 0, time.UTC)},
		{ID: 3, CreatedAt: time.Date(2024, time.June, 8, 23, 59, 0, 0, time.UTC)},
	}).Summary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CreatedThisWeek)
}

func TestStatsService_MonthView(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	due := time.Date(2024, time.June, 20, 9, 0, 0, 0, time.UTC)
	past := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	doneAt := past

	view, err := statsOver([]*domain.Task{
		{ID: 1, Title: "pending", Deadline: &due, CreatedAt: now},
		{ID: 2, Title: "overdue", Deadline: &past, CreatedAt: now},
		{ID: 3, Title: "done", Deadline: &past, Completed: true, CompletedAt: &doneAt, CreatedAt: now},
		{ID: 4, Title: "no deadline", CreatedAt: now},
	}).MonthView(context.Background(), 2024, time.June, now)
	require.NoError(t, err)

	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, time.June, view.Month)
	require.Len(t, view.Days, 30)
	// June 1 2024 is a Saturday.
	assert.Equal(t, 6, view.LeadingBlanks)
	assert.True(t, view.Days[14].IsToday)

	day20 := view.Days[19]
	require.Len(t, day20.Tasks, 1)
	assert.Equal(t, CellPending, day20.Tasks[0].Status)

	day10 := view.Days[9]
	require.Len(t, day10.Tasks, 2)
	assert.Equal(t, CellOverdue, day10.Tasks[0].Status)
	assert.Equal(t, CellCompleted, day10.Tasks[1].Status)
}

func TestStatsService_HighPriority(t *testing.T) {
	stats := statsOver([]*domain.Task{
		{ID: 1, Priority: domain.PriorityHigh, SortOrder: 1},
		{ID: 2, Priority: domain.PriorityHigh, Completed: true, SortOrder: 0},
		{ID: 3, Priority: domain.PriorityMedium, SortOrder: 2},
		{ID: 4, Priority: domain.PriorityHigh, SortOrder: 0},
	})

	focus, err := stats.HighPriority(context.Background())
	require.NoError(t, err)
	require.Len(t, focus, 2)
	assert.Equal(t, int64(4), focus[0].ID)
	assert.Equal(t, int64(1), focus[1].ID)
}
