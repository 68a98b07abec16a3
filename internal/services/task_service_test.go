package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowtask/internal/domain"
	"flowtask/internal/errors"
	"flowtask/internal/repository/sqlite"
)

func setupTaskService(t *testing.T) (*taskServiceImpl, sqlite.Repository) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	svc := NewTaskService(repo).(*taskServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func TestTaskService_Add(t *testing.T) {
	tests := []struct {
		name           string
		input          TaskInput
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name: "should add task with full metadata",
			input: TaskInput{
				Title:    "Write report",
				Category: domain.CategoryWork,
				Priority: domain.PriorityHigh,
				Tags:     []string{"q2", "finance"},
			},
		},
		{
			name:  "should reject empty title",
			input: TaskInput{Title: "   "},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name: "should reject non-positive estimate",
			input: TaskInput{
				Title:            "Estimate",
				EstimatedMinutes: func() *int { v := -5; return &v }(),
			},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setupTaskService(t)
			task, err := svc.Add(context.Background(), tt.input)
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, task.ID)
			assert.Equal(t, tt.input.Title, task.Title)
			assert.False(t, task.Completed)
		})
	}
}

func TestTaskService_AddGoesToFront(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, TaskInput{Title: "first"})
	require.NoError(t, err)
	second, err := svc.Add(ctx, TaskInput{Title: "second"})
	require.NoError(t, err)
	third, err := svc.Add(ctx, TaskInput{Title: "third"})
	require.NoError(t, err)

	// Sort order is the collection size at insertion time.
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.Equal(t, 2, third.SortOrder)

	// List order is most-recent-first.
	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, third.ID, tasks[0].ID)
	assert.Equal(t, second.ID, tasks[1].ID)
	assert.Equal(t, first.ID, tasks[2].ID)
}

func TestTaskService_DeleteRenumbersDensely(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"a", "b", "c", "d"} {
		task, err := svc.Add(ctx, TaskInput{Title: title})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	require.NoError(t, svc.Delete(ctx, ids[1]))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, i, task.SortOrder, "sort order must be dense 0..n-1 in list order")
	}
}

func TestTaskService_DeleteMissingIsNotFound(t *testing.T) {
	svc, _ := setupTaskService(t)

	err := svc.Delete(context.Background(), 999)
	assert.True(t, errors.IsNotFound(err))
}

func TestTaskService_UpdatePreservesIdentityAndHistory(t *testing.T) {
	svc, repo := setupTaskService(t)
	ctx := context.Background()

	task, err := svc.Add(ctx, TaskInput{Title: "original", Category: domain.CategoryWork})
	require.NoError(t, err)
	require.NoError(t, repo.AddTimeSpent(ctx, task.ID, 120))

	updated, err := svc.Update(ctx, task.ID, TaskInput{
		Title:    "renamed",
		Category: domain.CategoryHealth,
		Priority: domain.PriorityLow,
		Tags:     []string{"habit"},
	})
	require.NoError(t, err)

	assert.Equal(t, task.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, domain.CategoryHealth, updated.Category)
	assert.True(t, updated.CreatedAt.Equal(task.CreatedAt))
	assert.Equal(t, 120, updated.TimeSpentSeconds)
}

func TestTaskService_ToggleComplete(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	task, err := svc.Add(ctx, TaskInput{Title: "one-off"})
	require.NoError(t, err)

	result, err := svc.ToggleComplete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, result.Task.Completed)
	require.NotNil(t, result.Task.CompletedAt)
	assert.Nil(t, result.Spawned)

	result, err = svc.ToggleComplete(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, result.Task.Completed)
	assert.Nil(t, result.Task.CompletedAt)
}

func TestTaskService_ToggleCompleteSpawnsRecurring(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	deadline := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	task, err := svc.Add(ctx, TaskInput{
		Title:      "weekly review",
		Recurrence: domain.RecurrenceWeekly,
		Deadline:   &deadline,
	})
	require.NoError(t, err)

	result, err := svc.ToggleComplete(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Spawned)

	spawned := result.Spawned
	assert.NotEqual(t, task.ID, spawned.ID)
	assert.Equal(t, task.Title, spawned.Title)
	assert.False(t, spawned.Completed)
	require.NotNil(t, spawned.LastRecurringID)
	assert.Equal(t, task.ID, *spawned.LastRecurringID)
	require.NotNil(t, spawned.Deadline)
	assert.True(t, spawned.Deadline.Equal(time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC)))
}

func TestTaskService_Reorder(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"a", "b", "c", "d"} {
		task, err := svc.Add(ctx, TaskInput{Title: title})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}
	// List order is d, c, b, a.

	// Move a (last) to c's position (index 1).
	require.NoError(t, svc.Reorder(ctx, ids[0], ids[2]))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	got := make([]int64, len(tasks))
	for i, task := range tasks {
		got[i] = task.ID
		assert.Equal(t, i, task.SortOrder)
	}
	assert.Equal(t, []int64{ids[3], ids[0], ids[2], ids[1]}, got)
}

func TestTaskService_ReorderDownward(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"a", "b", "c", "d"} {
		task, err := svc.Add(ctx, TaskInput{Title: title})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}
	// List order is d, c, b, a.

	// Move d (front) down onto b (index 2): d takes b's slot.
	require.NoError(t, svc.Reorder(ctx, ids[3], ids[1]))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	got := make([]int64, len(tasks))
	for i, task := range tasks {
		got[i] = task.ID
		assert.Equal(t, i, task.SortOrder)
	}
	assert.Equal(t, []int64{ids[2], ids[1], ids[3], ids[0]}, got)
}

func TestTaskService_ReorderUnknownTarget(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	task, err := svc.Add(ctx, TaskInput{Title: "only"})
	require.NoError(t, err)

	err = svc.Reorder(ctx, task.ID, 999)
	assert.True(t, errors.IsNotFound(err))
}

func TestTaskService_ClearCompleted(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	keep, err := svc.Add(ctx, TaskInput{Title: "keep"})
	require.NoError(t, err)
	done1, err := svc.Add(ctx, TaskInput{Title: "done1"})
	require.NoError(t, err)
	done2, err := svc.Add(ctx, TaskInput{Title: "done2"})
	require.NoError(t, err)

	_, err = svc.ToggleComplete(ctx, done1.ID)
	require.NoError(t, err)
	_, err = svc.ToggleComplete(ctx, done2.ID)
	require.NoError(t, err)

	count, err := svc.ClearCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
	assert.Equal(t, 0, tasks[0].SortOrder)
}

func TestTaskService_ResetAll(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, TaskInput{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(ctx))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_ImportKeepsIDsAndSkipsExisting(t *testing.T) {
	svc, _ := setupTaskService(t)
	ctx := context.Background()

	existing, err := svc.Add(ctx, TaskInput{Title: "existing"})
	require.NoError(t, err)

	stopped := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	incoming := []*domain.Task{
		{
			ID:        existing.ID,
			Title:     "duplicate of existing",
			CreatedAt: time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:               4242,
			Title:            "imported",
			Category:         domain.CategoryLearning,
			Priority:         domain.PriorityHigh,
			Tags:             []string{"book"},
			CreatedAt:        time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC),
			TimeSpentSeconds: 600,
			Sessions: []domain.Session{
				{StartedAt: stopped.Add(-10 * time.Minute), StoppedAt: &stopped, DurationSeconds: 600},
			},
		},
	}

	count, err := svc.Import(ctx, incoming)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	imported, err := svc.Get(ctx, 4242)
	require.NoError(t, err)
	assert.Equal(t, "imported", imported.Title)
	assert.Equal(t, 600, imported.TimeSpentSeconds)
	require.Len(t, imported.Sessions, 1)
	assert.Equal(t, 600, imported.Sessions[0].DurationSeconds)

	// The pre-existing task kept its own title.
	kept, err := svc.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "existing", kept.Title)
}
