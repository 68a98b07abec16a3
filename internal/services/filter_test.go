package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowtask/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestFilterTasks_Selectors(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tasks := []*domain.Task{
		{ID: 1, Title: "due today", SortOrder: 0, Deadline: timePtr(now.Add(2 * time.Hour))},
		{ID: 2, Title: "due next week", SortOrder: 1, Deadline: timePtr(now.Add(5 * 24 * time.Hour))},
		{ID: 3, Title: "overdue", SortOrder: 2, Deadline: timePtr(now.Add(-time.Hour))},
		{ID: 4, Title: "overdue but done", SortOrder: 3, Completed: true, Deadline: timePtr(now.Add(-time.Hour))},
		{ID: 5, Title: "weekly chore", SortOrder: 4, Recurrence: domain.RecurrenceWeekly},
		{ID: 6, Title: "work item", SortOrder: 5, Category: domain.CategoryWork},
	}

	tests := []struct {
		name     string
		selector domain.Selector
		expected []int64
	}{
		{name: "all", selector: domain.SelectorAll, expected: []int64{1, 2, 3, 5, 6, 4}},
		{name: "today includes overdue-today", selector: domain.SelectorToday, expected: []int64{1, 3}},
		{name: "week", selector: domain.SelectorWeek, expected: []int64{1, 2}},
		{name: "overdue excludes completed", selector: domain.SelectorOverdue, expected: []int64{3}},
		{name: "completed", selector: domain.SelectorCompleted, expected: []int64{4}},
		{name: "recurring", selector: domain.SelectorRecurring, expected: []int64{5}},
		{name: "category", selector: domain.Selector("work"), expected: []int64{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterTasks(tasks, tt.selector, "", now)
			ids := make([]int64, len(filtered))
			for i, task := range filtered {
				ids[i] = task.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterTasks_Search(t *testing.T) {
	now := time.Now()
	tasks := []*domain.Task{
		{ID: 1, Title: "Buy groceries", Tags: []string{"errand"}},
		{ID: 2, Title: "Review PR", Description: "groceries app backend"},
		{ID: 3, Title: "Call dentist"},
	}

	filtered := FilterTasks(tasks, domain.SelectorAll, "groceries", now)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(2), filtered[1].ID)

	filtered = FilterTasks(tasks, domain.SelectorAll, "errand", now)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestFilterTasks_OverdueNeverIncludesCompleted(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		var tasks []*domain.Task
		for i := 0; i < 20; i++ {
			task := &domain.Task{
				ID:        int64(i + 1),
				Title:     "task",
				Completed: rng.Intn(2) == 0,
				SortOrder: i,
			}
			if rng.Intn(2) == 0 {
				task.Deadline = timePtr(now.Add(time.Duration(rng.Intn(96)-48) * time.Hour))
			}
			tasks = append(tasks, task)
		}

		for _, task := range FilterTasks(tasks, domain.SelectorOverdue, "", now) {
			assert.False(t, task.Completed)
		}
	}
}

func TestSortTasks_TotalOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	priorities := []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}

	for trial := 0; trial < 50; trial++ {
		var tasks []*domain.Task
		for i := 0; i < 30; i++ {
			tasks = append(tasks, &domain.Task{
				ID:        int64(i + 1),
				Completed: rng.Intn(2) == 0,
				Priority:  priorities[rng.Intn(len(priorities))],
				SortOrder: i,
			})
		}
		rng.Shuffle(len(tasks), func(i, j int) { tasks[i], tasks[j] = tasks[j], tasks[i] })

		SortTasks(tasks)

		for i := 1; i < len(tasks); i++ {
			a, b := tasks[i-1], tasks[i]
			if a.Completed != b.Completed {
				assert.False(t, a.Completed, "incomplete tasks sort before completed")
				continue
			}
			if a.Priority.Rank() != b.Priority.Rank() {
				assert.Less(t, a.Priority.Rank(), b.Priority.Rank())
				continue
			}
			assert.LessOrEqual(t, a.SortOrder, b.SortOrder)
		}
	}
}
