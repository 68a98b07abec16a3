package services

import (
	"sort"
	"time"

	"flowtask/internal/domain"
)

// weekWindow is the deadline horizon of the "week" selector.
const weekWindow = 7 * 24 * time.Hour

// FilterTasks returns the tasks matching the search query and selector,
// ordered for display. It is a pure function of its inputs: incomplete tasks
// sort before completed ones, higher priority before lower, manual sort
// order breaks the remaining ties.
func FilterTasks(tasks []*domain.Task, selector domain.Selector, query string, now time.Time) []*domain.Task {
	filtered := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.MatchesSearch(query) {
			continue
		}
		if !matchesSelector(task, selector, now) {
			continue
		}
		filtered = append(filtered, task)
	}

	SortTasks(filtered)
	return filtered
}

// SortTasks orders tasks in place by the display precedence.
func SortTasks(tasks []*domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.SortOrder < b.SortOrder
	})
}

func matchesSelector(task *domain.Task, selector domain.Selector, now time.Time) bool {
	if category, ok := selector.Category(); ok {
		return task.Category == category
	}

	switch selector {
	case domain.SelectorToday:
		return task.DueOn(now)
	case domain.SelectorWeek:
		return task.DueWithin(now, weekWindow)
	case domain.SelectorOverdue:
		return task.IsOverdue(now)
	case domain.SelectorCompleted:
		return task.Completed
	case domain.SelectorRecurring:
		return task.Recurrence.IsRecurring()
	default:
		return true
	}
}
