package services

import (
	"time"

	"flowtask/internal/domain"
)

// NextRecurringTask derives the child task spawned by completing a recurring
// parent. All fields are copied except identity, completion state, ordering,
// and accumulated time, which start fresh; the deadline advances by one
// recurrence period when the parent had one. The caller inserts the result
// through the normal add path, which assigns the new id and sort order.
func NextRecurringTask(parent *domain.Task, now time.Time) domain.Task {
	parentID := parent.ID
	child := domain.Task{
		Title:            parent.Title,
		Category:         parent.Category,
		Priority:         parent.Priority,
		Description:      parent.Description,
		Recurrence:       parent.Recurrence,
		EstimatedMinutes: parent.EstimatedMinutes,
		Tags:             append([]string{}, parent.Tags...),
		Completed:        false,
		CreatedAt:        now,
		CompletedAt:      nil,
		LastRecurringID:  &parentID,
		TimeSpentSeconds: 0,
		Sessions:         []domain.Session{},
	}

	if parent.Deadline != nil {
		next := parent.Recurrence.NextDeadline(*parent.Deadline)
		child.Deadline = &next
	}

	return child
}
