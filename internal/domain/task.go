package domain

import (
	"strings"
	"time"
)

// Category classifies a task. Unknown input maps to CategoryPersonal.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryUrgent   Category = "urgent"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
	CategoryFamily   Category = "family"
)

// Categories lists all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPersonal,
		CategoryUrgent,
		CategoryShopping,
		CategoryHealth,
		CategoryLearning,
		CategoryFamily,
	}
}

// ParseCategory maps a string to a Category, falling back to the default
// for unknown values.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c
		}
	}
	return CategoryPersonal
}

// DisplayName returns the human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryPersonal:
		return "Personal"
	case CategoryUrgent:
		return "Urgent"
	case CategoryShopping:
		return "Shopping"
	case CategoryHealth:
		return "Health"
	case CategoryLearning:
		return "Learning"
	case CategoryFamily:
		return "Family"
	default:
		return string(c)
	}
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps a string to a Priority, falling back to medium.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Rank returns the sort rank of the priority: high sorts before medium,
// medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Recurrence is the period at which a completed task regenerates.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence maps a string to a Recurrence, falling back to none.
func ParseRecurrence(s string) Recurrence {
	switch Recurrence(strings.ToLower(strings.TrimSpace(s))) {
	case RecurrenceDaily:
		return RecurrenceDaily
	case RecurrenceWeekly:
		return RecurrenceWeekly
	case RecurrenceMonthly:
		return RecurrenceMonthly
	default:
		return RecurrenceNone
	}
}

// IsRecurring reports whether the recurrence is set to a real period.
func (r Recurrence) IsRecurring() bool {
	return r == RecurrenceDaily || r == RecurrenceWeekly || r == RecurrenceMonthly
}

// NextDeadline advances a deadline by one recurrence period. Monthly
// advancement uses time.AddDate normalization, so Jan 31 + 1 month lands
// in early March.
func (r Recurrence) NextDeadline(deadline time.Time) time.Time {
	switch r {
	case RecurrenceDaily:
		return deadline.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		return deadline.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return deadline.AddDate(0, 1, 0)
	default:
		return deadline
	}
}

// Session is one block of tracked work on a task. A session with no stop
// time is still running.
type Session struct {
	ID              int64
	TaskID          int64
	StartedAt       time.Time
	StoppedAt       *time.Time
	DurationSeconds int
}

// IsRunning reports whether the session has not been stopped yet.
func (s Session) IsRunning() bool {
	return s.StoppedAt == nil
}

// Task is a user-defined unit of work with scheduling and tracking metadata.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID               int64
	Title            string
	Category         Category
	Priority         Priority
	Deadline         *time.Time
	Description      string
	Recurrence       Recurrence
	EstimatedMinutes *int
	Tags             []string
	Completed        bool
	CreatedAt        time.Time
	CompletedAt      *time.Time
	LastRecurringID  *int64
	SortOrder        int
	TimeSpentSeconds int
	Sessions         []Session
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Title) != ""
}

// IsOverdue reports whether the task is incomplete with a deadline in the past.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Deadline != nil && t.Deadline.Before(now)
}

// DueOn reports whether the task's deadline falls on the given calendar date.
func (t Task) DueOn(date time.Time) bool {
	if t.Deadline == nil {
		return false
	}
	y1, m1, d1 := t.Deadline.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DueWithin reports whether the task's deadline falls in [now, now+window].
func (t Task) DueWithin(now time.Time, window time.Duration) bool {
	if t.Deadline == nil {
		return false
	}
	end := now.Add(window)
	return !t.Deadline.Before(now) && !t.Deadline.After(end)
}

// MatchesSearch reports whether the lowercased query is a substring of the
// title, description, category display name, or any tag. An empty query
// matches everything.
func (t Task) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Category.DisplayName()), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
