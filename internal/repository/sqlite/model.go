package sqlite

import "time"

// Task is the database representation of a task row. Tags are stored as a
// comma-joined string; sessions live in their own table.
type Task struct {
	ID               int64
	Title            string
	Category         string
	Priority         string
	Deadline         *time.Time
	Description      string
	Recurrence       string
	EstimatedMinutes *int
	Tags             string
	Completed        bool
	CreatedAt        time.Time
	CompletedAt      *time.Time
	LastRecurringID  *int64
	Position         int
	SortOrder        int
	TimeSpentSeconds int
}

// Session is the database representation of a tracked work session.
// StoppedAt is NULL while the session is running.
type Session struct {
	ID              int64
	TaskID          int64
	StartedAt       time.Time
	StoppedAt       *time.Time
	DurationSeconds int
}
