package domain

import (
	"flowtask/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task. Sessions are stored
// separately and are not carried across; the storage list position is
// assigned by the caller.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		ID:               task.ID,
		Title:            task.Title,
		Category:         string(task.Category),
		Priority:         string(task.Priority),
		Deadline:         task.Deadline,
		Description:      task.Description,
		Recurrence:       string(task.Recurrence),
		EstimatedMinutes: task.EstimatedMinutes,
		Tags:             sqlite.JoinTags(task.Tags),
		Completed:        task.Completed,
		CreatedAt:        task.CreatedAt,
		CompletedAt:      task.CompletedAt,
		LastRecurringID:  task.LastRecurringID,
		SortOrder:        task.SortOrder,
		TimeSpentSeconds: task.TimeSpentSeconds,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:               dbTask.ID,
		Title:            dbTask.Title,
		Category:         ParseCategory(dbTask.Category),
		Priority:         ParsePriority(dbTask.Priority),
		Deadline:         dbTask.Deadline,
		Description:      dbTask.Description,
		Recurrence:       ParseRecurrence(dbTask.Recurrence),
		EstimatedMinutes: dbTask.EstimatedMinutes,
		Tags:             sqlite.SplitTags(dbTask.Tags),
		Completed:        dbTask.Completed,
		CreatedAt:        dbTask.CreatedAt,
		CompletedAt:      dbTask.CompletedAt,
		LastRecurringID:  dbTask.LastRecurringID,
		SortOrder:        dbTask.SortOrder,
		TimeSpentSeconds: dbTask.TimeSpentSeconds,
		Sessions:         []Session{},
	}
}

// SessionMapper handles conversion between domain and database Session models.
type SessionMapper struct{}

// NewSessionMapper creates a new SessionMapper instance.
func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// ToDatabase converts a domain Session to a database Session.
func (m *SessionMapper) ToDatabase(session Session) sqlite.Session {
	return sqlite.Session{
		ID:              session.ID,
		TaskID:          session.TaskID,
		StartedAt:       session.StartedAt,
		StoppedAt:       session.StoppedAt,
		DurationSeconds: session.DurationSeconds,
	}
}

// FromDatabase converts a database Session to a domain Session.
func (m *SessionMapper) FromDatabase(dbSession sqlite.Session) Session {
	return Session{
		ID:              dbSession.ID,
		TaskID:          dbSession.TaskID,
		StartedAt:       dbSession.StartedAt,
		StoppedAt:       dbSession.StoppedAt,
		DurationSeconds: dbSession.DurationSeconds,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task    *TaskMapper
	Session *SessionMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:    NewTaskMapper(),
		Session: NewSessionMapper(),
	}
}
