package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var deadline, completedAt sql.NullString
	var estimated, lastRecurring sql.NullInt64
	var completed int

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Category,
		&task.Priority,
		&deadline,
		&task.Description,
		&task.Recurrence,
		&estimated,
		&task.Tags,
		&completed,
		&task.CreatedAt,
		&completedAt,
		&lastRecurring,
		&task.Position,
		&task.SortOrder,
		&task.TimeSpentSeconds,
	)
	if err != nil {
		return nil, err
	}

	task.Completed = completed == 1
	if deadline.Valid {
		t, err := ParseTimeFromDB(deadline.String)
		if err != nil {
			return nil, err
		}
		task.Deadline = &t
	}
	if completedAt.Valid {
		t, err := ParseTimeFromDB(completedAt.String)
		if err != nil {
			return nil, err
		}
		task.CompletedAt = &t
	}
	if estimated.Valid {
		v := int(estimated.Int64)
		task.EstimatedMinutes = &v
	}
	if lastRecurring.Valid {
		v := lastRecurring.Int64
		task.LastRecurringID = &v
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanSession scans a single session from a database row
func ScanSession(scanner Scanner) (*Session, error) {
	session := &Session{}
	var stoppedAt sql.NullString
	var duration sql.NullInt64

	err := scanner.Scan(
		&session.ID,
		&session.TaskID,
		&session.StartedAt,
		&stoppedAt,
		&duration,
	)
	if err != nil {
		return nil, err
	}

	if stoppedAt.Valid {
		t, err := ParseTimeFromDB(stoppedAt.String)
		if err != nil {
			return nil, err
		}
		session.StoppedAt = &t
	}
	if duration.Valid {
		session.DurationSeconds = int(duration.Int64)
	}

	return session, nil
}

// ScanSessions scans multiple sessions from database rows
func ScanSessions(rows Rows) ([]*Session, error) {
	var sessions []*Session
	for rows.Next() {
		session, err := ScanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
