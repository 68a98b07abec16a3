package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"flowtask/internal/errors"
	"flowtask/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	ImportTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error
	DeleteCompletedTasks(ctx context.Context) (int64, error)
	DeleteAllTasks(ctx context.Context) error
	CountTasks(ctx context.Context) (int, error)
	ShiftPositions(ctx context.Context) error
	ReplaceOrdering(ctx context.Context, orderedIDs []int64) error

	// Session operations
	CreateSession(ctx context.Context, session *Session) error
	GetRunningSession(ctx context.Context) (*Session, error)
	StopSession(ctx context.Context, session *Session) error
	ListSessions(ctx context.Context, taskID int64) ([]*Session, error)
	ListAllSessions(ctx context.Context) ([]*Session, error)
	AddTimeSpent(ctx context.Context, taskID int64, seconds int) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// A single writer avoids SQLITE_BUSY on the whole-collection renumber
	// updates.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const taskColumns = `id, title, category, priority, deadline, description, recurrence,
	estimated_minutes, tags, completed, created_at, completed_at, last_recurring_id,
	position, sort_order, time_spent_seconds`

// CreateTask inserts a new task row; the caller supplies position and sort order.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (title, category, priority, deadline, description, recurrence,
		estimated_minutes, tags, completed, created_at, completed_at, last_recurring_id,
		position, sort_order, time_spent_seconds)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Title, task.Category, task.Priority, FormatTimePtrForDB(task.Deadline),
		task.Description, task.Recurrence, task.EstimatedMinutes, task.Tags,
		boolToInt(task.Completed), FormatTimeForDB(task.CreatedAt),
		FormatTimePtrForDB(task.CompletedAt), task.LastRecurringID,
		task.Position, task.SortOrder, task.TimeSpentSeconds)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ImportTask inserts a task row keeping its existing identifier, so an
// export/import round trip preserves ids.
func (r *SQLiteRepository) ImportTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (` + taskColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Category, task.Priority, FormatTimePtrForDB(task.Deadline),
		task.Description, task.Recurrence, task.EstimatedMinutes, task.Tags,
		boolToInt(task.Completed), FormatTimeForDB(task.CreatedAt),
		FormatTimePtrForDB(task.CompletedAt), task.LastRecurringID,
		task.Position, task.SortOrder, task.TimeSpentSeconds)
	if err != nil {
		return HandleStorageError("import task", err)
	}
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in list order (front of the collection first).
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY position ASC, id DESC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask updates an existing task row in place.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, category = ?, priority = ?, deadline = ?, description = ?,
		recurrence = ?, estimated_minutes = ?, tags = ?, completed = ?,
		completed_at = ?, last_recurring_id = ?, position = ?, sort_order = ?,
		time_spent_seconds = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Title, task.Category, task.Priority, FormatTimePtrForDB(task.Deadline),
		task.Description, task.Recurrence, task.EstimatedMinutes, task.Tags,
		boolToInt(task.Completed), FormatTimePtrForDB(task.CompletedAt),
		task.LastRecurringID, task.Position, task.SortOrder, task.TimeSpentSeconds,
		task.ID)
}

// DeleteTask deletes a task by ID; its sessions go with it.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	if err := ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, "task", fmt.Sprintf("%d", id), id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE task_id = ?`, id)
	if err != nil {
		return HandleStorageError("delete task sessions", err)
	}
	return nil
}

// DeleteCompletedTasks removes all completed tasks and returns how many went.
func (r *SQLiteRepository) DeleteCompletedTasks(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE completed = 1`)
	if err != nil {
		return 0, HandleStorageError("delete completed tasks", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, HandleStorageError("get rows affected", err)
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM sessions WHERE task_id NOT IN (SELECT id FROM tasks)`)
	if err != nil {
		return 0, HandleStorageError("delete orphaned sessions", err)
	}
	return count, nil
}

// DeleteAllTasks wipes the task collection and all sessions.
func (r *SQLiteRepository) DeleteAllTasks(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return HandleStorageError("delete sessions", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return HandleStorageError("delete tasks", err)
	}
	return nil
}

// CountTasks returns the number of task rows.
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	if err != nil {
		return 0, HandleStorageError("count tasks", err)
	}
	return count, nil
}

// ShiftPositions moves every task one slot back, opening position 0 at the
// front of the collection.
func (r *SQLiteRepository) ShiftPositions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET position = position + 1`)
	if err != nil {
		return HandleStorageError("shift positions", err)
	}
	return nil
}

// ReplaceOrdering rewrites position and sort order densely (0..n-1) for the
// given id sequence, in one transaction.
func (r *SQLiteRepository) ReplaceOrdering(ctx context.Context, orderedIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleStorageError("begin ordering transaction", err)
	}

	for i, id := range orderedIDs {
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET position = ?, sort_order = ? WHERE id = ?`, i, i, id); err != nil {
			tx.Rollback()
			return HandleStorageError("update ordering", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleStorageError("commit ordering transaction", err)
	}
	return nil
}

const sessionColumns = `id, task_id, started_at, stopped_at, duration_seconds`

// CreateSession inserts a new session row. A NULL stopped_at marks it running.
func (r *SQLiteRepository) CreateSession(ctx context.Context, session *Session) error {
	query := `INSERT INTO sessions (task_id, started_at, stopped_at, duration_seconds) VALUES (?, ?, ?, ?)`

	var duration interface{}
	if session.StoppedAt != nil {
		duration = session.DurationSeconds
	}
	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		session.TaskID, FormatTimeForDB(session.StartedAt), FormatTimePtrForDB(session.StoppedAt), duration)
	if err != nil {
		return err
	}

	session.ID = id
	return nil
}

// GetRunningSession returns the most recently started running session.
func (r *SQLiteRepository) GetRunningSession(ctx context.Context) (*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE stopped_at IS NULL ORDER BY started_at DESC LIMIT 1`
	return QuerySingle(ctx, r.db, query, ScanSession, "running session", "")
}

// StopSession records the stop time and committed duration of a session.
func (r *SQLiteRepository) StopSession(ctx context.Context, session *Session) error {
	query := `UPDATE sessions SET stopped_at = ?, duration_seconds = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "session", fmt.Sprintf("%d", session.ID),
		FormatTimePtrForDB(session.StoppedAt), session.DurationSeconds, session.ID)
}

// ListSessions retrieves all sessions for a task, oldest first.
func (r *SQLiteRepository) ListSessions(ctx context.Context, taskID int64) ([]*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE task_id = ? ORDER BY started_at ASC`
	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions", taskID)
}

// ListAllSessions retrieves every session, oldest first.
func (r *SQLiteRepository) ListAllSessions(ctx context.Context) ([]*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY started_at ASC`
	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions")
}

// AddTimeSpent accumulates committed seconds on the task row.
func (r *SQLiteRepository) AddTimeSpent(ctx context.Context, taskID int64, seconds int) error {
	query := `UPDATE tasks SET time_spent_seconds = time_spent_seconds + ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", taskID), seconds, taskID)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
