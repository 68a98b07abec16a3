// Package export serializes the task collection to JSON and back. The field
// names and shapes match the durable export format, so a collection
// round-trips through export and import without loss.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"flowtask/internal/domain"
	"flowtask/internal/errors"
)

// taskJSON is the wire shape of one exported task.
type taskJSON struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Category      string        `json:"category"`
	Priority      string        `json:"priority"`
	Deadline      *string       `json:"deadline"`
	Description   string        `json:"description"`
	Recurring     string        `json:"recurring"`
	EstimatedTime *int          `json:"estimatedTime"`
	Tags          []string      `json:"tags"`
	Completed     bool          `json:"completed"`
	CreatedAt     string        `json:"createdAt"`
	CompletedAt   *string       `json:"completedAt"`
	LastRecurring *int64        `json:"lastRecurring"`
	SortOrder     int           `json:"sortOrder"`
	TimeSpent     int           `json:"timeSpent"`
	Sessions      []sessionJSON `json:"sessions"`
}

// sessionJSON is one committed tracking session: the stop timestamp and the
// whole-second duration.
type sessionJSON struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

// Filename returns the export file name for the given date,
// tasks_YYYY-MM-DD.json.
func Filename(now time.Time) string {
	return fmt.Sprintf("tasks_%s.json", now.Format("2006-01-02"))
}

// Write serializes the tasks to w as indented JSON.
func Write(w io.Writer, tasks []*domain.Task) error {
	out := make([]taskJSON, len(tasks))
	for i, task := range tasks {
		out[i] = toJSON(task)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	return nil
}

// Read deserializes an exported collection, defaulting absent optional fields
// (tags, sessions, timeSpent) so older export shapes still load.
func Read(r io.Reader) ([]*domain.Task, error) {
	var in []taskJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.NewInvalidInputError("export file", "", err.Error())
	}

	tasks := make([]*domain.Task, 0, len(in))
	for _, record := range in {
		task, err := fromJSON(record)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func toJSON(task *domain.Task) taskJSON {
	record := taskJSON{
		ID:            task.ID,
		Title:         task.Title,
		Category:      string(task.Category),
		Priority:      string(task.Priority),
		Deadline:      formatTimePtr(task.Deadline),
		Description:   task.Description,
		Recurring:     string(task.Recurrence),
		EstimatedTime: task.EstimatedMinutes,
		Tags:          task.Tags,
		Completed:     task.Completed,
		CreatedAt:     task.CreatedAt.UTC().Format(time.RFC3339),
		CompletedAt:   formatTimePtr(task.CompletedAt),
		LastRecurring: task.LastRecurringID,
		SortOrder:     task.SortOrder,
		TimeSpent:     task.TimeSpentSeconds,
		Sessions:      make([]sessionJSON, len(task.Sessions)),
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
	for i, session := range task.Sessions {
		stopped := session.StartedAt.Add(time.Duration(session.DurationSeconds) * time.Second)
		if session.StoppedAt != nil {
			stopped = *session.StoppedAt
		}
		record.Sessions[i] = sessionJSON{
			Date:     stopped.UTC().Format(time.RFC3339),
			Duration: session.DurationSeconds,
		}
	}
	return record
}

func fromJSON(record taskJSON) (*domain.Task, error) {
	createdAt, err := parseTime(record.CreatedAt, "createdAt")
	if err != nil {
		return nil, err
	}
	deadline, err := parseTimePtr(record.Deadline, "deadline")
	if err != nil {
		return nil, err
	}
	completedAt, err := parseTimePtr(record.CompletedAt, "completedAt")
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:               record.ID,
		Title:            record.Title,
		Category:         domain.ParseCategory(record.Category),
		Priority:         domain.ParsePriority(record.Priority),
		Deadline:         deadline,
		Description:      record.Description,
		Recurrence:       domain.ParseRecurrence(record.Recurring),
		EstimatedMinutes: record.EstimatedTime,
		Tags:             record.Tags,
		Completed:        record.Completed,
		CreatedAt:        createdAt,
		CompletedAt:      completedAt,
		LastRecurringID:  record.LastRecurring,
		SortOrder:        record.SortOrder,
		TimeSpentSeconds: record.TimeSpent,
		Sessions:         make([]domain.Session, 0, len(record.Sessions)),
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	for _, session := range record.Sessions {
		stopped, err := parseTime(session.Date, "session date")
		if err != nil {
			return nil, err
		}
		stoppedAt := stopped
		task.Sessions = append(task.Sessions, domain.Session{
			TaskID:          record.ID,
			StartedAt:       stopped.Add(-time.Duration(session.Duration) * time.Second),
			StoppedAt:       &stoppedAt,
			DurationSeconds: session.Duration,
		})
	}
	return task, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func parseTime(value, field string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError(field, value, "invalid timestamp")
	}
	return parsed, nil
}

func parseTimePtr(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := parseTime(*value, field)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
