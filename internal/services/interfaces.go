package services

import (
	"context"
	"time"

	"flowtask/internal/domain"
)

// TaskInput carries the user-supplied fields for creating or updating a task.
type TaskInput struct {
	Title            string
	Category         domain.Category
	Priority         domain.Priority
	Deadline         *time.Time
	Description      string
	Recurrence       domain.Recurrence
	EstimatedMinutes *int
	Tags             []string
}

// ToggleResult reports the outcome of a completion toggle. Spawned is the
// recurring child task, when one was generated.
type ToggleResult struct {
	Task    *domain.Task
	Spawned *domain.Task
}

// Stats is the productivity summary for the whole collection.
type Stats struct {
	Total                 int
	Completed             int
	Pending               int
	StreakDays            int
	BestStreakDays        int
	AverageCompletionDays string
	CreatedThisWeek       int
	CategoryCounts        map[domain.Category]int
	TimeSpentSeconds      int
}

// CellStatus classifies a task inside a calendar cell.
type CellStatus string

const (
	CellCompleted  CellStatus = "completed"
	CellOverdue    CellStatus = "overdue"
	CellPending    CellStatus = "pending"
	CellNoDeadline CellStatus = "no-deadline"
)

// CalendarTask is the minimal task projection shown in a calendar cell.
type CalendarTask struct {
	ID     int64
	Title  string
	Status CellStatus
}

// CalendarDay is one date cell of the month grid.
type CalendarDay struct {
	Day     int
	IsToday bool
	Tasks   []CalendarTask
}

// CalendarMonth is the month grid keyed by deadline date. LeadingBlanks is
// the number of empty cells before day 1, given a Sunday-first week.
type CalendarMonth struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          []CalendarDay
}

// TaskService owns the task collection: CRUD, completion, ordering, and the
// recurring-task add path.
type TaskService interface {
	Add(ctx context.Context, input TaskInput) (*domain.Task, error)
	QuickAdd(ctx context.Context, title string) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, id int64, input TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
	ToggleComplete(ctx context.Context, id int64) (*ToggleResult, error)
	Reorder(ctx context.Context, draggedID, targetID int64) error
	ClearCompleted(ctx context.Context) (int64, error)
	ResetAll(ctx context.Context) error
	Import(ctx context.Context, tasks []*domain.Task) (int, error)
}

// TrackingService owns the single per-task timer slot and the committed
// session history.
type TrackingService interface {
	Start(ctx context.Context, taskID int64) (*domain.Session, error)
	Stop(ctx context.Context) (*domain.Session, *domain.Task, error)
	Current(ctx context.Context) (*domain.Session, *domain.Task, error)
}

// StatsService derives summary views from the collection snapshot.
type StatsService interface {
	Summary(ctx context.Context, now time.Time) (*Stats, error)
	MonthView(ctx context.Context, year int, month time.Month, now time.Time) (*CalendarMonth, error)
	HighPriority(ctx context.Context) ([]*domain.Task, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService     TaskService
	TrackingService TrackingService
	StatsService    StatsService
}
