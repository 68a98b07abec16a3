// Package api is the facade the CLI consumes. It composes the services into
// one surface: task operations on the store, the filter engine over the
// collection snapshot, time tracking, statistics, and export/import.
package api

import (
	"context"
	"io"
	"time"

	"flowtask/internal/domain"
	"flowtask/internal/export"
	"flowtask/internal/repository/sqlite"
	"flowtask/internal/services"
)

// API defines the interface for all task, tracking, and statistics operations.
type API interface {
	// Task operations
	AddTask(ctx context.Context, input services.TaskInput) (*domain.Task, error)
	QuickAddTask(ctx context.Context, title string) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, selector domain.Selector, query string, now time.Time) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input services.TaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ToggleTask(ctx context.Context, id int64) (*services.ToggleResult, error)
	ReorderTask(ctx context.Context, draggedID, targetID int64) error
	ClearCompleted(ctx context.Context) (int64, error)
	ResetAll(ctx context.Context) error

	// Time tracking
	StartTracking(ctx context.Context, taskID int64) (*domain.Session, error)
	StopTracking(ctx context.Context) (*domain.Session, *domain.Task, error)
	CurrentTracking(ctx context.Context) (*domain.Session, *domain.Task, error)

	// Statistics
	Stats(ctx context.Context, now time.Time) (*services.Stats, error)
	Calendar(ctx context.Context, year int, month time.Month, now time.Time) (*services.CalendarMonth, error)
	HighPriority(ctx context.Context) ([]*domain.Task, error)

	// Export / import
	ExportTasks(ctx context.Context, w io.Writer) (int, error)
	ImportTasks(ctx context.Context, r io.Reader) (int, error)
}

type apiImpl struct {
	container *services.ServiceContainer
}

// New creates a new API instance over the given repository.
func New(repo sqlite.Repository) API {
	return &apiImpl{container: services.NewServiceContainer(repo)}
}

// NewWithContainer creates an API over an existing service container.
func NewWithContainer(container *services.ServiceContainer) API {
	return &apiImpl{container: container}
}

func (a *apiImpl) AddTask(ctx context.Context, input services.TaskInput) (*domain.Task, error) {
	return a.container.TaskService.Add(ctx, input)
}

func (a *apiImpl) QuickAddTask(ctx context.Context, title string) (*domain.Task, error) {
	return a.container.TaskService.QuickAdd(ctx, title)
}

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return a.container.TaskService.Get(ctx, id)
}

// ListTasks returns the filtered, display-ordered view of the collection.
func (a *apiImpl) ListTasks(ctx context.Context, selector domain.Selector, query string, now time.Time) ([]*domain.Task, error) {
	tasks, err := a.container.TaskService.List(ctx)
	if err != nil {
		return nil, err
	}
	return services.FilterTasks(tasks, selector, query, now), nil
}

func (a *apiImpl) UpdateTask(ctx context.Context, id int64, input services.TaskInput) (*domain.Task, error) {
	return a.container.TaskService.Update(ctx, id, input)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	return a.container.TaskService.Delete(ctx, id)
}

func (a *apiImpl) ToggleTask(ctx context.Context, id int64) (*services.ToggleResult, error) {
	return a.container.TaskService.ToggleComplete(ctx, id)
}

func (a *apiImpl) ReorderTask(ctx context.Context, draggedID, targetID int64) error {
	return a.container.TaskService.Reorder(ctx, draggedID, targetID)
}

func (a *apiImpl) ClearCompleted(ctx context.Context) (int64, error) {
	return a.container.TaskService.ClearCompleted(ctx)
}

func (a *apiImpl) ResetAll(ctx context.Context) error {
	return a.container.TaskService.ResetAll(ctx)
}

func (a *apiImpl) StartTracking(ctx context.Context, taskID int64) (*domain.Session, error) {
	return a.container.TrackingService.Start(ctx, taskID)
}

func (a *apiImpl) StopTracking(ctx context.Context) (*domain.Session, *domain.Task, error) {
	return a.container.TrackingService.Stop(ctx)
}

func (a *apiImpl) CurrentTracking(ctx context.Context) (*domain.Session, *domain.Task, error) {
	return a.container.TrackingService.Current(ctx)
}

func (a *apiImpl) Stats(ctx context.Context, now time.Time) (*services.Stats, error) {
	return a.container.StatsService.Summary(ctx, now)
}

func (a *apiImpl) Calendar(ctx context.Context, year int, month time.Month, now time.Time) (*services.CalendarMonth, error) {
	return a.container.StatsService.MonthView(ctx, year, month, now)
}

func (a *apiImpl) HighPriority(ctx context.Context) ([]*domain.Task, error) {
	return a.container.StatsService.HighPriority(ctx)
}

// ExportTasks writes the whole collection as JSON and reports how many tasks
// went out.
func (a *apiImpl) ExportTasks(ctx context.Context, w io.Writer) (int, error) {
	tasks, err := a.container.TaskService.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := export.Write(w, tasks); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// ImportTasks reads an exported collection and inserts tasks whose ids are
// not already present.
func (a *apiImpl) ImportTasks(ctx context.Context, r io.Reader) (int, error) {
	tasks, err := export.Read(r)
	if err != nil {
		return 0, err
	}
	return a.container.TaskService.Import(ctx, tasks)
}
