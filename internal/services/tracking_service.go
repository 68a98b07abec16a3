package services

import (
	"context"
	"time"

	"flowtask/internal/domain"
	"flowtask/internal/errors"
	"flowtask/internal/repository/sqlite"
	"flowtask/internal/validation"
)

// trackingServiceImpl implements the TrackingService interface. There is a
// single timer slot: starting a tracker for one task stops and commits any
// tracker already running on another.
type trackingServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	now           func() time.Time
}

// NewTrackingService creates a new TrackingService instance
func NewTrackingService(repo sqlite.Repository) TrackingService {
	return &trackingServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		now:           time.Now,
	}
}

// Start opens a running session for the task. Any session already running is
// stopped and committed first, so at most one tracker runs at a time.
func (s *trackingServiceImpl) Start(ctx context.Context, taskID int64) (*domain.Session, error) {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	if _, err := s.repo.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	running, err := s.repo.GetRunningSession(ctx)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if running != nil {
		if running.TaskID == taskID {
			session := s.mapper.Session.FromDatabase(*running)
			return &session, nil
		}
		if _, err := s.commit(ctx, running); err != nil {
			return nil, err
		}
	}

	dbSession := sqlite.Session{
		TaskID:    taskID,
		StartedAt: s.now(),
	}
	if err := s.repo.CreateSession(ctx, &dbSession); err != nil {
		return nil, err
	}
	session := s.mapper.Session.FromDatabase(dbSession)
	return &session, nil
}

// Stop ends the running session, commits its duration onto the task, and
// returns the committed session together with the updated task.
func (s *trackingServiceImpl) Stop(ctx context.Context) (*domain.Session, *domain.Task, error) {
	running, err := s.repo.GetRunningSession(ctx)
	if err != nil {
		return nil, nil, err
	}

	stopped, err := s.commit(ctx, running)
	if err != nil {
		return nil, nil, err
	}

	dbTask, err := s.repo.GetTask(ctx, stopped.TaskID)
	if err != nil {
		return nil, nil, err
	}
	session := s.mapper.Session.FromDatabase(*stopped)
	task := s.mapper.Task.FromDatabase(*dbTask)
	return &session, &task, nil
}

// Current reports the running session and its task, or a not-found error when
// no tracker is active.
func (s *trackingServiceImpl) Current(ctx context.Context) (*domain.Session, *domain.Task, error) {
	running, err := s.repo.GetRunningSession(ctx)
	if err != nil {
		return nil, nil, err
	}

	dbTask, err := s.repo.GetTask(ctx, running.TaskID)
	if err != nil {
		return nil, nil, err
	}
	session := s.mapper.Session.FromDatabase(*running)
	task := s.mapper.Task.FromDatabase(*dbTask)
	return &session, &task, nil
}

// commit stamps the stop time on a running session, persists its duration,
// and accumulates the seconds onto the owning task.
func (s *trackingServiceImpl) commit(ctx context.Context, running *sqlite.Session) (*sqlite.Session, error) {
	stoppedAt := s.now()
	seconds := int(stoppedAt.Sub(running.StartedAt).Seconds())
	if seconds < 0 {
		seconds = 0
	}

	running.StoppedAt = &stoppedAt
	running.DurationSeconds = seconds
	if err := s.repo.StopSession(ctx, running); err != nil {
		return nil, err
	}
	if err := s.repo.AddTimeSpent(ctx, running.TaskID, seconds); err != nil {
		return nil, err
	}
	return running, nil
}
