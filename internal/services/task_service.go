package services

import (
	"context"
	"strconv"
	"time"

	"flowtask/internal/domain"
	"flowtask/internal/errors"
	"flowtask/internal/repository/sqlite"
	"flowtask/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	now           func() time.Time
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		now:           time.Now,
	}
}

// Add validates the input and inserts a new task at the front of the
// collection. The new task's sort order is the collection size at the time
// of insertion.
func (s *taskServiceImpl) Add(ctx context.Context, input TaskInput) (*domain.Task, error) {
	title, err := s.taskValidator.GetValidTitle(input.Title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}
	if err := s.taskValidator.ValidateEstimatedMinutes(input.EstimatedMinutes); err != nil {
		return nil, errors.NewValidationError("invalid time estimate", err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	task := domain.Task{
		Title:            title,
		Category:         input.Category,
		Priority:         input.Priority,
		Deadline:         input.Deadline,
		Description:      input.Description,
		Recurrence:       input.Recurrence,
		EstimatedMinutes: input.EstimatedMinutes,
		Tags:             tags,
		CreatedAt:        s.now(),
		Sessions:         []domain.Session{},
	}
	return s.insert(ctx, task)
}

// QuickAdd creates a title-only task with default category and priority.
func (s *taskServiceImpl) QuickAdd(ctx context.Context, title string) (*domain.Task, error) {
	return s.Add(ctx, TaskInput{
		Title:      title,
		Category:   domain.CategoryPersonal,
		Priority:   domain.PriorityMedium,
		Recurrence: domain.RecurrenceNone,
	})
}

// insert is the shared add path for manual, quick-add, recurring, and
// imported tasks that need a fresh identity.
func (s *taskServiceImpl) insert(ctx context.Context, task domain.Task) (*domain.Task, error) {
	count, err := s.repo.CountTasks(ctx)
	if err != nil {
		return nil, err
	}

	// New tasks go to the front of the list; their sort order is the
	// pre-insert collection size.
	if err := s.repo.ShiftPositions(ctx); err != nil {
		return nil, err
	}

	dbTask := s.mapper.Task.ToDatabase(task)
	dbTask.Position = 0
	dbTask.SortOrder = count
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := s.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// Get retrieves a task with its session history attached.
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task := s.mapper.Task.FromDatabase(*dbTask)

	dbSessions, err := s.repo.ListSessions(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, dbSession := range dbSessions {
		task.Sessions = append(task.Sessions, s.mapper.Session.FromDatabase(*dbSession))
	}
	return &task, nil
}

// List returns all tasks in list order (front of the collection first) with
// session histories attached.
func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	dbSessions, err := s.repo.ListAllSessions(ctx)
	if err != nil {
		return nil, err
	}
	sessionsByTask := make(map[int64][]domain.Session)
	for _, dbSession := range dbSessions {
		session := s.mapper.Session.FromDatabase(*dbSession)
		sessionsByTask[session.TaskID] = append(sessionsByTask[session.TaskID], session)
	}

	tasks := make([]*domain.Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		task := s.mapper.Task.FromDatabase(*dbTask)
		if sessions, ok := sessionsByTask[task.ID]; ok {
			task.Sessions = sessions
		}
		tasks[i] = &task
	}
	return tasks, nil
}

// Update applies a field-level change in place, preserving identity,
// creation time, accumulated time, and session history.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, input TaskInput) (*domain.Task, error) {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	title, err := s.taskValidator.GetValidTitle(input.Title)
	if err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}
	if err := s.taskValidator.ValidateEstimatedMinutes(input.EstimatedMinutes); err != nil {
		return nil, errors.NewValidationError("invalid time estimate", err)
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	dbTask.Title = title
	dbTask.Category = string(input.Category)
	dbTask.Priority = string(input.Priority)
	dbTask.Deadline = input.Deadline
	dbTask.Description = input.Description
	dbTask.Recurrence = string(input.Recurrence)
	dbTask.EstimatedMinutes = input.EstimatedMinutes
	dbTask.Tags = sqlite.JoinTags(input.Tags)

	if err := s.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}
	updated := s.mapper.Task.FromDatabase(*dbTask)
	return &updated, nil
}

// Delete removes a task and renumbers the remaining tasks densely in their
// current list order.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return err
	}
	return s.renumber(ctx)
}

// ToggleComplete flips the completion flag. Completing a recurring task
// spawns its next occurrence through the normal add path.
func (s *taskServiceImpl) ToggleComplete(ctx context.Context, id int64) (*ToggleResult, error) {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	dbTask.Completed = !dbTask.Completed
	if dbTask.Completed {
		now := s.now()
		dbTask.CompletedAt = &now
	} else {
		dbTask.CompletedAt = nil
	}
	if err := s.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	task := s.mapper.Task.FromDatabase(*dbTask)
	result := &ToggleResult{Task: &task}

	if task.Completed && task.Recurrence.IsRecurring() {
		child := NextRecurringTask(&task, s.now())
		spawned, err := s.insert(ctx, child)
		if err != nil {
			return nil, err
		}
		result.Spawned = spawned
	}

	return result, nil
}

// Reorder removes the dragged task from the list and reinserts it at the
// target's current position, then renumbers densely.
func (s *taskServiceImpl) Reorder(ctx context.Context, draggedID, targetID int64) error {
	if draggedID == targetID {
		return nil
	}

	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return err
	}

	draggedIndex, targetIndex := -1, -1
	for i, dbTask := range dbTasks {
		switch dbTask.ID {
		case draggedID:
			draggedIndex = i
		case targetID:
			targetIndex = i
		}
	}
	if draggedIndex < 0 {
		return errors.NewNotFoundError("task", formatID(draggedID))
	}
	if targetIndex < 0 {
		return errors.NewNotFoundError("task", formatID(targetID))
	}

	ids := make([]int64, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		ids = append(ids, dbTask.ID)
	}
	moved := ids[draggedIndex]
	ids = append(ids[:draggedIndex], ids[draggedIndex+1:]...)
	// Insert at the target's pre-removal index, so the dragged task takes
	// the slot the target occupied when the drag began.
	ids = append(ids[:targetIndex], append([]int64{moved}, ids[targetIndex:]...)...)

	return s.repo.ReplaceOrdering(ctx, ids)
}

// ClearCompleted bulk-deletes completed tasks and renumbers the remainder.
func (s *taskServiceImpl) ClearCompleted(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteCompletedTasks(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		if err := s.renumber(ctx); err != nil {
			return count, err
		}
	}
	return count, nil
}

// ResetAll wipes the whole collection.
func (s *taskServiceImpl) ResetAll(ctx context.Context) error {
	return s.repo.DeleteAllTasks(ctx)
}

// Import inserts tasks keeping their exported identifiers, skipping ids that
// already exist. Missing optional fields have already been defaulted by the
// decoder.
func (s *taskServiceImpl) Import(ctx context.Context, tasks []*domain.Task) (int, error) {
	imported := 0
	for _, task := range tasks {
		if _, err := s.repo.GetTask(ctx, task.ID); err == nil {
			continue
		} else if !errors.IsNotFound(err) {
			return imported, err
		}

		dbTask := s.mapper.Task.ToDatabase(*task)
		dbTask.Position = imported
		if err := s.repo.ImportTask(ctx, &dbTask); err != nil {
			return imported, err
		}
		for _, session := range task.Sessions {
			dbSession := s.mapper.Session.ToDatabase(session)
			dbSession.ID = 0
			dbSession.TaskID = task.ID
			if err := s.repo.CreateSession(ctx, &dbSession); err != nil {
				return imported, err
			}
		}
		imported++
	}

	if imported > 0 {
		if err := s.renumber(ctx); err != nil {
			return imported, err
		}
	}
	return imported, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// renumber reassigns position and sort order densely (0..n-1) over the
// current list order.
func (s *taskServiceImpl) renumber(ctx context.Context) error {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return err
	}
	ids := make([]int64, len(dbTasks))
	for i, dbTask := range dbTasks {
		ids[i] = dbTask.ID
	}
	return s.repo.ReplaceOrdering(ctx, ids)
}
