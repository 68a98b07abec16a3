package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"flowtask/internal/domain"
)

// statsServiceImpl implements the StatsService interface over a collection
// snapshot from the TaskService.
type statsServiceImpl struct {
	tasks TaskService
}

// NewStatsService creates a new StatsService instance
func NewStatsService(tasks TaskService) StatsService {
	return &statsServiceImpl{tasks: tasks}
}

// Summary computes the productivity statistics for the whole collection.
func (s *statsServiceImpl) Summary(ctx context.Context, now time.Time) (*Stats, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		CategoryCounts: make(map[domain.Category]int),
	}
	for _, task := range tasks {
		stats.Total++
		if task.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		stats.CategoryCounts[task.Category]++
		stats.TimeSpentSeconds += task.TimeSpentSeconds
	}

	stats.StreakDays = streakDays(tasks, now)
	stats.BestStreakDays = bestStreakDays(tasks)
	stats.AverageCompletionDays = averageCompletionDays(tasks)
	stats.CreatedThisWeek = createdThisWeek(tasks, now)
	return stats, nil
}

// MonthView builds the calendar grid for a month, placing tasks in the cell
// of their deadline date.
func (s *statsServiceImpl) MonthView(ctx context.Context, year int, month time.Month, now time.Time) (*CalendarMonth, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view := &CalendarMonth{
		Year:  year,
		Month: month,
		// Sunday-first grid: time.Weekday already numbers Sunday as 0.
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		cell := CalendarDay{
			Day:     day,
			IsToday: sameDay(date, now),
		}
		for _, task := range tasks {
			if task.Deadline == nil || !sameDay(task.Deadline.In(now.Location()), date) {
				continue
			}
			cell.Tasks = append(cell.Tasks, CalendarTask{
				ID:     task.ID,
				Title:  task.Title,
				Status: cellStatus(task, now),
			})
		}
		view.Days[day-1] = cell
	}
	return view, nil
}

// HighPriority returns the incomplete high-priority tasks in display order.
func (s *statsServiceImpl) HighPriority(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	focus := make([]*domain.Task, 0)
	for _, task := range tasks {
		if !task.Completed && task.Priority == domain.PriorityHigh {
			focus = append(focus, task)
		}
	}
	SortTasks(focus)
	return focus, nil
}

func cellStatus(task *domain.Task, now time.Time) CellStatus {
	switch {
	case task.Completed:
		return CellCompleted
	case task.Deadline == nil:
		return CellNoDeadline
	case task.Deadline.Before(now):
		return CellOverdue
	default:
		return CellPending
	}
}

// streakDays is 1 when at least one task was completed today, 0 otherwise.
func streakDays(tasks []*domain.Task, now time.Time) int {
	for _, task := range tasks {
		if task.Completed && task.CompletedAt != nil && sameDay(task.CompletedAt.In(now.Location()), now) {
			return 1
		}
	}
	return 0
}

// bestStreakDays is the longest run of consecutive days with at least one
// completion.
func bestStreakDays(tasks []*domain.Task) int {
	var days []time.Time
	seen := make(map[string]bool)
	for _, task := range tasks {
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		day := task.CompletedAt.Local()
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()))
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// averageCompletionDays reports the mean creation-to-completion span in whole
// days: "-" with no completed tasks, "<1" under a day.
func averageCompletionDays(tasks []*domain.Task) string {
	totalDays, count := 0.0, 0
	for _, task := range tasks {
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		span := task.CompletedAt.Sub(task.CreatedAt)
		if span < 0 {
			span = -span
		}
		totalDays += math.Ceil(span.Hours() / 24)
		count++
	}
	if count == 0 {
		return "-"
	}
	average := totalDays / float64(count)
	if average < 1 {
		return "<1"
	}
	return strconv.Itoa(int(math.Round(average)))
}

// createdThisWeek counts tasks created in the current Sunday-to-Saturday week.
func createdThisWeek(tasks []*domain.Task, now time.Time) int {
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	count := 0
	for _, task := range tasks {
		created := task.CreatedAt.In(now.Location())
		if !created.Before(weekStart) && created.Before(weekEnd) {
			count++
		}
	}
	return count
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
