package services

import (
	"flowtask/internal/repository/sqlite"
)

// NewServiceContainer creates a container with all services wired to the
// given repository.
func NewServiceContainer(repo sqlite.Repository) *ServiceContainer {
	taskService := NewTaskService(repo)
	return &ServiceContainer{
		TaskService:     taskService,
		TrackingService: NewTrackingService(repo),
		StatsService:    NewStatsService(taskService),
	}
}
