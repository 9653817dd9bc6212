package service

import (
	"context"

	"weekcal/internal/domain"
)

// CatalogService reads the goal and task collections. Both are read-only
// outside the bulk seed.
type CatalogService interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	ListTasks(ctx context.Context, goalID string) ([]domain.Task, error)
}

type catalogService struct {
	goals domain.GoalRepository
	tasks domain.TaskRepository
}

// NewCatalogService builds the catalog service.
func NewCatalogService(goals domain.GoalRepository, tasks domain.TaskRepository) CatalogService {
	return &catalogService{goals: goals, tasks: tasks}
}

func (s *catalogService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.goals.List(ctx)
}

func (s *catalogService) ListTasks(ctx context.Context, goalID string) ([]domain.Task, error) {
	return s.tasks.List(ctx, goalID)
}
