package service

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"weekcal/internal/domain"
	"weekcal/internal/logger"
	"weekcal/internal/normalize"
)

// SeedService replaces the goal and task collections with a sample dataset.
type SeedService interface {
	Seed(ctx context.Context) (goals, tasks int, err error)
}

// seedFixture is the YAML shape of a fixture file: goals with their tasks
// nested, so task ownership survives the server assigning goal ids.
type seedFixture struct {
	Goals []struct {
		Name  string   `yaml:"name"`
		Color string   `yaml:"color"`
		Tasks []string `yaml:"tasks"`
	} `yaml:"goals"`
}

// defaultFixture is the built-in sample dataset.
var defaultFixture = seedFixture{
	Goals: []struct {
		Name  string   `yaml:"name"`
		Color string   `yaml:"color"`
		Tasks []string `yaml:"tasks"`
	}{
		{Name: "Learn", Color: "#4285F4", Tasks: []string{"AI based agents", "MLE", "DE related", "Basics"}},
		{Name: "Health", Color: "#34A853", Tasks: []string{"Gym", "Yoga", "Diet"}},
		{Name: "Work", Color: "#FBBC05", Tasks: []string{"Client meeting", "Documentation", "Coding"}},
		{Name: "Social", Color: "#EA4335", Tasks: []string{"Call friends", "Family dinner"}},
	},
}

type seedService struct {
	goals   domain.GoalRepository
	tasks   domain.TaskRepository
	fixture seedFixture
}

// NewSeedService builds a seed service. fixturePath may point to a YAML
// fixture file; when empty the built-in dataset is used.
func NewSeedService(goals domain.GoalRepository, tasks domain.TaskRepository, fixturePath string) (SeedService, error) {
	fixture := defaultFixture
	if fixturePath != "" {
		data, err := os.ReadFile(fixturePath)
		if err != nil {
			return nil, fmt.Errorf("read seed fixture: %w", err)
		}
		var loaded seedFixture
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("parse seed fixture: %w", err)
		}
		if len(loaded.Goals) == 0 {
			return nil, fmt.Errorf("seed fixture %s contains no goals", fixturePath)
		}
		fixture = loaded
	}
	return &seedService{goals: goals, tasks: tasks, fixture: fixture}, nil
}

// Seed clears both collections and inserts the fixture set. Goals are
// validated through the normalizer before anything is written.
func (s *seedService) Seed(ctx context.Context) (int, int, error) {
	goals := make([]domain.Goal, 0, len(s.fixture.Goals))
	for _, fg := range s.fixture.Goals {
		goal, err := normalize.Goal(domain.GoalInput{Name: fg.Name, Color: fg.Color})
		if err != nil {
			return 0, 0, err
		}
		goals = append(goals, goal)
	}

	if err := s.goals.DeleteAll(ctx); err != nil {
		return 0, 0, err
	}
	if err := s.tasks.DeleteAll(ctx); err != nil {
		return 0, 0, err
	}

	created, err := s.goals.CreateAll(ctx, goals)
	if err != nil {
		return 0, 0, err
	}

	var tasks []domain.Task
	for i, fg := range s.fixture.Goals {
		for _, name := range fg.Tasks {
			task, err := normalize.Task(domain.TaskInput{Name: name, GoalID: created[i].ID})
			if err != nil {
				return 0, 0, err
			}
			tasks = append(tasks, task)
		}
	}

	createdTasks, err := s.tasks.CreateAll(ctx, tasks)
	if err != nil {
		return 0, 0, err
	}

	logger.InfoLog(ctx, "seeded %d goals and %d tasks", len(created), len(createdTasks))
	return len(created), len(createdTasks), nil
}
