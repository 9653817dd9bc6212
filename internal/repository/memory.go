package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"weekcal/internal/domain"
)

// Memory is an in-memory implementation of the three repositories, used by
// tests and local development without a Datastore emulator.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	goals  map[string]domain.Goal
	tasks  map[string]domain.Task
	events map[string]domain.Event
}

// NewMemory returns an empty in-memory repository set.
func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
		goals:  make(map[string]domain.Goal),
		tasks:  make(map[string]domain.Task),
		events: make(map[string]domain.Event),
	}
}

func (m *Memory) newID() string {
	id := strconv.FormatInt(m.nextID, 10)
	m.nextID++
	return id
}

// Events returns the event repository view.
func (m *Memory) Events() domain.EventRepository { return (*memoryEvents)(m) }

// Goals returns the goal repository view.
func (m *Memory) Goals() domain.GoalRepository { return (*memoryGoals)(m) }

// Tasks returns the task repository view.
func (m *Memory) Tasks() domain.TaskRepository { return (*memoryTasks)(m) }

type memoryEvents Memory

func (m *memoryEvents) List(ctx context.Context) ([]domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (m *memoryEvents) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.events[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "event", ID: id}
	}
	return &e, nil
}

func (m *memoryEvents) Create(ctx context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	event.ID = (*Memory)(m).newID()
	event.CreatedAt = now
	event.UpdatedAt = now
	m.events[event.ID] = *event
	return nil
}

func (m *memoryEvents) Update(ctx context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	event.UpdatedAt = time.Now()
	m.events[event.ID] = *event
	return nil
}

func (m *memoryEvents) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.events, id)
	return nil
}

type memoryGoals Memory

func (m *memoryGoals) List(ctx context.Context) ([]domain.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Goal, 0, len(m.goals))
	for _, g := range m.goals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryGoals) CreateAll(ctx context.Context, goals []domain.Goal) ([]domain.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for i := range goals {
		goals[i].ID = (*Memory)(m).newID()
		goals[i].CreatedAt = now
		goals[i].UpdatedAt = now
		m.goals[goals[i].ID] = goals[i]
	}
	return goals, nil
}

func (m *memoryGoals) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.goals = make(map[string]domain.Goal)
	return nil
}

type memoryTasks Memory

func (m *memoryTasks) List(ctx context.Context, goalID string) ([]domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if goalID == "" || t.GoalID == goalID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryTasks) CreateAll(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for i := range tasks {
		tasks[i].ID = (*Memory)(m).newID()
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
		m.tasks[tasks[i].ID] = tasks[i]
	}
	return tasks, nil
}

func (m *memoryTasks) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = make(map[string]domain.Task)
	return nil
}
