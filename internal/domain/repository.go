package domain

import "context"

// EventRepository persists calendar events.
type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	// Delete is idempotent: deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// GoalRepository persists goals. Goals are written only by the bulk seed.
type GoalRepository interface {
	List(ctx context.Context) ([]Goal, error)
	CreateAll(ctx context.Context, goals []Goal) ([]Goal, error)
	DeleteAll(ctx context.Context) error
}

// TaskRepository persists tasks. goalID filters by owning goal; empty means all.
type TaskRepository interface {
	List(ctx context.Context, goalID string) ([]Task, error)
	CreateAll(ctx context.Context, tasks []Task) ([]Task, error)
	DeleteAll(ctx context.Context) error
}
