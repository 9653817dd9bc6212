// Package store is the client-side cache of goals, tasks and events. The
// server stays the sole source of truth: every mutation is confirmed before
// the cache changes, and a failed load keeps the previous items around as a
// stale-but-available cache behind a failed status.
//
// The store assumes single-goroutine use from a UI event loop. There is no
// retry and no cancellation; a stale in-flight response may still land after
// the originating view is gone, which is harmless because the cache is global.
package store

import (
	"context"

	"weekcal/internal/domain"
	"weekcal/internal/normalize"
)

// Status is the load state of one collection.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Collection holds one cached entity list with its load state.
type Collection[T any] struct {
	Status Status
	Items  []T
	Err    string
}

// EventsAPI is the backend surface the event collection drives.
type EventsAPI interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, patch domain.EventPatch) (domain.Event, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// GoalsAPI lists goals; goals are read-only in this scope.
type GoalsAPI interface {
	List(ctx context.Context) ([]domain.Goal, error)
}

// TasksAPI lists tasks, optionally filtered by goal.
type TasksAPI interface {
	List(ctx context.Context, goalID string) ([]domain.Task, error)
}

// Store caches the three collections.
type Store struct {
	Goals  Collection[domain.Goal]
	Tasks  Collection[domain.Task]
	Events Collection[domain.Event]

	events EventsAPI
	goals  GoalsAPI
	tasks  TasksAPI
}

// New builds a store over the given backend clients.
func New(events EventsAPI, goals GoalsAPI, tasks TasksAPI) *Store {
	return &Store{
		Goals:  Collection[domain.Goal]{Status: StatusIdle},
		Tasks:  Collection[domain.Task]{Status: StatusIdle},
		Events: Collection[domain.Event]{Status: StatusIdle},
		events: events,
		goals:  goals,
		tasks:  tasks,
	}
}

// LoadEvents refreshes the event cache. On success items are replaced
// wholesale, each record re-normalized so no field is ever missing. On
// failure the previous items survive and Err carries the message for a
// manual-retry affordance.
func (s *Store) LoadEvents(ctx context.Context) error {
	s.Events.Status = StatusLoading
	items, err := s.events.List(ctx)
	if err != nil {
		s.Events.Status = StatusFailed
		s.Events.Err = err.Error()
		return err
	}

	normalized := make([]domain.Event, len(items))
	for i, e := range items {
		normalized[i] = normalize.FetchedEvent(e)
	}
	s.Events.Status = StatusSucceeded
	s.Events.Items = normalized
	s.Events.Err = ""
	return nil
}

// LoadGoals refreshes the goal cache.
func (s *Store) LoadGoals(ctx context.Context) error {
	s.Goals.Status = StatusLoading
	items, err := s.goals.List(ctx)
	if err != nil {
		s.Goals.Status = StatusFailed
		s.Goals.Err = err.Error()
		return err
	}
	s.Goals.Status = StatusSucceeded
	s.Goals.Items = items
	s.Goals.Err = ""
	return nil
}

// LoadTasks refreshes the task cache for one goal.
func (s *Store) LoadTasks(ctx context.Context, goalID string) error {
	s.Tasks.Status = StatusLoading
	items, err := s.tasks.List(ctx, goalID)
	if err != nil {
		s.Tasks.Status = StatusFailed
		s.Tasks.Err = err.Error()
		return err
	}
	s.Tasks.Status = StatusSucceeded
	s.Tasks.Items = items
	s.Tasks.Err = ""
	return nil
}

// CreateEvent submits a draft and, only on server confirmation, appends the
// returned record (with its server-assigned id) to the cache. On failure the
// items are untouched and the error is surfaced for the edit dialog, which
// must stay open so the user can correct and resubmit.
func (s *Store) CreateEvent(ctx context.Context, patch domain.EventPatch) (domain.Event, error) {
	created, err := s.events.Create(ctx, patch)
	if err != nil {
		s.Events.Err = err.Error()
		return domain.Event{}, err
	}
	created = normalize.FetchedEvent(created)
	s.Events.Items = append(s.Events.Items, created)
	return created, nil
}

// UpdateEvent submits an update and replaces the matching cached item. When
// the id is not cached (an earlier fetch may have failed) the confirmed
// update is a no-op locally; the next load will pick it up.
func (s *Store) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (domain.Event, error) {
	updated, err := s.events.Update(ctx, id, patch)
	if err != nil {
		s.Events.Err = err.Error()
		return domain.Event{}, err
	}
	updated = normalize.FetchedEvent(updated)
	for i := range s.Events.Items {
		if s.Events.Items[i].ID == updated.ID {
			s.Events.Items[i] = updated
			break
		}
	}
	return updated, nil
}

// DeleteEvent removes the event server-side and filters it from the cache.
// Fire-and-forget: a second delete of the same id succeeds again and there is
// no rollback for a server-side delete that failed silently.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		s.Events.Err = err.Error()
		return err
	}
	kept := s.Events.Items[:0:0]
	for _, e := range s.Events.Items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.Events.Items = kept
	return nil
}
