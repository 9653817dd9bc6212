package service

import (
	"context"

	"weekcal/internal/domain"
	"weekcal/internal/normalize"
)

// EventService owns event writes: every mutation goes through the normalizer
// before it reaches the repository, so validation failures never leave a
// partially applied record behind.
type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, patch domain.EventPatch) (*domain.Event, error)
	Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo domain.EventRepository
}

// NewEventService builds the event service over the given repository.
func NewEventService(repo domain.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *eventService) Create(ctx context.Context, patch domain.EventPatch) (*domain.Event, error) {
	event, err := normalize.Event(patch, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *eventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event, err := normalize.Event(patch, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
