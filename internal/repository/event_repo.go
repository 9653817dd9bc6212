package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cloud.google.com/go/datastore"

	"weekcal/internal/domain"
)

type eventRepository struct {
	client *Client
}

// NewEventRepository returns the Datastore-backed event repository.
func NewEventRepository(client *Client) domain.EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	query := datastore.NewQuery(KindEvent).Order("start_time")

	var events []domain.Event
	keys, err := r.client.ds.GetAll(ctx, query, &events)
	if err != nil {
		return nil, &domain.StorageError{Op: "list events", Err: err}
	}
	for i, key := range keys {
		events[i].ID = strconv.FormatInt(key.ID, 10)
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	key, ok := eventKey(id)
	if !ok {
		return nil, &domain.NotFoundError{Kind: "event", ID: id}
	}

	var event domain.Event
	if err := r.client.ds.Get(ctx, key, &event); err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return nil, &domain.NotFoundError{Kind: "event", ID: id}
		}
		return nil, &domain.StorageError{Op: "get event", Err: err}
	}
	event.ID = id
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	key, err := r.client.ds.Put(ctx, datastore.IncompleteKey(KindEvent, nil), event)
	if err != nil {
		return &domain.StorageError{Op: "create event", Err: err}
	}
	event.ID = strconv.FormatInt(key.ID, 10)
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	key, ok := eventKey(event.ID)
	if !ok {
		return &domain.NotFoundError{Kind: "event", ID: event.ID}
	}
	event.UpdatedAt = time.Now()

	if _, err := r.client.ds.Put(ctx, key, event); err != nil {
		return &domain.StorageError{Op: "update event", Err: err}
	}
	return nil
}

// Delete removes the event. A missing id is success: delete is idempotent.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	key, ok := eventKey(id)
	if !ok {
		return nil
	}
	if err := r.client.ds.Delete(ctx, key); err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return nil
		}
		return &domain.StorageError{Op: "delete event", Err: err}
	}
	return nil
}

func eventKey(id string) (*datastore.Key, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n == 0 {
		return nil, false
	}
	return datastore.IDKey(KindEvent, n, nil), true
}
