package repository

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/datastore"

	"weekcal/internal/domain"
)

type goalRepository struct {
	client *Client
}

// NewGoalRepository returns the Datastore-backed goal repository.
func NewGoalRepository(client *Client) domain.GoalRepository {
	return &goalRepository{client: client}
}

func (r *goalRepository) List(ctx context.Context) ([]domain.Goal, error) {
	query := datastore.NewQuery(KindGoal).Order("created_at")

	var goals []domain.Goal
	keys, err := r.client.ds.GetAll(ctx, query, &goals)
	if err != nil {
		return nil, &domain.StorageError{Op: "list goals", Err: err}
	}
	for i, key := range keys {
		goals[i].ID = strconv.FormatInt(key.ID, 10)
	}
	return goals, nil
}

func (r *goalRepository) CreateAll(ctx context.Context, goals []domain.Goal) ([]domain.Goal, error) {
	now := time.Now()
	keys := make([]*datastore.Key, len(goals))
	for i := range goals {
		goals[i].CreatedAt = now
		goals[i].UpdatedAt = now
		keys[i] = datastore.IncompleteKey(KindGoal, nil)
	}

	stored, err := r.client.ds.PutMulti(ctx, keys, goals)
	if err != nil {
		return nil, &domain.StorageError{Op: "create goals", Err: err}
	}
	for i, key := range stored {
		goals[i].ID = strconv.FormatInt(key.ID, 10)
	}
	return goals, nil
}

func (r *goalRepository) DeleteAll(ctx context.Context) error {
	return deleteAllOfKind(ctx, r.client, KindGoal)
}

type taskRepository struct {
	client *Client
}

// NewTaskRepository returns the Datastore-backed task repository.
func NewTaskRepository(client *Client) domain.TaskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) List(ctx context.Context, goalID string) ([]domain.Task, error) {
	query := datastore.NewQuery(KindTask).Order("created_at")
	if goalID != "" {
		query = query.Filter("goal_id =", goalID)
	}

	var tasks []domain.Task
	keys, err := r.client.ds.GetAll(ctx, query, &tasks)
	if err != nil {
		return nil, &domain.StorageError{Op: "list tasks", Err: err}
	}
	for i, key := range keys {
		tasks[i].ID = strconv.FormatInt(key.ID, 10)
	}
	return tasks, nil
}

func (r *taskRepository) CreateAll(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	now := time.Now()
	keys := make([]*datastore.Key, len(tasks))
	for i := range tasks {
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
		keys[i] = datastore.IncompleteKey(KindTask, nil)
	}

	stored, err := r.client.ds.PutMulti(ctx, keys, tasks)
	if err != nil {
		return nil, &domain.StorageError{Op: "create tasks", Err: err}
	}
	for i, key := range stored {
		tasks[i].ID = strconv.FormatInt(key.ID, 10)
	}
	return tasks, nil
}

func (r *taskRepository) DeleteAll(ctx context.Context) error {
	return deleteAllOfKind(ctx, r.client, KindTask)
}

func deleteAllOfKind(ctx context.Context, client *Client, kind string) error {
	keys, err := client.ds.GetAll(ctx, datastore.NewQuery(kind).KeysOnly(), nil)
	if err != nil {
		return &domain.StorageError{Op: "list " + kind + " keys", Err: err}
	}
	if len(keys) == 0 {
		return nil
	}
	if err := client.ds.DeleteMulti(ctx, keys); err != nil {
		return &domain.StorageError{Op: "delete " + kind + " entities", Err: err}
	}
	return nil
}
