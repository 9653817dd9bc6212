// Package api is the typed HTTP client for the calendar backend. It decodes
// the server's {error, details} envelope into the domain error taxonomy and
// keeps the goalColor present-vs-absent distinction on the wire: patch fields
// are pointers marshalled with omitempty, so an absent key is omitted while an
// explicit empty string is sent as "".
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weekcal/internal/domain"
)

// Client calls the backend HTTP surface. No retries: every failure is
// terminal for that one request and surfaces to the caller.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient builds a client for the given base URL, e.g. "http://localhost:8080".
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// errorBody is the server's failure envelope.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// List fetches all events.
func (c *Client) List(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Create posts an event draft and returns the stored record with its
// server-assigned id.
func (c *Client) Create(ctx context.Context, patch domain.EventPatch) (domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodPost, "/events", patch, &event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// Update puts a partial event against an existing id.
func (c *Client) Update(ctx context.Context, id string, patch domain.EventPatch) (domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id), patch, &event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// Delete removes an event. Deleting an unknown id succeeds.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil)
}

// GoalsClient lists goals.
type GoalsClient struct {
	c *Client
}

// Goals returns the goals sub-client.
func (c *Client) Goals() *GoalsClient { return &GoalsClient{c: c} }

func (g *GoalsClient) List(ctx context.Context) ([]domain.Goal, error) {
	var goals []domain.Goal
	if err := g.c.do(ctx, http.MethodGet, "/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// TasksClient lists tasks.
type TasksClient struct {
	c *Client
}

// Tasks returns the tasks sub-client.
func (c *Client) Tasks() *TasksClient { return &TasksClient{c: c} }

func (t *TasksClient) List(ctx context.Context, goalID string) ([]domain.Task, error) {
	path := "/tasks"
	if goalID != "" {
		path += "?goalId=" + url.QueryEscape(goalID)
	}
	var tasks []domain.Task
	if err := t.c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &domain.StorageError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp, path)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps the failure envelope onto the error taxonomy: 400 is
// user-correctable validation, 404 a missing entity, everything else storage.
func decodeError(resp *http.Response, path string) error {
	var body errorBody
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	}

	msg := body.Error
	if body.Details != "" {
		msg = body.Error + ": " + body.Details
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return domain.NewValidationError("", msg)
	case http.StatusNotFound:
		return &domain.NotFoundError{Kind: "event", ID: strings.TrimPrefix(path, "/events/")}
	default:
		return &domain.StorageError{Op: "request", Err: fmt.Errorf("%s", msg)}
	}
}
