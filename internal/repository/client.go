// Package repository persists goals, tasks and events in Google Cloud
// Datastore. The client is constructed once at startup and injected into the
// repositories; there is no module-level cached connection.
package repository

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/datastore"

	"weekcal/internal/logger"
)

// Datastore kinds.
const (
	KindGoal  = "Goal"
	KindTask  = "Task"
	KindEvent = "Event"
)

// Client wraps the Datastore client shared by the repositories.
type Client struct {
	ds *datastore.Client
}

// NewClient connects to Datastore for the given project. The official client
// picks up DATASTORE_EMULATOR_HOST automatically; it is logged for visibility
// during development.
func NewClient(ctx context.Context, projectID string) (*Client, error) {
	if emulatorHost := os.Getenv("DATASTORE_EMULATOR_HOST"); emulatorHost != "" {
		logger.InfoLog(ctx, "using Datastore emulator at %s", emulatorHost)
	}

	ds, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create datastore client: %w", err)
	}
	return &Client{ds: ds}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.ds.Close()
}
