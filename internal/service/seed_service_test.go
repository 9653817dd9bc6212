package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekcal/internal/repository"
)

func TestSeedDefaultFixture(t *testing.T) {
	mem := repository.NewMemory()
	svc, err := NewSeedService(mem.Goals(), mem.Tasks(), "")
	require.NoError(t, err)

	goals, tasks, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, goals)
	assert.Equal(t, 12, tasks)

	stored, err := mem.Goals().List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 4)

	// Tasks reference their created goal by id.
	var healthID string
	for _, g := range stored {
		if g.Name == "Health" {
			healthID = g.ID
		}
	}
	require.NotEmpty(t, healthID)

	healthTasks, err := mem.Tasks().List(context.Background(), healthID)
	require.NoError(t, err)
	assert.Len(t, healthTasks, 3)
}

func TestSeedReplacesExistingData(t *testing.T) {
	mem := repository.NewMemory()
	svc, err := NewSeedService(mem.Goals(), mem.Tasks(), "")
	require.NoError(t, err)

	_, _, err = svc.Seed(context.Background())
	require.NoError(t, err)
	_, _, err = svc.Seed(context.Background())
	require.NoError(t, err)

	goals, err := mem.Goals().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, goals, 4, "reseeding must not duplicate goals")
}

func TestSeedFromYAMLFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	fixture := `goals:
  - name: Reading
    color: "#123456"
    tasks:
      - Fiction
      - Papers
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	mem := repository.NewMemory()
	svc, err := NewSeedService(mem.Goals(), mem.Tasks(), path)
	require.NoError(t, err)

	goals, tasks, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, goals)
	assert.Equal(t, 2, tasks)
}

func TestSeedFixtureErrors(t *testing.T) {
	mem := repository.NewMemory()

	_, err := NewSeedService(mem.Goals(), mem.Tasks(), "/does/not/exist.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("goals: []\n"), 0o644))
	_, err = NewSeedService(mem.Goals(), mem.Tasks(), path)
	assert.Error(t, err)
}
