package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekcal/internal/domain"
)

func TestPatchWireTriState(t *testing.T) {
	var received map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"ev1","title":"x"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	t.Run("AbsentKeyOmitted", func(t *testing.T) {
		_, err := c.Update(ctx, "ev1", domain.EventPatch{Title: domain.String("x")})
		require.NoError(t, err)
		_, present := received["goalColor"]
		assert.False(t, present, "nil goalColor must not appear on the wire")
	})

	t.Run("ExplicitEmptySent", func(t *testing.T) {
		_, err := c.Update(ctx, "ev1", domain.EventPatch{
			Title:     domain.String("x"),
			GoalColor: domain.String(""),
		})
		require.NoError(t, err)
		raw, present := received["goalColor"]
		require.True(t, present, "explicit empty goalColor must appear on the wire")
		assert.Equal(t, `""`, string(raw))
	})
}

func TestErrorDecoding(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidationFrom400", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"error":"Event title is required"}`)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Create(ctx, domain.EventPatch{})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, "Event title is required", err.Error())
	})

	t.Run("NotFoundFrom404", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":"Event not found"}`)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Update(ctx, "nope", domain.EventPatch{Title: domain.String("x")})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("StorageFrom500WithDetails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"error":"Failed to create event in database","details":"deadline exceeded"}`)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Create(ctx, domain.EventPatch{Title: domain.String("x")})
		require.Error(t, err)
		assert.False(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "deadline exceeded")
	})

	t.Run("UnparseableBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, "<html>oops</html>")
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status: 502")
	})
}

func TestDeleteIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"Event deleted successfully"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()
	assert.NoError(t, c.Delete(ctx, "ev1"))
	assert.NoError(t, c.Delete(ctx, "ev1"))
}

func TestTasksQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "g1", r.URL.Query().Get("goalId"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"t1","name":"Gym","goalId":"g1"}]`)
	}))
	defer srv.Close()

	tasks, err := NewClient(srv.URL).Tasks().List(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Gym", tasks[0].Name)
}
