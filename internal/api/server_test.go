package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "BadgerDB", health.Database)
	assert.Equal(t, 0, health.TotalBooks)
	assert.False(t, health.Timestamp.IsZero())

	ts.createBook(t, map[string]any{"title": "One", "author": "A", "year": 2000})

	resp = ts.api.Get("/api/health")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	assert.Equal(t, 1, health.TotalBooks)
}

func TestStatsEndpoint(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.createBook(t, map[string]any{"title": "Read A", "author": "A", "year": 2000, "status": "read", "rating": 4})
	ts.createBook(t, map[string]any{"title": "Read B", "author": "B", "year": 2001, "status": "read", "rating": 5})
	ts.createBook(t, map[string]any{"title": "Queued", "author": "C", "year": 2002})

	resp := ts.api.Get("/api/stats")
	require.Equal(t, http.StatusOK, resp.Code)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ReadCount)
	assert.Equal(t, 1, stats.ToReadCount)
	assert.Equal(t, 4.5, stats.AverageRating)
}

func TestInitSampleEndpoint(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	t.Run("seeds empty catalog", func(t *testing.T) {
		resp := ts.api.Post("/api/init-sample")
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		assert.Contains(t, resp.Body.String(), "3 books added")

		list := ts.api.Get("/api/books")
		var books []BookResponse
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &books))
		assert.Len(t, books, 3)
	})

	t.Run("refuses non-empty catalog", func(t *testing.T) {
		resp := ts.api.Post("/api/init-sample")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "database already seeded", errorMessage(t, resp.Body.Bytes()))

		// Count unchanged.
		list := ts.api.Get("/api/books")
		var books []BookResponse
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &books))
		assert.Len(t, books, 3)
	})
}

func TestErrorBodyShape(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/books/bogus")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// The error body carries a single "error" field.
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Len(t, body, 1)
}
