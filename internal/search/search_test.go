package search

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/shelftrack-server/internal/domain"
)

// setupTestIndex creates a temporary search index for testing.
func setupTestIndex(t *testing.T) (*SearchIndex, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "search-test-*")
	require.NoError(t, err)

	index, err := NewSearchIndex(Options{
		DataPath: tmpDir,
		Logger:   nil,
	})
	require.NoError(t, err)

	cleanup := func() {
		_ = index.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return index, cleanup
}

func indexTestBooks(t *testing.T, index *SearchIndex) {
	t.Helper()

	now := time.Now()
	docs := []*BookDocument{
		{ID: "book-1", Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937, Status: "read", CreatedAt: now.UnixMilli()},
		{ID: "book-2", Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Year: 1954, Status: "to-read", CreatedAt: now.UnixMilli()},
		{ID: "book-3", Title: "L'Étranger", Author: "Albert Camus", Year: 1942, Status: "read", CreatedAt: now.UnixMilli()},
		{ID: "book-4", Title: "A Wizard of Earthsea", Author: "Ursula K. Le Guin", Year: 1968, Status: "to-read", CreatedAt: now.UnixMilli()},
	}
	require.NoError(t, index.IndexDocuments(docs))
}

func TestNewSearchIndex(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestSearchIndex_IndexDocument(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	book := &domain.Book{
		ID:        "book-123",
		Title:     "The Hobbit",
		Author:    "J.R.R. Tolkien",
		Year:      1937,
		Status:    domain.StatusRead,
		CreatedAt: time.Now(),
	}

	err := index.IndexDocument(NewBookDocument(book))
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestSearchIndex_DeleteDocument(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	require.NoError(t, index.DeleteDocument("book-1"))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestSearch_ByTitle(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	result, err := index.Search(context.Background(), SearchParams{Query: "hobbit", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-1", result.Hits[0].ID)
	assert.Equal(t, "The Hobbit", result.Hits[0].Title)
}

func TestSearch_ByAuthor(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	result, err := index.Search(context.Background(), SearchParams{Query: "tolkien", Limit: 10})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(result.Hits), 2)
}

func TestSearch_FuzzyTypo(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	// One edit away from "hobbit".
	result, err := index.Search(context.Background(), SearchParams{Query: "hobbif", Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "book-1", result.Hits[0].ID)
}

func TestSearch_StatusFilter(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	result, err := index.Search(context.Background(), SearchParams{Query: "tolkien", Status: "read", Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "book-1", result.Hits[0].ID)
}

func TestSearch_YearRange(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	result, err := index.Search(context.Background(), SearchParams{MinYear: 1950, MaxYear: 1970, Limit: 10})
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	assert.ElementsMatch(t, []string{"book-2", "book-4"}, ids)
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	result, err := index.Search(context.Background(), SearchParams{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), result.Total)
}

func TestSearch_Highlighting(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	result, err := index.Search(context.Background(), SearchParams{Query: "earthsea", Limit: 10, Highlight: true})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Contains(t, result.Hits[0].Highlights, "title")
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Étranger", "Etranger"},
		{"Saint-Exupéry", "Saint-Exupery"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, foldDiacritics(tt.in))
	}
}

func TestRebuild(t *testing.T) {
	index, cleanup := setupTestIndex(t)
	defer cleanup()

	indexTestBooks(t, index)

	require.NoError(t, index.Rebuild())

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}
