package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/shelftrack-server/internal/domain"
	"github.com/shelftrack/shelftrack-server/internal/errors"
	"github.com/shelftrack/shelftrack-server/internal/store"
	"github.com/shelftrack/shelftrack-server/internal/validation"
)

func setupBookService(t *testing.T) (*BookService, *store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "book-service-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	testStore, err := store.New(dbPath, nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewBookService(testStore, validation.New(), logger)

	cleanup := func() {
		testStore.Close()
		os.RemoveAll(tmpDir)
	}

	return svc, testStore, cleanup
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestCreateBook(t *testing.T) {
	svc, _, cleanup := setupBookService(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("valid input", func(t *testing.T) {
		book, err := svc.CreateBook(ctx, CreateBookParams{
			Title:  "The Dispossessed",
			Author: "Ursula K. Le Guin",
			Year:   1974,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, book.ID)
		assert.Equal(t, domain.StatusToRead, book.Status)
		assert.Nil(t, book.Rating)
		assert.Equal(t, book.CreatedAt, book.ModifiedAt)
	})

	t.Run("explicit status and rating", func(t *testing.T) {
		book, err := svc.CreateBook(ctx, CreateBookParams{
			Title:  "Kindred",
			Author: "Octavia E. Butler",
			Year:   1979,
			Status: "read",
			Rating: intPtr(5),
		})
		require.NoError(t, err)

		assert.Equal(t, domain.StatusRead, book.Status)
		require.NotNil(t, book.Rating)
		assert.Equal(t, 5, *book.Rating)
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			params CreateBookParams
		}{
			{"no title", CreateBookParams{Author: "Someone", Year: 2000}},
			{"no author", CreateBookParams{Title: "Untitled", Year: 2000}},
			{"no year", CreateBookParams{Title: "Untitled", Author: "Someone"}},
			{"no title and author", CreateBookParams{Year: 2000}},
			{"no title and year", CreateBookParams{Author: "Someone"}},
			{"no author and year", CreateBookParams{Title: "Untitled"}},
			{"all missing", CreateBookParams{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateBook(ctx, tt.params)
				assert.ErrorIs(t, err, errors.ErrValidation)
			})
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.CreateBook(ctx, CreateBookParams{
			Title: "Untitled", Author: "Someone", Year: 2000, Status: "reading",
		})
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6} {
			_, err := svc.CreateBook(ctx, CreateBookParams{
				Title: "Untitled", Author: "Someone", Year: 2000, Rating: intPtr(rating),
			})
			assert.ErrorIs(t, err, errors.ErrValidation, "rating %d", rating)
		}
	})
}

func TestGetBook(t *testing.T) {
	svc, _, cleanup := setupBookService(t)
	defer cleanup()

	ctx := context.Background()

	created, err := svc.CreateBook(ctx, CreateBookParams{Title: "Solaris", Author: "Stanisław Lem", Year: 1961})
	require.NoError(t, err)

	t.Run("existing book", func(t *testing.T) {
		book, err := svc.GetBook(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Solaris", book.Title)
	})

	t.Run("well-formed unknown id", func(t *testing.T) {
		_, err := svc.GetBook(ctx, "book-000000000000000000000")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("malformed ids", func(t *testing.T) {
		for _, bad := range []string{"", "abc", "book-short", "64f0c2a9e4b0f8a9d5c3b2a1", created.ID + "x"} {
			_, err := svc.GetBook(ctx, bad)
			assert.ErrorIs(t, err, errors.ErrValidation, "id %q", bad)
		}
	})
}

func TestUpdateBook(t *testing.T) {
	svc, _, cleanup := setupBookService(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("partial update preserves other fields", func(t *testing.T) {
		created, err := svc.CreateBook(ctx, CreateBookParams{Title: "Hyperion", Author: "Dan Simmons", Year: 1989})
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		updated, err := svc.UpdateBook(ctx, created.ID, UpdateBookParams{
			Status: strPtr("read"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Hyperion", updated.Title)
		assert.Equal(t, "Dan Simmons", updated.Author)
		assert.Equal(t, 1989, updated.Year)
		assert.Equal(t, domain.StatusRead, updated.Status)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.True(t, updated.ModifiedAt.After(created.ModifiedAt))
	})

	t.Run("set and clear rating", func(t *testing.T) {
		created, err := svc.CreateBook(ctx, CreateBookParams{
			Title: "Ubik", Author: "Philip K. Dick", Year: 1969, Status: "read",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateBook(ctx, created.ID, UpdateBookParams{Rating: intPtr(4), SetRating: true})
		require.NoError(t, err)
		require.NotNil(t, updated.Rating)
		assert.Equal(t, 4, *updated.Rating)

		// Explicit null clears the rating.
		updated, err = svc.UpdateBook(ctx, created.ID, UpdateBookParams{SetRating: true})
		require.NoError(t, err)
		assert.Nil(t, updated.Rating)
	})

	t.Run("absent rating left untouched", func(t *testing.T) {
		created, err := svc.CreateBook(ctx, CreateBookParams{
			Title: "Blindsight", Author: "Peter Watts", Year: 2006, Status: "read", Rating: intPtr(5),
		})
		require.NoError(t, err)

		updated, err := svc.UpdateBook(ctx, created.ID, UpdateBookParams{Year: intPtr(2008)})
		require.NoError(t, err)
		require.NotNil(t, updated.Rating)
		assert.Equal(t, 5, *updated.Rating)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		created, err := svc.CreateBook(ctx, CreateBookParams{Title: "Dawn", Author: "Octavia E. Butler", Year: 1987})
		require.NoError(t, err)

		_, err = svc.UpdateBook(ctx, created.ID, UpdateBookParams{Title: strPtr("")})
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("rejects bad status and rating", func(t *testing.T) {
		created, err := svc.CreateBook(ctx, CreateBookParams{Title: "Vallista", Author: "Steven Brust", Year: 2017})
		require.NoError(t, err)

		_, err = svc.UpdateBook(ctx, created.ID, UpdateBookParams{Status: strPtr("reading")})
		assert.ErrorIs(t, err, errors.ErrValidation)

		_, err = svc.UpdateBook(ctx, created.ID, UpdateBookParams{Rating: intPtr(0), SetRating: true})
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("unknown book", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, "book-000000000000000000000", UpdateBookParams{Year: intPtr(2000)})
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, "not-an-id", UpdateBookParams{Year: intPtr(2000)})
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestDeleteBook(t *testing.T) {
	svc, _, cleanup := setupBookService(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("delete then get yields not found", func(t *testing.T) {
		created, err := svc.CreateBook(ctx, CreateBookParams{Title: "Piranesi", Author: "Susanna Clarke", Year: 2020})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteBook(ctx, created.ID))

		_, err = svc.GetBook(ctx, created.ID)
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("unknown book", func(t *testing.T) {
		err := svc.DeleteBook(ctx, "book-000000000000000000000")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		err := svc.DeleteBook(ctx, "oops")
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestListBooksNewestFirst(t *testing.T) {
	svc, _, cleanup := setupBookService(t)
	defer cleanup()

	ctx := context.Background()

	first, err := svc.CreateBook(ctx, CreateBookParams{Title: "First", Author: "A", Year: 2001})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.CreateBook(ctx, CreateBookParams{Title: "Second", Author: "B", Year: 2002})
	require.NoError(t, err)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, second.ID, books[0].ID)
	assert.Equal(t, first.ID, books[1].ID)

	// A new insert lands at the head of the next listing.
	time.Sleep(5 * time.Millisecond)
	third, err := svc.CreateBook(ctx, CreateBookParams{Title: "Third", Author: "C", Year: 2003})
	require.NoError(t, err)

	books, err = svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, third.ID, books[0].ID)
}
