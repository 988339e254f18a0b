package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/shelftrack-server/internal/domain"
	"github.com/shelftrack/shelftrack-server/internal/errors"
	"github.com/shelftrack/shelftrack-server/internal/store"
)

func setupSeedService(t *testing.T) (*SeedService, *store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "seed-service-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	testStore, err := store.New(dbPath, nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSeedService(testStore, logger)

	cleanup := func() {
		testStore.Close()
		os.RemoveAll(tmpDir)
	}

	return svc, testStore, cleanup
}

func TestSeed_EmptyCatalog(t *testing.T) {
	svc, s, cleanup := setupSeedService(t)
	defer cleanup()

	ctx := context.Background()

	count, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)

	byTitle := make(map[string]*domain.Book, len(books))
	for _, b := range books {
		byTitle[b.Title] = b
	}

	etranger := byTitle["L'Étranger"]
	require.NotNil(t, etranger)
	assert.Equal(t, "Albert Camus", etranger.Author)
	assert.Equal(t, 1942, etranger.Year)
	assert.Equal(t, domain.StatusRead, etranger.Status)
	require.NotNil(t, etranger.Rating)
	assert.Equal(t, 5, *etranger.Rating)

	orwell := byTitle["1984"]
	require.NotNil(t, orwell)
	assert.Equal(t, domain.StatusToRead, orwell.Status)
	assert.Nil(t, orwell.Rating)

	prince := byTitle["Le Petit Prince"]
	require.NotNil(t, prince)
	assert.Equal(t, "Antoine de Saint-Exupéry", prince.Author)
	require.NotNil(t, prince.Rating)
	assert.Equal(t, 4, *prince.Rating)
}

func TestSeed_NonEmptyCatalogRefused(t *testing.T) {
	svc, s, cleanup := setupSeedService(t)
	defer cleanup()

	ctx := context.Background()

	existing := &domain.Book{Title: "Already Here", Author: "Someone", Year: 2020, Status: domain.StatusToRead}
	require.NoError(t, s.CreateBook(ctx, existing))

	_, err := svc.Seed(ctx)
	assert.ErrorIs(t, err, errors.ErrValidation)

	// Nothing was inserted.
	count, err := s.CountBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSeed_TwiceRefused(t *testing.T) {
	svc, _, cleanup := setupSeedService(t)
	defer cleanup()

	ctx := context.Background()

	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	_, err = svc.Seed(ctx)
	assert.ErrorIs(t, err, errors.ErrValidation)
}
