package service

import (
	"context"
	"log/slog"

	"github.com/shelftrack/shelftrack-server/internal/domain"
	"github.com/shelftrack/shelftrack-server/internal/errors"
	"github.com/shelftrack/shelftrack-server/internal/store"
)

// SeedService inserts a fixed set of sample books into an empty catalog.
type SeedService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(store *store.Store, logger *slog.Logger) *SeedService {
	return &SeedService{
		store:  store,
		logger: logger,
	}
}

// sampleBooks returns fresh copies of the fixed sample records.
// Fresh copies each call so seeded IDs and timestamps are never shared.
func sampleBooks() []*domain.Book {
	five := 5
	four := 4
	return []*domain.Book{
		{
			Title:  "L'Étranger",
			Author: "Albert Camus",
			Year:   1942,
			Status: domain.StatusRead,
			Rating: &five,
		},
		{
			Title:  "1984",
			Author: "George Orwell",
			Year:   1949,
			Status: domain.StatusToRead,
		},
		{
			Title:  "Le Petit Prince",
			Author: "Antoine de Saint-Exupéry",
			Year:   1943,
			Status: domain.StatusRead,
			Rating: &four,
		},
	}
}

// Seed inserts the sample books. It refuses to run against a non-empty
// catalog and reports the number of records inserted.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	count, err := s.store.CountBooks(ctx)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInternal, "failed to count books")
	}
	if count > 0 {
		return 0, errors.Validation("database already seeded")
	}

	books := sampleBooks()
	for _, book := range books {
		if err := s.store.CreateBook(ctx, book); err != nil {
			return 0, errors.Wrap(err, errors.CodeInternal, "failed to insert sample book")
		}
	}

	if s.logger != nil {
		s.logger.Info("sample data seeded", "count", len(books))
	}
	return len(books), nil
}
