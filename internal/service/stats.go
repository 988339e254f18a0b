package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/shelftrack/shelftrack-server/internal/domain"
	"github.com/shelftrack/shelftrack-server/internal/errors"
	"github.com/shelftrack/shelftrack-server/internal/store"
)

// StatsService computes aggregate statistics over the catalog.
type StatsService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(store *store.Store, logger *slog.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
	}
}

// Stats is the aggregate view of the catalog.
type Stats struct {
	Total         int     `json:"total"`
	ReadCount     int     `json:"read_count"`
	ToReadCount   int     `json:"to_read_count"`
	AverageRating float64 `json:"average_rating"`
}

// GetStats returns catalog totals and the average rating.
// The average covers only read books that carry a rating; it is 0 when
// no such books exist, and rounded to one decimal place.
func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to list books")
	}

	stats := &Stats{Total: len(books)}

	ratingSum := 0
	ratedCount := 0
	for _, book := range books {
		switch book.Status {
		case domain.StatusRead:
			stats.ReadCount++
			if book.IsRated() {
				ratingSum += *book.Rating
				ratedCount++
			}
		case domain.StatusToRead:
			stats.ToReadCount++
		}
	}

	if ratedCount > 0 {
		avg := float64(ratingSum) / float64(ratedCount)
		stats.AverageRating = math.Round(avg*10) / 10
	}

	return stats, nil
}
