package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerStatsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/api/stats",
		Summary:     "Catalog statistics",
		Description: "Totals by reading state and the average rating over read, rated books",
		Tags:        []string{"Stats"},
	}, s.handleGetStats)
}

// StatsResponse contains aggregate catalog statistics.
type StatsResponse struct {
	Total         int     `json:"total" doc:"Total number of books"`
	ReadCount     int     `json:"read_count" doc:"Books marked read"`
	ToReadCount   int     `json:"to_read_count" doc:"Books still to read"`
	AverageRating float64 `json:"average_rating" doc:"Average rating over read, rated books; 0 when none"`
}

// StatsOutput wraps the stats response.
type StatsOutput struct {
	Body StatsResponse
}

func (s *Server) handleGetStats(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	stats, err := s.services.Stats.GetStats(ctx)
	if err != nil {
		s.logger.Error("Failed to compute stats", "error", err)
		return nil, err
	}

	return &StatsOutput{
		Body: StatsResponse{
			Total:         stats.Total,
			ReadCount:     stats.ReadCount,
			ToReadCount:   stats.ToReadCount,
			AverageRating: stats.AverageRating,
		},
	}, nil
}
