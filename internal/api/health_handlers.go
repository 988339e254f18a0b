package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shelftrack/shelftrack-server/internal/errors"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Reports store connectivity and the current book count",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse contains health probe data.
type HealthResponse struct {
	Status     string    `json:"status" doc:"OK when the store answers"`
	Database   string    `json:"database" doc:"Storage backend name"`
	TotalBooks int       `json:"total_books" doc:"Current number of books"`
	Timestamp  time.Time `json:"timestamp" doc:"Probe time"`
}

// HealthOutput wraps the health response.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	count, err := s.store.CountBooks(ctx)
	if err != nil {
		s.logger.Error("Health check failed", "error", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "store unavailable")
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     "OK",
			Database:   "BadgerDB",
			TotalBooks: count,
			Timestamp:  time.Now().UTC(),
		},
	}, nil
}
