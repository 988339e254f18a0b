package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerSeedRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "initSampleData",
		Method:      http.MethodPost,
		Path:        "/api/init-sample",
		Summary:     "Seed sample data",
		Description: "Inserts three fixed sample books into an empty catalog; fails when books already exist",
		Tags:        []string{"Admin"},
	}, s.handleInitSample)
}

func (s *Server) handleInitSample(ctx context.Context, _ *struct{}) (*MessageOutput, error) {
	count, err := s.services.Seed.Seed(ctx)
	if err != nil {
		return nil, err
	}

	return &MessageOutput{
		Body: MessageResponse{Message: fmt.Sprintf("%d books added", count)},
	}, nil
}
