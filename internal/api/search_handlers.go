package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shelftrack/shelftrack-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/books/search",
		Summary:     "Search books",
		Description: "Full-text search over titles and authors with typo tolerance",
		Tags:        []string{"Books"},
	}, s.handleSearchBooks)
}

// SearchBooksInput contains search query parameters.
type SearchBooksInput struct {
	Query   string `query:"q" required:"true" minLength:"1" maxLength:"200" doc:"Search query"`
	Status  string `query:"status" doc:"Filter by reading state (to-read or read)"`
	MinYear int    `query:"min_year" doc:"Minimum publication year"`
	MaxYear int    `query:"max_year" doc:"Maximum publication year"`
	Limit   int    `query:"limit" minimum:"1" maximum:"100" doc:"Max results (default 20)"`
	Offset  int    `query:"offset" minimum:"0" doc:"Pagination offset"`
}

// SearchHitResponse is a single search result.
type SearchHitResponse struct {
	ID         string            `json:"id" doc:"Book identifier"`
	Score      float64           `json:"score" doc:"Relevance score"`
	Title      string            `json:"title" doc:"Book title"`
	Author     string            `json:"author" doc:"Author name"`
	Year       int               `json:"year,omitempty" doc:"Publication year"`
	Status     string            `json:"status,omitempty" doc:"Reading state"`
	Highlights map[string]string `json:"highlights,omitempty" doc:"Highlighted matches"`
}

// SearchBooksResponse contains search results.
type SearchBooksResponse struct {
	Query  string              `json:"query" doc:"Original search query"`
	Total  uint64              `json:"total" doc:"Total matches"`
	TookMs int64               `json:"took_ms" doc:"Search duration in milliseconds"`
	Hits   []SearchHitResponse `json:"hits" doc:"Search results"`
}

// SearchBooksOutput wraps the search response.
type SearchBooksOutput struct {
	Body SearchBooksResponse
}

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchBooksInput) (*SearchBooksOutput, error) {
	params := search.DefaultSearchParams()
	params.Query = input.Query
	params.Status = input.Status
	params.MinYear = input.MinYear
	params.MaxYear = input.MaxYear
	params.Offset = input.Offset
	if input.Limit > 0 {
		params.Limit = input.Limit
	}

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		s.logger.Error("Search failed", "query", input.Query, "error", err)
		return nil, err
	}

	resp := SearchBooksResponse{
		Query:  result.Query,
		Total:  result.Total,
		TookMs: result.TookMs,
		Hits:   make([]SearchHitResponse, 0, len(result.Hits)),
	}
	for _, hit := range result.Hits {
		resp.Hits = append(resp.Hits, SearchHitResponse{
			ID:         hit.ID,
			Score:      hit.Score,
			Title:      hit.Title,
			Author:     hit.Author,
			Year:       hit.Year,
			Status:     hit.Status,
			Highlights: hit.Highlights,
		})
	}

	return &SearchBooksOutput{Body: resp}, nil
}
