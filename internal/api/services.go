package api

import "github.com/shelftrack/shelftrack-server/internal/service"

// Services groups the service dependencies handed to the HTTP server.
type Services struct {
	Book   *service.BookService
	Stats  *service.StatsService
	Seed   *service.SeedService
	Search *service.SearchService
}
