package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shelftrack/shelftrack-server/internal/domain"
	"github.com/shelftrack/shelftrack-server/internal/search"
	"github.com/shelftrack/shelftrack-server/internal/store"
)

// SearchService bridges the search index with the data store, handling
// document creation, updates, and query execution. It implements
// store.SearchIndexer so the store can keep the index in sync on writes.
type SearchService struct {
	index  *search.SearchIndex
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.SearchIndex, store *store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		store:  store,
		logger: logger,
	}
}

// Search executes a query against the book index.
func (s *SearchService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	return s.index.Search(ctx, params)
}

// IndexBook indexes a single book.
// Call this when a book is created or updated.
func (s *SearchService) IndexBook(ctx context.Context, book *domain.Book) error {
	if err := s.index.IndexDocument(search.NewBookDocument(book)); err != nil {
		return fmt.Errorf("index document: %w", err)
	}

	s.logger.Debug("indexed book", "id", book.ID, "title", book.Title)
	return nil
}

// DeleteBook removes a book from the index.
func (s *SearchService) DeleteBook(_ context.Context, bookID string) error {
	if err := s.index.DeleteDocument(bookID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.logger.Debug("removed book from search index", "id", bookID)
	return nil
}

// DocumentCount returns the number of indexed documents.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}

// ReindexAll rebuilds the index from the store. Run at startup so books
// written while the index was unavailable become searchable again.
func (s *SearchService) ReindexAll(ctx context.Context) error {
	s.logger.Info("starting full reindex")

	if err := s.index.Rebuild(); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("list books: %w", err)
	}

	docs := make([]*search.BookDocument, 0, len(books))
	for _, book := range books {
		docs = append(docs, search.NewBookDocument(book))
	}

	if len(docs) > 0 {
		if err := s.index.IndexDocuments(docs); err != nil {
			return fmt.Errorf("index books: %w", err)
		}
	}

	s.logger.Info("reindex complete", "count", len(docs))
	return nil
}
