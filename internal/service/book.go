// Package service provides the business logic layer for the book catalog.
package service

import (
	"context"
	"log/slog"

	"github.com/shelftrack/shelftrack-server/internal/domain"
	"github.com/shelftrack/shelftrack-server/internal/errors"
	"github.com/shelftrack/shelftrack-server/internal/id"
	"github.com/shelftrack/shelftrack-server/internal/store"
	"github.com/shelftrack/shelftrack-server/internal/validation"
)

// BookService orchestrates book operations.
type BookService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *BookService {
	return &BookService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateBookParams is the input for creating a book.
type CreateBookParams struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   int    `json:"year" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=to-read read"`
	Rating *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// UpdateBookParams is the input for a partial update. Nil pointer fields are
// left untouched; set fields replace the stored value. Rating is special:
// SetRating distinguishes "leave alone" from "clear to null" (Rating nil with
// SetRating true).
type UpdateBookParams struct {
	Title     *string
	Author    *string
	Year      *int
	Status    *string
	Rating    *int
	SetRating bool
}

// ListBooks returns all books, newest first.
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to list books")
	}
	return books, nil
}

// GetBook retrieves a single book by ID.
func (s *BookService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	if !id.Valid(id.PrefixBook, bookID) {
		return nil, errors.Validation("invalid book id")
	}

	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, errors.NotFound("book not found")
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to get book")
	}
	return book, nil
}

// CreateBook validates input and persists a new book.
// The store mints the ID and sets both timestamps to the same instant.
func (s *BookService) CreateBook(ctx context.Context, params CreateBookParams) (*domain.Book, error) {
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}
	// validator's omitempty treats a pointer to 0 as unset, so the zero
	// rating needs an explicit check.
	if params.Rating != nil && (*params.Rating < 1 || *params.Rating > 5) {
		return nil, errors.Validation("rating must be between 1 and 5")
	}

	book := &domain.Book{
		Title:  params.Title,
		Author: params.Author,
		Year:   params.Year,
		Status: domain.Status(params.Status),
		Rating: params.Rating,
	}
	if book.Status == "" {
		book.Status = domain.StatusToRead
	}

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to create book")
	}
	return book, nil
}

// UpdateBook applies a partial update to an existing book. Only fields present
// in the request replace stored values, so an explicit empty title is rejected
// rather than silently ignored. ModifiedAt is always refreshed.
func (s *BookService) UpdateBook(ctx context.Context, bookID string, params UpdateBookParams) (*domain.Book, error) {
	if !id.Valid(id.PrefixBook, bookID) {
		return nil, errors.Validation("invalid book id")
	}

	if params.Title != nil && *params.Title == "" {
		return nil, errors.Validation("title cannot be empty")
	}
	if params.Author != nil && *params.Author == "" {
		return nil, errors.Validation("author cannot be empty")
	}
	if params.Status != nil && !domain.Status(*params.Status).IsValid() {
		return nil, errors.Validationf("status must be one of: %s, %s", domain.StatusToRead, domain.StatusRead)
	}
	if params.Rating != nil && (*params.Rating < 1 || *params.Rating > 5) {
		return nil, errors.Validation("rating must be between 1 and 5")
	}

	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, errors.NotFound("book not found")
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to get book")
	}

	if params.Title != nil {
		book.Title = *params.Title
	}
	if params.Author != nil {
		book.Author = *params.Author
	}
	if params.Year != nil {
		book.Year = *params.Year
	}
	if params.Status != nil {
		book.Status = domain.Status(*params.Status)
	}
	if params.SetRating {
		book.Rating = params.Rating
	}

	if err := s.store.UpdateBook(ctx, book); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to update book")
	}
	return book, nil
}

// DeleteBook removes a book by ID.
func (s *BookService) DeleteBook(ctx context.Context, bookID string) error {
	if !id.Valid(id.PrefixBook, bookID) {
		return errors.Validation("invalid book id")
	}

	if err := s.store.DeleteBook(ctx, bookID); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return errors.NotFound("book not found")
		}
		return errors.Wrap(err, errors.CodeInternal, "failed to delete book")
	}
	return nil
}
