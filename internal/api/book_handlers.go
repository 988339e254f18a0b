package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shelftrack/shelftrack-server/internal/domain"
	"github.com/shelftrack/shelftrack-server/internal/service"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/books",
		Summary:     "List books",
		Description: "Returns all books, newest first",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/books/{id}",
		Summary:     "Get book",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createBook",
		Method:        http.MethodPost,
		Path:          "/api/books",
		Summary:       "Create book",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Books"},
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBook",
		Method:      http.MethodPut,
		Path:        "/api/books/{id}",
		Summary:     "Update book",
		Description: "Partial update; only fields present in the body are replaced",
		Tags:        []string{"Books"},
	}, s.handleUpdateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBook",
		Method:      http.MethodDelete,
		Path:        "/api/books/{id}",
		Summary:     "Delete book",
		Tags:        []string{"Books"},
	}, s.handleDeleteBook)
}

// === DTOs ===

// BookResponse is the wire representation of a book.
type BookResponse struct {
	ID         string    `json:"id" doc:"Book identifier"`
	Title      string    `json:"title" doc:"Book title"`
	Author     string    `json:"author" doc:"Author name"`
	Year       int       `json:"year" doc:"Publication year"`
	Status     string    `json:"status" doc:"Reading state: to-read or read"`
	Rating     *int      `json:"rating" doc:"Rating 1-5, null when unrated"`
	CreatedAt  time.Time `json:"created_at" doc:"Record creation time"`
	ModifiedAt time.Time `json:"modified_at" doc:"Last modification time"`
}

func toBookResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:         book.ID,
		Title:      book.Title,
		Author:     book.Author,
		Year:       book.Year,
		Status:     string(book.Status),
		Rating:     book.Rating,
		CreatedAt:  book.CreatedAt,
		ModifiedAt: book.ModifiedAt,
	}
}

// CreateBookRequest is the body for creating a book. Required-field checks
// live in the service so the error shape stays consistent.
type CreateBookRequest struct {
	Title  string `json:"title,omitempty" doc:"Book title"`
	Author string `json:"author,omitempty" doc:"Author name"`
	Year   int    `json:"year,omitempty" doc:"Publication year"`
	Status string `json:"status,omitempty" enum:"to-read,read" doc:"Reading state, defaults to to-read"`
	Rating *int   `json:"rating,omitempty" minimum:"1" maximum:"5" doc:"Rating 1-5"`
}

// UpdateBookRequest contains fields that can be updated on a book.
// Only fields present in the body are applied. Pointers distinguish
// "not provided" from a supplied value; rating additionally accepts an
// explicit null to clear it.
type UpdateBookRequest struct {
	Title  *string     `json:"title,omitempty" doc:"Book title"`
	Author *string     `json:"author,omitempty" doc:"Author name"`
	Year   *int        `json:"year,omitempty" doc:"Publication year"`
	Status *string     `json:"status,omitempty" enum:"to-read,read" doc:"Reading state"`
	Rating OptionalInt `json:"rating,omitempty" doc:"Rating 1-5, or null to clear"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// === Inputs/Outputs ===

// BookIDInput captures the id path parameter.
type BookIDInput struct {
	ID string `path:"id" doc:"Book identifier"`
}

// BookOutput wraps a single book response.
type BookOutput struct {
	Body BookResponse
}

// BookListOutput wraps the book list response.
type BookListOutput struct {
	Body []BookResponse
}

// CreateBookInput wraps the create request body.
type CreateBookInput struct {
	Body CreateBookRequest
}

// UpdateBookInput wraps the id and update body.
type UpdateBookInput struct {
	ID   string `path:"id" doc:"Book identifier"`
	Body UpdateBookRequest
}

// MessageOutput wraps a confirmation message response.
type MessageOutput struct {
	Body MessageResponse
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, _ *struct{}) (*BookListOutput, error) {
	books, err := s.services.Book.ListBooks(ctx)
	if err != nil {
		s.logger.Error("Failed to list books", "error", err)
		return nil, err
	}

	out := &BookListOutput{Body: make([]BookResponse, 0, len(books))}
	for _, book := range books {
		out.Body = append(out.Body, toBookResponse(book))
	}
	return out, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *BookIDInput) (*BookOutput, error) {
	book, err := s.services.Book.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: toBookResponse(book)}, nil
}

func (s *Server) handleCreateBook(ctx context.Context, input *CreateBookInput) (*BookOutput, error) {
	book, err := s.services.Book.CreateBook(ctx, service.CreateBookParams{
		Title:  input.Body.Title,
		Author: input.Body.Author,
		Year:   input.Body.Year,
		Status: input.Body.Status,
		Rating: input.Body.Rating,
	})
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: toBookResponse(book)}, nil
}

func (s *Server) handleUpdateBook(ctx context.Context, input *UpdateBookInput) (*BookOutput, error) {
	book, err := s.services.Book.UpdateBook(ctx, input.ID, service.UpdateBookParams{
		Title:     input.Body.Title,
		Author:    input.Body.Author,
		Year:      input.Body.Year,
		Status:    input.Body.Status,
		Rating:    input.Body.Rating.Value,
		SetRating: input.Body.Rating.Set,
	})
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: toBookResponse(book)}, nil
}

func (s *Server) handleDeleteBook(ctx context.Context, input *BookIDInput) (*MessageOutput, error) {
	if err := s.services.Book.DeleteBook(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Book deleted"}}, nil
}
