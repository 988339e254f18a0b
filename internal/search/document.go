// Package search provides full-text search over the book catalog using Bleve.
// Titles and authors are matched with English stemming, fuzzy matching for
// typo tolerance, and prefix matching for as-you-type queries.
package search

import (
	"github.com/shelftrack/shelftrack-server/internal/domain"
)

// BookDocument is the document structure stored in the Bleve index.
// It carries only the searchable and displayable subset of a book;
// the store remains the source of truth for full records.
type BookDocument struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Year      int    `json:"year"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"` // Unix millis
}

// NewBookDocument builds an index document from a domain book.
func NewBookDocument(book *domain.Book) *BookDocument {
	return &BookDocument{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Year:      book.Year,
		Status:    string(book.Status),
		CreatedAt: book.CreatedAt.UnixMilli(),
	}
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *BookDocument) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         d.ID,
		"title":      d.Title,
		"author":     d.Author,
		"year":       d.Year,
		"status":     d.Status,
		"created_at": d.CreatedAt,
	}
}
