// Package domain contains the core business entities for the shelftrack library.
package domain

import "time"

// Status is the reading state of a book.
type Status string

// Reading states. A book starts life as "to-read" and is flipped to "read"
// once finished.
const (
	StatusToRead Status = "to-read"
	StatusRead   Status = "read"
)

// IsValid reports whether s is one of the known reading states.
func (s Status) IsValid() bool {
	return s == StatusToRead || s == StatusRead
}

// Book represents a tracked book.
//
// Rating is a pointer so that "unrated" (nil) survives the JSON round trip
// as null; it is only meaningful for read books, but a to-read book may
// carry a stale rating from before its status changed back.
type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Year       int       `json:"year"`
	Status     Status    `json:"status"`
	Rating     *int      `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Touch updates the ModifiedAt timestamp to the current time.
// Call this whenever the underlying record changes.
func (b *Book) Touch() {
	b.ModifiedAt = time.Now().UTC()
}

// InitTimestamps sets both CreatedAt and ModifiedAt to the same instant.
// Call this when creating a new record.
func (b *Book) InitTimestamps() {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.ModifiedAt = now
}

// IsRated reports whether the book has a rating set.
func (b *Book) IsRated() bool {
	return b.Rating != nil
}
