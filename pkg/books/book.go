// Package books defines the book record, read-only filtering over a record
// sequence, and the library that owns mutation and persistence of the
// collection.
package books

import (
	"fmt"
	"strings"

	"github.com/shelfctl/shelf/pkg/errors"
)

// Status tracks reading progress for a book.
type Status string

// Enumerated statuses. Free-text values are tolerated when loading an
// existing file but never produced by this package.
const (
	StatusUnread  Status = "unread"
	StatusReading Status = "reading"
	StatusRead    Status = "read"
)

// Known reports whether s is one of the enumerated statuses.
func (s Status) Known() bool {
	switch s {
	case StatusUnread, StatusReading, StatusRead:
		return true
	}
	return false
}

// ParseStatus normalizes a user-supplied status string.
// An empty string maps to StatusUnread.
func ParseStatus(s string) (Status, error) {
	v := Status(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return StatusUnread, nil
	}
	if !v.Known() {
		return "", &errors.ValidationError{
			Field:   "status",
			Value:   s,
			Message: "must be one of: unread, reading, read",
		}
	}
	return v, nil
}

// Book is one record in the collection.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Genre  string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Year   int    `json:"year,omitempty" yaml:"year,omitempty"`
	Status Status `json:"status,omitempty" yaml:"status,omitempty"`
}

// Validate checks that required fields are present and the year, when set,
// is a plausible 4-digit year.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return &errors.ValidationError{Field: "title", Message: "must not be empty"}
	}
	if strings.TrimSpace(b.Author) == "" {
		return &errors.ValidationError{Field: "author", Message: "must not be empty"}
	}
	if b.Year != 0 && (b.Year < 1000 || b.Year > 9999) {
		return &errors.ValidationError{Field: "year", Value: b.Year, Message: "must be a 4-digit year"}
	}
	return nil
}

// String renders the record in the same one-line form the CLI prints:
// "Title by Author (Genre, Year)".
func (b Book) String() string {
	var meta []string
	if b.Genre != "" {
		meta = append(meta, b.Genre)
	}
	if b.Year != 0 {
		meta = append(meta, fmt.Sprintf("%d", b.Year))
	}
	if len(meta) == 0 {
		return fmt.Sprintf("%s by %s", b.Title, b.Author)
	}
	return fmt.Sprintf("%s by %s (%s)", b.Title, b.Author, strings.Join(meta, ", "))
}
