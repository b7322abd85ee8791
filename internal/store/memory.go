package store

import (
	"context"
	"sync"

	"github.com/shelfctl/shelf/pkg/books"
)

// Memory keeps the record set in process memory. Data is lost when the
// process exits. Used by tests and ephemeral runs.
type Memory struct {
	mu    sync.RWMutex
	books []books.Book

	// Saves counts successful Save calls.
	Saves int

	// FailSave, when set, makes every Save return this error without
	// touching the stored records.
	FailSave error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Seed replaces the stored records. Mainly for test setup.
func (m *Memory) Seed(list []books.Book) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books = copyBooks(list)
}

// Load returns a copy of the stored record sequence.
func (m *Memory) Load(_ context.Context) ([]books.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyBooks(m.books), nil
}

// Save replaces the stored record sequence with a copy of list.
func (m *Memory) Save(_ context.Context, list []books.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.books = copyBooks(list)
	m.Saves++
	return nil
}

// Books returns a copy of the stored record sequence without counting as
// a load.
func (m *Memory) Books() []books.Book {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyBooks(m.books)
}

func copyBooks(list []books.Book) []books.Book {
	if list == nil {
		return nil
	}
	out := make([]books.Book, len(list))
	copy(out, list)
	return out
}
