package books

import (
	"context"
	"strings"

	"github.com/shelfctl/shelf/pkg/errors"
)

// Store is the durable representation of the record set. The library loads
// the whole set once and rewrites the whole set after every mutation; there
// is no partial load and no append-only log.
type Store interface {
	Load(ctx context.Context) ([]Book, error)
	Save(ctx context.Context, list []Book) error
}

// Changes holds a partial update for matched records. Nil fields leave the
// corresponding record field untouched.
type Changes struct {
	Title  *string
	Author *string
	Genre  *string
	Year   *int
	Status *Status
}

// Empty reports whether the change set would modify nothing.
func (c Changes) Empty() bool {
	return c.Title == nil && c.Author == nil && c.Genre == nil && c.Year == nil && c.Status == nil
}

// apply returns a copy of b with the supplied fields overwritten.
func (c Changes) apply(b Book) Book {
	if c.Title != nil {
		b.Title = *c.Title
	}
	if c.Author != nil {
		b.Author = *c.Author
	}
	if c.Genre != nil {
		b.Genre = *c.Genre
	}
	if c.Year != nil {
		b.Year = *c.Year
	}
	if c.Status != nil {
		b.Status = *c.Status
	}
	return b
}

// Library owns the in-memory record set and its store. It is not safe for
// concurrent use; the CLI is single-threaded by design.
type Library struct {
	store Store
	books []Book
}

// Open loads the full record set from the store. A store with no prior data
// yields an empty library, not an error.
func Open(ctx context.Context, store Store) (*Library, error) {
	list, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Library{store: store, books: list}, nil
}

// Books returns a copy of the record sequence in insertion order.
func (l *Library) Books() []Book {
	out := make([]Book, len(l.books))
	copy(out, l.books)
	return out
}

// Len returns the number of records.
func (l *Library) Len() int {
	return len(l.books)
}

// Find returns the ordered subsequence of records matching f.
func (l *Library) Find(f Filter) []Book {
	return Find(l.books, f)
}

// Add validates the record, appends it to the end of the sequence, and
// persists the full set. A validation failure aborts before any write.
func (l *Library) Add(ctx context.Context, b Book) error {
	if b.Status == "" {
		b.Status = StatusUnread
	}
	if err := b.Validate(); err != nil {
		return err
	}

	next := append(l.Books(), b)
	if err := l.store.Save(ctx, next); err != nil {
		return err
	}
	l.books = next
	return nil
}

// Update applies the change set to every record whose title matches exactly
// (case-insensitive), further narrowed by author when one is given. All
// matches receive the same partial update. Returns the number of records
// changed; zero matches yield ErrNotFound and no write.
func (l *Library) Update(ctx context.Context, title, author string, changes Changes) (int, error) {
	if changes.Empty() {
		return 0, &errors.ValidationError{Message: "no field changes supplied"}
	}

	next := l.Books()
	updated := 0
	for i := range next {
		if !matches(&next[i], title, author) {
			continue
		}
		b := changes.apply(next[i])
		if err := b.Validate(); err != nil {
			return 0, err
		}
		next[i] = b
		updated++
	}
	if updated == 0 {
		return 0, errors.NewNotFoundError("book", title)
	}

	if err := l.store.Save(ctx, next); err != nil {
		return 0, err
	}
	l.books = next
	return updated, nil
}

// Remove deletes every record whose title matches exactly (case-insensitive),
// further narrowed by author when one is given. Returns the number of records
// removed; zero matches yield ErrNotFound and no write.
func (l *Library) Remove(ctx context.Context, title, author string) (int, error) {
	next := make([]Book, 0, len(l.books))
	removed := 0
	for i := range l.books {
		if matches(&l.books[i], title, author) {
			removed++
			continue
		}
		next = append(next, l.books[i])
	}
	if removed == 0 {
		return 0, errors.NewNotFoundError("book", title)
	}

	if err := l.store.Save(ctx, next); err != nil {
		return 0, err
	}
	l.books = next
	return removed, nil
}

// matches implements the identity rule for update and remove: exact
// case-insensitive equality on title, and on author when given.
func matches(b *Book, title, author string) bool {
	if !strings.EqualFold(b.Title, title) {
		return false
	}
	if author != "" && !strings.EqualFold(b.Author, author) {
		return false
	}
	return true
}
