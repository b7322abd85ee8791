package books_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfctl/shelf/internal/store"
	"github.com/shelfctl/shelf/pkg/books"
	"github.com/shelfctl/shelf/pkg/errors"
)

func openLibrary(t *testing.T, seed []books.Book) (*books.Library, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	mem.Seed(seed)
	library, err := books.Open(context.Background(), mem)
	require.NoError(t, err)
	return library, mem
}

func twoBooks() []books.Book {
	return []books.Book{
		{Title: "Dune", Author: "Frank Herbert", Genre: "SciFi", Year: 1965, Status: books.StatusUnread},
		{Title: "Emma", Author: "Jane Austen", Genre: "Romance", Year: 1815, Status: books.StatusUnread},
	}
}

func TestOpenEmptyStore(t *testing.T) {
	library, _ := openLibrary(t, nil)
	assert.Zero(t, library.Len())
}

func TestAddAppendsAndPersists(t *testing.T) {
	library, mem := openLibrary(t, nil)
	ctx := context.Background()

	err := library.Add(ctx, books.Book{Title: "Dune", Author: "Frank Herbert", Genre: "SciFi", Year: 1965})
	require.NoError(t, err)

	require.Equal(t, 1, library.Len())
	require.Equal(t, 1, mem.Saves)

	persisted := mem.Books()
	require.Len(t, persisted, 1)
	assert.Equal(t, "Dune", persisted[0].Title)
	assert.Equal(t, books.StatusUnread, persisted[0].Status, "status should default to unread")
}

func TestAddValidationFailureDoesNotWrite(t *testing.T) {
	library, mem := openLibrary(t, nil)
	ctx := context.Background()

	err := library.Add(ctx, books.Book{Title: "", Author: "Frank Herbert"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	err = library.Add(ctx, books.Book{Title: "Dune", Author: ""})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	assert.Zero(t, mem.Saves, "no save should happen for invalid records")
	assert.Zero(t, library.Len())
}

func TestUpdateAppliesPartialChange(t *testing.T) {
	library, mem := openLibrary(t, twoBooks())
	ctx := context.Background()

	status := books.StatusRead
	updated, err := library.Update(ctx, "Dune", "", books.Changes{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	persisted := mem.Books()
	require.Len(t, persisted, 2)
	assert.Equal(t, books.StatusRead, persisted[0].Status)
	assert.Equal(t, "Dune", persisted[0].Title, "untouched fields must survive")
	assert.Equal(t, 1965, persisted[0].Year)
	assert.Equal(t, twoBooks()[1], persisted[1], "other records must be unchanged")
}

func TestUpdateMatchesCaseInsensitively(t *testing.T) {
	library, _ := openLibrary(t, twoBooks())

	genre := "Science Fiction"
	updated, err := library.Update(context.Background(), "dune", "", books.Changes{Genre: &genre})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestUpdateAllMatchesWhenTitlesCollide(t *testing.T) {
	shelf := []books.Book{
		{Title: "Dune", Author: "Frank Herbert", Status: books.StatusUnread},
		{Title: "Dune", Author: "Brian Herbert", Status: books.StatusUnread},
	}
	library, mem := openLibrary(t, shelf)

	status := books.StatusReading
	updated, err := library.Update(context.Background(), "Dune", "", books.Changes{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 2, updated, "every record sharing the title is updated")

	for _, b := range mem.Books() {
		assert.Equal(t, books.StatusReading, b.Status)
	}
}

func TestUpdateAuthorNarrowsMatch(t *testing.T) {
	shelf := []books.Book{
		{Title: "Dune", Author: "Frank Herbert", Status: books.StatusUnread},
		{Title: "Dune", Author: "Brian Herbert", Status: books.StatusUnread},
	}
	library, mem := openLibrary(t, shelf)

	status := books.StatusRead
	updated, err := library.Update(context.Background(), "Dune", "Frank Herbert", books.Changes{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	persisted := mem.Books()
	assert.Equal(t, books.StatusRead, persisted[0].Status)
	assert.Equal(t, books.StatusUnread, persisted[1].Status)
}

func TestUpdateNotFoundDoesNotWrite(t *testing.T) {
	library, mem := openLibrary(t, twoBooks())
	mem.Saves = 0

	status := books.StatusRead
	_, err := library.Update(context.Background(), "Neuromancer", "", books.Changes{Status: &status})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Zero(t, mem.Saves)
}

func TestUpdateEmptyChangesRejected(t *testing.T) {
	library, mem := openLibrary(t, twoBooks())
	mem.Saves = 0

	_, err := library.Update(context.Background(), "Dune", "", books.Changes{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, mem.Saves)
}

func TestUpdateInvalidChangeDoesNotWrite(t *testing.T) {
	library, mem := openLibrary(t, twoBooks())
	mem.Saves = 0

	empty := ""
	_, err := library.Update(context.Background(), "Dune", "", books.Changes{Title: &empty})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, mem.Saves)
}

func TestRemove(t *testing.T) {
	library, mem := openLibrary(t, twoBooks())

	removed, err := library.Remove(context.Background(), "Emma", "")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	persisted := mem.Books()
	require.Len(t, persisted, 1)
	assert.Equal(t, "Dune", persisted[0].Title)
}

func TestRemoveNotFoundDoesNotWrite(t *testing.T) {
	library, mem := openLibrary(t, twoBooks())
	mem.Saves = 0

	_, err := library.Remove(context.Background(), "Neuromancer", "")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Zero(t, mem.Saves)
	assert.Equal(t, 2, library.Len())
}

func TestRemoveAllMatchesWhenTitlesCollide(t *testing.T) {
	shelf := []books.Book{
		{Title: "Dune", Author: "Frank Herbert"},
		{Title: "Emma", Author: "Jane Austen"},
		{Title: "Dune", Author: "Brian Herbert"},
	}
	library, mem := openLibrary(t, shelf)

	removed, err := library.Remove(context.Background(), "dune", "")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	persisted := mem.Books()
	require.Len(t, persisted, 1)
	assert.Equal(t, "Emma", persisted[0].Title)
}

func TestSaveFailureLeavesMemoryUntouched(t *testing.T) {
	library, mem := openLibrary(t, twoBooks())
	mem.FailSave = errors.New("disk full")

	err := library.Add(context.Background(), books.Book{Title: "Neuromancer", Author: "William Gibson"})
	require.Error(t, err)
	assert.Equal(t, 2, library.Len(), "failed save must not mutate the in-memory set")

	_, err = library.Remove(context.Background(), "Emma", "")
	require.Error(t, err)
	assert.Equal(t, 2, library.Len())
}

func TestBooksReturnsCopy(t *testing.T) {
	library, _ := openLibrary(t, twoBooks())

	list := library.Books()
	list[0].Title = "mutated"

	assert.Equal(t, "Dune", library.Books()[0].Title)
}
