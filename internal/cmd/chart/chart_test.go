package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shelfctl/shelf/pkg/books"
)

func TestGenresCountsAndOrder(t *testing.T) {
	shelf := []books.Book{
		{Title: "Dune", Author: "Frank Herbert", Genre: "scifi"},
		{Title: "Dune Messiah", Author: "Frank Herbert", Genre: "SciFi"},
		{Title: "Emma", Author: "Jane Austen", Genre: "Romance"},
	}

	var buf bytes.Buffer
	if err := Genres(&buf, shelf, true); err != nil {
		t.Fatalf("Genres() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 genre lines, got %d:\n%s", len(lines), buf.String())
	}

	// Largest genre first; genre casing is normalized before counting.
	if !strings.HasPrefix(lines[0], "Scifi") || !strings.HasSuffix(lines[0], "2") {
		t.Errorf("first line should be Scifi with count 2, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Romance") || !strings.HasSuffix(lines[1], "1") {
		t.Errorf("second line should be Romance with count 1, got %q", lines[1])
	}
	if !strings.Contains(lines[0], "██") {
		t.Errorf("bar should have two cells, got %q", lines[0])
	}
}

func TestGenresGroupsMissingGenre(t *testing.T) {
	shelf := []books.Book{{Title: "Dune", Author: "Frank Herbert"}}

	var buf bytes.Buffer
	if err := Genres(&buf, shelf, true); err != nil {
		t.Fatalf("Genres() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Uncategorized") {
		t.Errorf("missing genre should be grouped, got:\n%s", buf.String())
	}
}

func TestGenresEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := Genres(&buf, nil, true); err != nil {
		t.Fatalf("Genres() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No books to chart.") {
		t.Errorf("empty collection message missing, got %q", buf.String())
	}
}

func TestGenresScalesWideBars(t *testing.T) {
	var shelf []books.Book
	for i := 0; i < 200; i++ {
		shelf = append(shelf, books.Book{Title: "x", Author: "y", Genre: "scifi"})
	}
	shelf = append(shelf, books.Book{Title: "Emma", Author: "Jane Austen", Genre: "Romance"})

	var buf bytes.Buffer
	if err := Genres(&buf, shelf, true); err != nil {
		t.Fatalf("Genres() failed: %v", err)
	}

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if n := strings.Count(line, "█"); n > maxBarWidth {
			t.Errorf("bar wider than %d cells: %q", maxBarWidth, line)
		}
		if n := strings.Count(line, "█"); n == 0 {
			t.Errorf("every genre should keep at least one cell: %q", line)
		}
	}
}
