package output

import (
	"strconv"

	"github.com/shelfctl/shelf/pkg/books"
)

// BooksToTableData converts a record sequence to table format, one row per
// record in the given order.
func BooksToTableData(list []books.Book) Data {
	headers := []string{"Title", "Author", "Genre", "Year", "Status"}

	rows := make([][]string, 0, len(list))
	for i := range list {
		b := &list[i]

		genre := b.Genre
		if genre == "" {
			genre = "-"
		}
		year := "-"
		if b.Year != 0 {
			year = strconv.Itoa(b.Year)
		}
		status := string(b.Status)
		if status == "" {
			status = string(books.StatusUnread)
		}

		rows = append(rows, []string{b.Title, b.Author, genre, year, status})
	}

	return Data{Headers: headers, Rows: rows}
}
