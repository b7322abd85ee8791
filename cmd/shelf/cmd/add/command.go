// Package add implements the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/internal/cmd/application"
	"github.com/shelfctl/shelf/pkg/books"
)

// NewCommand creates the add command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		author string
		genre  string
		status string
		year   int
	)

	cmd := &cobra.Command{
		Use:     "add TITLE",
		GroupID: "collection",
		Short:   "Add a book to the collection",
		Args:    cobra.ExactArgs(1),
		Long: `Add appends a new book to the collection and rewrites the backing file.

Title and author are required; genre, year, and status are optional.
Status defaults to "unread".`,
		Example: `  shelf add "Dune" --author "Frank Herbert" --genre SciFi --year 1965
  shelf add "Emma" -a "Jane Austen" --status read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := books.ParseStatus(status)
			if err != nil {
				return err
			}

			book := books.Book{
				Title:  args[0],
				Author: author,
				Genre:  genre,
				Year:   year,
				Status: st,
			}

			library, err := app.Library(ctx)
			if err != nil {
				return err
			}
			if err := library.Add(ctx, book); err != nil {
				return err
			}

			app.Logger().Info().Str("title", book.Title).Str("author", book.Author).
				Msg("book added")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", book)
			return err
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "book author (required)")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "book genre")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "publication year")
	cmd.Flags().StringVarP(&status, "status", "s", "", "reading status: unread, reading, read")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}
