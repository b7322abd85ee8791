// Package search implements the search command.
package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/internal/cmd/application"
	"github.com/shelfctl/shelf/internal/cmd/output"
	"github.com/shelfctl/shelf/pkg/books"
	"github.com/shelfctl/shelf/pkg/errors"
)

// NewCommand creates the search command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		title  string
		author string
		genre  string
	)

	cmd := &cobra.Command{
		Use:     "search [KEYWORD]",
		GroupID: "collection",
		Short:   "Search the collection",
		Args:    cobra.MaximumNArgs(1),
		Long: `Search filters the collection by case-insensitive substring match.

A bare keyword matches when any of title, author, or genre contains it.
The --title, --author, and --genre filters each match their own field and
combine with logical AND. Matches are printed in file order; no matches is
not an error.`,
		Example: `  shelf search herbert
  shelf search --genre sci
  shelf search --author austen --genre romance`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			filter := books.Filter{
				Title:  title,
				Author: author,
				Genre:  genre,
			}
			if len(args) == 1 {
				filter.Keyword = strings.TrimSpace(args[0])
			}
			if filter.Empty() {
				return &errors.ValidationError{
					Message: "supply a keyword or at least one of --title, --author, --genre",
				}
			}

			library, err := app.Library(ctx)
			if err != nil {
				return err
			}

			results := library.Find(filter)
			if len(results) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No books matched.")
				return err
			}

			formatter := output.NewFormatter(app.Format())
			if app.Format() == output.FormatTable || app.Format() == "" {
				return formatter.Format(cmd.OutOrStdout(), output.BooksToTableData(results))
			}
			return formatter.Format(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "match against title")
	cmd.Flags().StringVar(&author, "author", "", "match against author")
	cmd.Flags().StringVar(&genre, "genre", "", "match against genre")

	return cmd
}
