// Package update implements the update command.
package update

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/internal/cmd/application"
	"github.com/shelfctl/shelf/pkg/books"
)

// NewCommand creates the update command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		matchAuthor string
		newTitle    string
		newAuthor   string
		newGenre    string
		newStatus   string
		newYear     int
	)

	cmd := &cobra.Command{
		Use:     "update TITLE",
		GroupID: "collection",
		Short:   "Update books matching a title",
		Args:    cobra.ExactArgs(1),
		Long: `Update applies a partial change to every book whose title equals TITLE
(case-insensitive). When several books share a title, --author narrows the
match; without it, all of them receive the same change.

Only the --new-* flags you pass are changed; everything else stays as it
is. If nothing matches, the backing file is left untouched.`,
		Example: `  shelf update "Dune" --new-status read
  shelf update "Emma" --author "Jane Austen" --new-genre Romance
  shelf update "Dune" --new-year 1965 --new-genre SciFi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var changes books.Changes
			if cmd.Flags().Changed("new-title") {
				changes.Title = &newTitle
			}
			if cmd.Flags().Changed("new-author") {
				changes.Author = &newAuthor
			}
			if cmd.Flags().Changed("new-genre") {
				changes.Genre = &newGenre
			}
			if cmd.Flags().Changed("new-year") {
				changes.Year = &newYear
			}
			if cmd.Flags().Changed("new-status") {
				status, err := books.ParseStatus(newStatus)
				if err != nil {
					return err
				}
				changes.Status = &status
			}

			library, err := app.Library(ctx)
			if err != nil {
				return err
			}

			updated, err := library.Update(ctx, args[0], matchAuthor, changes)
			if err != nil {
				return err
			}

			app.Logger().Info().Str("title", args[0]).Int("updated", updated).
				Msg("books updated")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated %d book(s)\n", updated)
			return err
		},
	}

	cmd.Flags().StringVarP(&matchAuthor, "author", "a", "", "narrow the match to this author")
	cmd.Flags().StringVar(&newTitle, "new-title", "", "new title")
	cmd.Flags().StringVar(&newAuthor, "new-author", "", "new author")
	cmd.Flags().StringVar(&newGenre, "new-genre", "", "new genre")
	cmd.Flags().IntVar(&newYear, "new-year", 0, "new publication year")
	cmd.Flags().StringVar(&newStatus, "new-status", "", "new status: unread, reading, read")

	return cmd
}
