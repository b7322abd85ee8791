// Package remove implements the remove command.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/internal/cmd/application"
)

// NewCommand creates the remove command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var matchAuthor string

	cmd := &cobra.Command{
		Use:     "remove TITLE",
		GroupID: "collection",
		Short:   "Remove books matching a title",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		Long: `Remove deletes every book whose title equals TITLE (case-insensitive).
When several books share a title, --author narrows the match; without it,
all of them are removed. If nothing matches, the backing file is left
untouched.`,
		Example: `  shelf remove "Emma"
  shelf remove "Dune" --author "Frank Herbert"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			library, err := app.Library(ctx)
			if err != nil {
				return err
			}

			removed, err := library.Remove(ctx, args[0], matchAuthor)
			if err != nil {
				return err
			}

			app.Logger().Info().Str("title", args[0]).Int("removed", removed).
				Msg("books removed")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d book(s)\n", removed)
			return err
		},
	}

	cmd.Flags().StringVarP(&matchAuthor, "author", "a", "", "narrow the match to this author")

	return cmd
}
