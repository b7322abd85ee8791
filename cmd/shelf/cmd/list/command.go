// Package list implements the list command.
package list

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/internal/cmd/application"
	"github.com/shelfctl/shelf/internal/cmd/output"
)

// NewCommand creates the list command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var genre string

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "collection",
		Short:   "List books in the collection",
		Args:    cobra.NoArgs,
		Long: `List displays the collection in file order, optionally restricted to a
single genre. The genre filter is an exact, case-insensitive match.`,
		Example: `  shelf list
  shelf list --genre scifi
  shelf list -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			library, err := app.Library(ctx)
			if err != nil {
				return err
			}

			shown := library.Books()
			if genre != "" {
				filtered := shown[:0]
				for _, b := range shown {
					if strings.EqualFold(b.Genre, genre) {
						filtered = append(filtered, b)
					}
				}
				shown = filtered
			}

			if len(shown) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No books found.")
				return err
			}

			formatter := output.NewFormatter(app.Format())
			if app.Format() == output.FormatTable || app.Format() == "" {
				return formatter.Format(cmd.OutOrStdout(), output.BooksToTableData(shown))
			}
			return formatter.Format(cmd.OutOrStdout(), shown)
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "only show books in this genre")

	// keep the flag completion in sync with whatever is already on the shelf
	_ = cmd.RegisterFlagCompletionFunc("genre", func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		library, err := app.Library(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		seen := map[string]bool{}
		var genres []string
		for _, b := range library.Books() {
			g := strings.ToLower(b.Genre)
			if g != "" && !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
		return genres, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
