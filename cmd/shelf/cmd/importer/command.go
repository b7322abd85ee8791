// Package importer implements the import command.
package importer

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/internal/cmd/application"
	"github.com/shelfctl/shelf/internal/cmd/output"
	"github.com/shelfctl/shelf/pkg/constants"
)

// NewCommand creates the import command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		limit int
		dry   bool
	)

	cmd := &cobra.Command{
		Use:     "import QUERY...",
		GroupID: "catalog",
		Short:   "Import books from the Google Books catalog",
		Args:    cobra.MinimumNArgs(1),
		Long: `Import looks QUERY up in the Google Books catalog and adds each returned
candidate to the collection, exactly as if you had run "add" for it.

The lookup runs with a timeout; a slow or unreachable catalog is reported
as an import failure, it never hangs the command. A query with no results
adds nothing and leaves the backing file untouched.`,
		Example: `  shelf import dune
  shelf import frank herbert --limit 5
  shelf import "le guin" --dry`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")

			candidates, err := app.Catalog().Search(ctx, query, limit)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				app.Logger().Warn().Str("query", query).Msg("catalog returned no results")
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No results for %q; nothing imported.\n", query)
				return err
			}

			if dry {
				formatter := output.NewFormatter(app.Format())
				if app.Format() == output.FormatTable || app.Format() == "" {
					return formatter.Format(cmd.OutOrStdout(), output.BooksToTableData(candidates))
				}
				return formatter.Format(cmd.OutOrStdout(), candidates)
			}

			library, err := app.Library(ctx)
			if err != nil {
				return err
			}

			added := 0
			for _, candidate := range candidates {
				if err := library.Add(ctx, candidate); err != nil {
					app.Logger().Warn().Err(err).Str("title", candidate.Title).
						Msg("skipping candidate")
					continue
				}
				added++
			}

			app.Logger().Info().Str("query", query).Int("added", added).
				Msg("catalog import complete")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d candidate(s)\n",
				added, len(candidates))
			return err
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", constants.DefaultImportLimit, "maximum candidates to request")
	cmd.Flags().BoolVar(&dry, "dry", false, "show candidates without adding them")

	return cmd
}
