// Package chart implements the chart command.
package chart

import (
	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/internal/cmd/application"
	"github.com/shelfctl/shelf/internal/cmd/chart"
)

// NewCommand creates the chart command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "chart",
		GroupID: "collection",
		Short:   "Chart books per genre",
		Args:    cobra.NoArgs,
		Long: `Chart draws a horizontal bar chart of how many books each genre holds,
largest genre first. Books without a genre are grouped under
"uncategorized".`,
		Example: `  shelf chart
  shelf chart --no-color`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			library, err := app.Library(ctx)
			if err != nil {
				return err
			}

			return chart.Genres(cmd.OutOrStdout(), library.Books(), app.NoColor())
		},
	}
}
