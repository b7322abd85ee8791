package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfctl/shelf/cmd/shelf/cmd/add"
	"github.com/shelfctl/shelf/cmd/shelf/cmd/chart"
	"github.com/shelfctl/shelf/cmd/shelf/cmd/importer"
	"github.com/shelfctl/shelf/cmd/shelf/cmd/list"
	"github.com/shelfctl/shelf/cmd/shelf/cmd/remove"
	"github.com/shelfctl/shelf/cmd/shelf/cmd/search"
	"github.com/shelfctl/shelf/cmd/shelf/cmd/update"
)

// NewAddCommand creates the add command with app dependencies.
func (a *App) NewAddCommand() *cobra.Command {
	return add.NewCommand(a)
}

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewSearchCommand creates the search command with app dependencies.
func (a *App) NewSearchCommand() *cobra.Command {
	return search.NewCommand(a)
}

// NewUpdateCommand creates the update command with app dependencies.
func (a *App) NewUpdateCommand() *cobra.Command {
	return update.NewCommand(a)
}

// NewRemoveCommand creates the remove command with app dependencies.
func (a *App) NewRemoveCommand() *cobra.Command {
	return remove.NewCommand(a)
}

// NewChartCommand creates the chart command with app dependencies.
func (a *App) NewChartCommand() *cobra.Command {
	return chart.NewCommand(a)
}

// NewImportCommand creates the import command with app dependencies.
func (a *App) NewImportCommand() *cobra.Command {
	return importer.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "shelf %s (commit %s, built %s)\n",
				a.version, a.commit, a.date)
			return err
		},
	}
}
