package main

import (
	"github.com/pfrederiksen/firstcycling/internal/cli"
	"github.com/pfrederiksen/firstcycling/internal/race"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	var (
		flagYear     int
		flagCategory string
	)

	cmd := &cobra.Command{
		Use:   "search <race name>",
		Short: "Search for a race by name",
		Long: `Search firstcycling.com for a race by free-text name.

The search page is scanned for race links and the best fuzzy match above
the configured threshold is returned. The command never fails on fetch
errors; it reports an empty result instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.saveCache()

			matches := race.SearchThreshold(app.fc, args[0], flagYear, flagCategory, app.cfg.MatchThreshold)
			return cli.WriteMatches(cmd.OutOrStdout(), matches, app.format)
		},
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "Search year (default: current year)")
	cmd.Flags().StringVar(&flagCategory, "category", "1", "Category code: 1 WorldTour, 2 ProSeries")

	return cmd
}
