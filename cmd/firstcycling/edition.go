package main

import (
	"github.com/pfrederiksen/firstcycling/internal/cli"
	"github.com/pfrederiksen/firstcycling/internal/race"
	"github.com/spf13/cobra"
)

// editionCommand builds a command that resolves its race argument plus a
// required --year flag and runs op against the Edition facade.
func editionCommand(use, short string, op func(app *app, e race.Edition, cmd *cobra.Command) error) *cobra.Command {
	var flagYear int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.saveCache()

			id, err := app.resolveRace(args[0], flagYear)
			if err != nil {
				return err
			}
			return op(app, race.NewEdition(app.fc, id, flagYear), cmd)
		},
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "Edition year (required)")
	cmd.MarkFlagRequired("year")

	return cmd
}

// NewResultsCmd creates the results command.
func NewResultsCmd() *cobra.Command {
	var (
		flagClassification string
		flagStage          int
	)

	cmd := editionCommand("results <race>", "Show results for a race edition",
		func(app *app, e race.Edition, cmd *cobra.Command) error {
			cl, err := parseClassificationFlag(flagClassification)
			if err != nil {
				return err
			}

			opts := race.ResultsOptions{Classification: cl}
			if cmd.Flags().Changed("stage") {
				stage := flagStage
				opts.Stage = &stage
			}

			res, err := e.Results(opts)
			if err != nil {
				return err
			}
			return cli.WriteResults(cmd.OutOrStdout(), res, app.format)
		})

	cmd.Flags().StringVar(&flagClassification, "classification", "", "Classification: gc, youth, points, mountain, team")
	cmd.Flags().IntVar(&flagStage, "stage", 0, "Stage number (0 for prologue)")

	return cmd
}

// NewStartlistCmd creates the startlist command.
func NewStartlistCmd() *cobra.Command {
	var flagExtended bool

	cmd := editionCommand("startlist <race>", "Show the startlist for a race edition",
		func(app *app, e race.Edition, cmd *cobra.Command) error {
			startlist := e.Startlist
			if flagExtended {
				startlist = e.StartlistExtended
			}
			sl, err := startlist()
			if err != nil {
				return err
			}
			return cli.WriteStartlist(cmd.OutOrStdout(), sl, app.format)
		})

	cmd.Flags().BoolVar(&flagExtended, "extended", false, "Show the extended startlist")

	return cmd
}

// NewStageProfilesCmd creates the stage-profiles command.
func NewStageProfilesCmd() *cobra.Command {
	return editionCommand("stage-profiles <race>", "Show stage profiles for a race edition",
		func(app *app, e race.Edition, cmd *cobra.Command) error {
			page, err := e.StageProfiles()
			if err != nil {
				return err
			}
			return cli.WritePage(cmd.OutOrStdout(), page, app.format)
		})
}
