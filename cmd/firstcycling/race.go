package main

import (
	"fmt"

	"github.com/pfrederiksen/firstcycling/internal/classification"
	"github.com/pfrederiksen/firstcycling/internal/cli"
	"github.com/pfrederiksen/firstcycling/internal/race"
	"github.com/spf13/cobra"
)

// parseClassificationFlag maps a --classification value to its code.
func parseClassificationFlag(name string) (classification.Classification, error) {
	if name == "" {
		return classification.None, nil
	}
	cl, ok := classification.Parse(name)
	if !ok {
		return classification.None, fmt.Errorf("unknown classification: %s (gc, youth, points, mountain, team)", name)
	}
	return cl, nil
}

// raceCommand builds a command that resolves its race argument and runs
// op against the Race facade.
func raceCommand(use, short string, op func(app *app, r race.Race, cmd *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.saveCache()

			id, err := app.resolveRace(args[0], 0)
			if err != nil {
				return err
			}
			return op(app, race.New(app.fc, id), cmd)
		},
	}
}

// NewOverviewCmd creates the overview command.
func NewOverviewCmd() *cobra.Command {
	var flagClassification string

	cmd := raceCommand("overview <race>", "Show the race overview page",
		func(app *app, r race.Race, cmd *cobra.Command) error {
			cl, err := parseClassificationFlag(flagClassification)
			if err != nil {
				return err
			}
			page, err := r.Overview(cl)
			if err != nil {
				return err
			}
			return cli.WritePage(cmd.OutOrStdout(), page, app.format)
		})

	cmd.Flags().StringVar(&flagClassification, "classification", "", "Classification: gc, youth, points, mountain, team")
	return cmd
}

// NewVictoryTableCmd creates the victory-table command.
func NewVictoryTableCmd() *cobra.Command {
	return raceCommand("victory-table <race>", "Show the race's all-time victory table",
		func(app *app, r race.Race, cmd *cobra.Command) error {
			vt, err := r.VictoryTable()
			if err != nil {
				return err
			}
			return cli.WriteVictoryTable(cmd.OutOrStdout(), vt, app.format)
		})
}

// NewYearByYearCmd creates the year-by-year command.
func NewYearByYearCmd() *cobra.Command {
	var flagClassification string

	cmd := raceCommand("year-by-year <race>", "Show year-by-year race statistics",
		func(app *app, r race.Race, cmd *cobra.Command) error {
			cl, err := parseClassificationFlag(flagClassification)
			if err != nil {
				return err
			}
			page, err := r.YearByYear(cl)
			if err != nil {
				return err
			}
			return cli.WritePage(cmd.OutOrStdout(), page, app.format)
		})

	cmd.Flags().StringVar(&flagClassification, "classification", "", "Classification: gc, youth, points, mountain, team")
	return cmd
}

// NewYoungestOldestCmd creates the youngest-oldest command.
func NewYoungestOldestCmd() *cobra.Command {
	return raceCommand("youngest-oldest <race>", "Show the race's youngest and oldest winners",
		func(app *app, r race.Race, cmd *cobra.Command) error {
			page, err := r.YoungestOldestWinners()
			if err != nil {
				return err
			}
			return cli.WritePage(cmd.OutOrStdout(), page, app.format)
		})
}

// NewStageVictoriesCmd creates the stage-victories command.
func NewStageVictoriesCmd() *cobra.Command {
	return raceCommand("stage-victories <race>", "Show the race's all-time stage victories",
		func(app *app, r race.Race, cmd *cobra.Command) error {
			sv, err := r.StageVictories()
			if err != nil {
				return err
			}
			return cli.WriteStageVictories(cmd.OutOrStdout(), sv, app.format)
		})
}
