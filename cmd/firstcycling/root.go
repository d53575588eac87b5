package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pfrederiksen/firstcycling/internal/cli"
	"github.com/pfrederiksen/firstcycling/internal/client"
	"github.com/pfrederiksen/firstcycling/internal/config"
	"github.com/pfrederiksen/firstcycling/internal/logger"
	"github.com/pfrederiksen/firstcycling/internal/race"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the firstcycling CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "firstcycling",
		Short: "Query race data from firstcycling.com",
		Long: `A client for firstcycling.com race pages.

Races are addressed by their numeric site id, or by free-text name which
is resolved through fuzzy search. Edition operations additionally take a
year.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to YAML config file")
	cmd.PersistentFlags().String("format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewOverviewCmd())
	cmd.AddCommand(NewVictoryTableCmd())
	cmd.AddCommand(NewYearByYearCmd())
	cmd.AddCommand(NewYoungestOldestCmd())
	cmd.AddCommand(NewStageVictoriesCmd())
	cmd.AddCommand(NewResultsCmd())
	cmd.AddCommand(NewStartlistCmd())
	cmd.AddCommand(NewStageProfilesCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles the resolved configuration and client for one command run.
type app struct {
	cfg    *config.Config
	fc     *client.Client
	cache  *client.PageCache
	format cli.OutputFormat
}

// newApp resolves flags, config file and client for a command.
func newApp(cmd *cobra.Command) (*app, error) {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := cli.ParseFormat(formatFlag)
	if err != nil {
		return nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	configFlag, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path := config.Find(configFlag); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
		cfg = loaded
	} else if configFlag != "" {
		return nil, fmt.Errorf("loading config %s: %w", configFlag, config.ErrConfigNotFound)
	}

	fc, cache := cfg.NewClient()
	return &app{cfg: cfg, fc: fc, cache: cache, format: format}, nil
}

// saveCache persists the page cache; a failed save only warns.
func (a *app) saveCache() {
	if a.cache == nil || a.cfg.CacheDir == "" {
		return
	}
	if err := a.cache.Save(a.cfg.CacheDir); err != nil {
		logger.Warn("failed to save page cache", logger.Fields{"dir": a.cfg.CacheDir})
	}
}

var errRaceNotFound = errors.New("no matching race found")

// resolveRace turns a command argument into a race id: a number is used
// as-is, anything else goes through fuzzy search for the given year.
func (a *app) resolveRace(arg string, year int) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		return id, nil
	}

	matches := race.SearchThreshold(a.fc, arg, year, "", a.cfg.MatchThreshold)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w for %q", errRaceNotFound, arg)
	}
	logger.Debug("resolved race name", logger.Fields{"query": arg, "id": matches[0].ID})
	return matches[0].ID, nil
}
