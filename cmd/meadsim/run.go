package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/meadsim/internal/config"
	"github.com/napolitain/meadsim/internal/logging"
	"github.com/napolitain/meadsim/internal/metrics"
	"github.com/napolitain/meadsim/internal/models"
	"github.com/napolitain/meadsim/internal/simulation"
)

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a player with one strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}

	addPlayerFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Strategy: hold, compound or claim-daily")
	cmd.Flags().IntVarP(&opts.every, "every", "e", 10, "Print a history row every N days")

	return cmd
}

func runSimulation(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := logging.Init(cfg.Logging, cmd.ErrOrStderr())
	infoColor := color.New(color.FgYellow)
	successColor := color.New(color.FgGreen, color.Bold)

	// fail on a bad strategy before loading anything else
	strategy, err := simulation.ParseStrategy(cfg.Simulation.Strategy)
	if err != nil {
		return err
	}

	p := newPlayer(cfg, logger)

	runOpts := []simulation.RunOption{simulation.WithLogger(logger)}
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		runOpts = append(runOpts, simulation.WithRecorder(collector))
	}

	if !opts.quiet {
		printBanner(out)
		infoColor.Fprintf(out, "🍯 %s starts with %d breweries (%d mead invested)\n",
			p.Name(), p.BreweryCount(), p.Invested())
		infoColor.Fprintf(out, "🔄 Simulating %d days with strategy %q...\n\n", cfg.Simulation.Days, strategy)
	}

	res, err := simulation.Run(p, cfg.Simulation.Days, cfg.Simulation.UnitPrice, string(strategy), runOpts...)
	if err != nil {
		return err
	}

	if !opts.quiet {
		printHistory(out, res.Rows, opts.every)
		printRunTotals(out, res)
	}

	printPanel(out, p)
	printBreakEven(out, p)

	if collector != nil {
		if err := collector.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		successColor.Fprintf(out, "\n✓ Metrics written to %s\n", cfg.Metrics.Textfile)
	}

	return nil
}

// newPlayer builds the configured player, drawing its name from the pool
// when none is set
func newPlayer(cfg *config.Config, logger *slog.Logger) *models.Player {
	s := cfg.Simulation

	playerOpts := []models.PlayerOption{models.WithLogger(logger)}
	if s.Name != "" {
		playerOpts = append(playerOpts, models.WithName(s.Name))
	} else if pool := namePool(cfg, logger); pool != nil {
		playerOpts = append(playerOpts, models.WithNamePool(pool))
	}

	return models.NewPlayer(s.Breweries, s.EffectivePrice(), s.Reputation, s.Wallet, playerOpts...)
}
