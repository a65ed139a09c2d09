package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/napolitain/meadsim/internal/config"
	"github.com/napolitain/meadsim/internal/loader"
	"github.com/napolitain/meadsim/internal/models"
	"github.com/napolitain/meadsim/internal/simulation"
)

type options struct {
	configFile  string
	dataDir     string
	quiet       bool
	logLevel    string
	logFormat   string
	metricsFile string

	breweries  int
	price      int
	totalPrice int
	reputation int
	wallet     float64
	name       string
	seed       uint64
	days       int
	unitPrice  int
	strategy   string
	every      int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "meadsim",
		Short: "Meadery idle-game economy simulator",
		Long: `Simulates a meadery player day by day. Breweries ferment, climb tiers
and produce mead that is held, claimed daily or compounded into new breweries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "Path to YAML config file")
	pf.StringVarP(&opts.dataDir, "data", "d", "", "Path to data directory")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "Minimal output")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newCompareCmd(opts),
		newStrategiesCmd(),
	)

	return rootCmd
}

func addPlayerFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.IntVarP(&opts.breweries, "breweries", "b", 0, "Initial breweries")
	f.IntVarP(&opts.price, "price", "p", 0, "Price of each initial brewery")
	f.IntVar(&opts.totalPrice, "total-price", 0, "Total price of the initial breweries")
	f.IntVarP(&opts.reputation, "reputation", "r", 0, "Initial reputation")
	f.Float64VarP(&opts.wallet, "wallet", "w", 0, "Initial wallet balance")
	f.StringVar(&opts.name, "name", "", "Player name (drawn from the name pool when empty)")
	f.Uint64Var(&opts.seed, "seed", 0, "Name pool seed")
	f.IntVarP(&opts.days, "days", "n", 0, "Days to simulate")
	f.IntVarP(&opts.unitPrice, "unit-price", "u", 0, "Price of a compounded brewery")
	f.StringVar(&opts.metricsFile, "metrics", "", "Write Prometheus metrics to this file")
}

// loadConfig reads the config sources, then applies the flags that were set
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Dir = opts.dataDir
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = opts.logFormat
	}
	if flags.Changed("breweries") {
		cfg.Simulation.Breweries = opts.breweries
	}
	if flags.Changed("price") {
		cfg.Simulation.PricePerBrewery = opts.price
	}
	if flags.Changed("total-price") {
		cfg.Simulation.TotalPrice = opts.totalPrice
	}
	if flags.Changed("reputation") {
		cfg.Simulation.Reputation = opts.reputation
	}
	if flags.Changed("wallet") {
		cfg.Simulation.Wallet = opts.wallet
	}
	if flags.Changed("name") {
		cfg.Simulation.Name = opts.name
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = opts.seed
	}
	if flags.Changed("days") {
		cfg.Simulation.Days = opts.days
	}
	if flags.Changed("unit-price") {
		cfg.Simulation.UnitPrice = opts.unitPrice
	}
	if flags.Changed("strategy") {
		cfg.Simulation.Strategy = opts.strategy
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = opts.metricsFile
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// namePool loads the player names, or returns nil when none are available
func namePool(cfg *config.Config, logger *slog.Logger) *models.NamePool {
	names, err := loader.LoadPlayerNames(cfg.Data.Dir)
	if err != nil {
		logger.Warn("player names unavailable, generating one", "error", err)
		return nil
	}
	return models.NewNamePool(names, cfg.Simulation.Seed)
}

// playerSetup resolves the starting player from the config
func playerSetup(cfg *config.Config, logger *slog.Logger) simulation.PlayerSetup {
	s := cfg.Simulation
	setup := simulation.PlayerSetup{
		Name:            s.Name,
		Breweries:       s.Breweries,
		PricePerBrewery: s.EffectivePrice(),
		Reputation:      s.Reputation,
		Wallet:          s.Wallet,
	}

	if setup.Name == "" {
		if pool := namePool(cfg, logger); pool != nil {
			if name, err := pool.Take(); err == nil {
				setup.Name = name
			}
		}
	}
	return setup
}
