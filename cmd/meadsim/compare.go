package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/meadsim/internal/logging"
	"github.com/napolitain/meadsim/internal/metrics"
	"github.com/napolitain/meadsim/internal/simulation"
)

func newCompareCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy on the same starting player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts)
		},
	}

	addPlayerFlags(cmd, opts)

	return cmd
}

func runCompare(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := logging.Init(cfg.Logging, cmd.ErrOrStderr())
	infoColor := color.New(color.FgYellow)
	successColor := color.New(color.FgGreen, color.Bold)

	setup := playerSetup(cfg, logger)

	runOpts := []simulation.RunOption{simulation.WithLogger(logger)}
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		runOpts = append(runOpts, simulation.WithRecorder(collector))
	}

	if !opts.quiet {
		printBanner(out)
		infoColor.Fprintf(out, "🔄 Comparing %d strategies over %d days...\n\n",
			len(simulation.AllStrategies()), cfg.Simulation.Days)
	}

	results, best, err := simulation.CompareStrategies(setup, cfg.Simulation.Days, cfg.Simulation.UnitPrice, runOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "📊 Strategy Comparison:")
	table := tablewriter.NewTable(out,
		tablewriter.WithHeader([]string{"", "Strategy", "Breweries", "T1/T2/T3", "BR", "Rank", "Unclaimed", "Wallet", "Net worth", "Break-even"}),
	)
	for _, r := range results {
		f := r.Result.Final
		marker := ""
		if r.Strategy == best {
			marker = "✓"
		}
		breakEven := "never"
		if r.BrokeEven {
			breakEven = fmt.Sprintf("day %d", r.BreakEven)
		}
		row := []string{
			marker,
			string(r.Strategy),
			fmt.Sprintf("%d", f.Breweries),
			formatTiers(f.BreweriesPerTier),
			fmt.Sprintf("%d", f.Reputation),
			f.RankName,
			fmt.Sprintf("%.2f", f.UnclaimedYield),
			fmt.Sprintf("%.2f", f.WalletBalance),
			fmt.Sprintf("%.2f", f.NetWorth),
			breakEven,
		}
		_ = table.Append(row)
	}
	_ = table.Render()

	successColor.Fprintf(out, "\n✓ Best strategy: %s\n", best)

	if collector != nil {
		if err := collector.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		successColor.Fprintf(out, "✓ Metrics written to %s\n", cfg.Metrics.Textfile)
	}

	return nil
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Strategy", "Aliases", "Description"}),
			)
			for _, s := range simulation.AllStrategies() {
				_ = table.Append([]string{string(s), strings.Join(s.Aliases(), ", "), s.Description()})
			}
			_ = table.Render()
		},
	}
}
