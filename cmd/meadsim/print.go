package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/meadsim/internal/models"
	"github.com/napolitain/meadsim/internal/simulation"
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("214")).
	Padding(0, 1)

func printBanner(w io.Writer) {
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Fprintln(w, "\n╭───────────────────────────╮")
	titleColor.Fprintln(w, "│  Meadery Simulator        │")
	titleColor.Fprintln(w, "│  Brewery Idle Economy     │")
	titleColor.Fprintln(w, "╰───────────────────────────╯")
	fmt.Fprintln(w)
}

// printHistory prints every n-th day of the run plus its last day
func printHistory(w io.Writer, rows []models.Snapshot, every int) {
	if len(rows) == 0 {
		return
	}

	fmt.Fprintln(w, "📜 History:")
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Day", "T1", "T2", "T3", "Unclaimed", "Wallet"}),
	)
	for i, s := range rows {
		last := i == len(rows)-1
		if every > 1 && s.Day%every != 0 && !last {
			continue
		}
		row := []string{
			fmt.Sprintf("%d", s.Day),
			fmt.Sprintf("%d", s.BreweriesPerTier[0]),
			fmt.Sprintf("%d", s.BreweriesPerTier[1]),
			fmt.Sprintf("%d", s.BreweriesPerTier[2]),
			fmt.Sprintf("%.2f", s.UnclaimedYield),
			fmt.Sprintf("%.2f", s.WalletBalance),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
	fmt.Fprintln(w)
}

func printRunTotals(w io.Writer, res *simulation.Result) {
	infoColor := color.New(color.FgCyan)

	infoColor.Fprintf(w, "⚗️  %s run %s (days %d to %d):\n", res.Strategy, shortID(res.RunID), res.StartDay, res.EndDay)
	fmt.Fprintf(w, "   • Compounds: %d (%d breweries bought)\n", res.Compounds, res.BreweriesBought)
	fmt.Fprintf(w, "   • Settlements: %d\n", res.Settlements)
	fmt.Fprintf(w, "   • Net worth: %.2f\n\n", res.Final.NetWorth)
}

func printPanel(w io.Writer, p *models.Player) {
	body := p.Name() + "\n" + strings.TrimRight(p.String(), "\n")
	fmt.Fprintln(w, panelStyle.Render(body))
}

func printBreakEven(w io.Writer, p *models.Player) {
	if day, ok := simulation.BreakEvenDay(p); ok {
		color.New(color.FgGreen).Fprintf(w, "💰 Break-even: day %d (%d mead invested)\n", day, p.Invested())
		return
	}
	color.New(color.FgRed).Fprintf(w, "💰 Break-even: not reached (%d mead invested, %.2f in wallet)\n",
		p.Invested(), p.WalletBalance())
}

func formatTiers(perTier [models.NumTierBuckets]int) string {
	parts := make([]string, len(perTier))
	for i, n := range perTier {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, "/")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
