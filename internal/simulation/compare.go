package simulation

import (
	"log/slog"

	"github.com/napolitain/meadsim/internal/models"
)

// PlayerSetup describes a starting player
type PlayerSetup struct {
	Name            string
	Breweries       int
	PricePerBrewery int
	Reputation      int
	Wallet          float64
	UnclaimedYield  float64
}

// NewPlayer builds a fresh player from the setup
func (s PlayerSetup) NewPlayer(logger *slog.Logger) *models.Player {
	opts := []models.PlayerOption{models.WithLogger(logger)}
	if s.Name != "" {
		opts = append(opts, models.WithName(s.Name))
	}
	if s.UnclaimedYield > 0 {
		opts = append(opts, models.WithUnclaimedYield(s.UnclaimedYield))
	}
	return models.NewPlayer(s.Breweries, s.PricePerBrewery, s.Reputation, s.Wallet, opts...)
}

// StrategyResult pairs a strategy with its run
type StrategyResult struct {
	Strategy  Strategy
	Result    *Result
	BreakEven int
	BrokeEven bool
}

// CompareStrategies runs every strategy on its own fresh player and returns
// all results plus the strategy with the highest net worth. Ties go to the
// earlier strategy in AllStrategies order.
func CompareStrategies(setup PlayerSetup, days, unitPrice int, opts ...RunOption) ([]StrategyResult, Strategy, error) {
	o := buildOptions(opts)

	// one name for every run so results line up
	if setup.Name == "" {
		setup.Name = models.GenerateName()
	}

	var results []StrategyResult
	var best Strategy
	bestWorth := 0.0

	for _, s := range AllStrategies() {
		p := setup.NewPlayer(o.logger)
		res, err := Run(p, days, unitPrice, string(s), opts...)
		if err != nil {
			return nil, "", err
		}

		day, ok := BreakEvenDay(p)
		results = append(results, StrategyResult{
			Strategy:  s,
			Result:    res,
			BreakEven: day,
			BrokeEven: ok,
		})

		if best == "" || res.Final.NetWorth > bestWorth {
			best = s
			bestWorth = res.Final.NetWorth
		}
	}

	return results, best, nil
}
