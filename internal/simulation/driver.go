package simulation

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/napolitain/meadsim/internal/models"
)

// Recorder receives run events. internal/metrics implements it.
type Recorder interface {
	RecordDay(runID, strategy string, p *models.Player)
	RecordCompound(runID, strategy string, p *models.Player, res models.CompoundResult)
	RecordSettlement(runID, strategy string, p *models.Player, res models.SettleResult)
}

type nopRecorder struct{}

func (nopRecorder) RecordDay(string, string, *models.Player) {}
func (nopRecorder) RecordCompound(string, string, *models.Player, models.CompoundResult) {}
func (nopRecorder) RecordSettlement(string, string, *models.Player, models.SettleResult) {}

// RunOption configures a run
type RunOption func(*runOptions)

type runOptions struct {
	recorder Recorder
	logger   *slog.Logger
}

// WithRecorder sends run events to r
func WithRecorder(r Recorder) RunOption {
	return func(o *runOptions) { o.recorder = r }
}

// WithLogger sets the logger used for run progress
func WithLogger(logger *slog.Logger) RunOption {
	return func(o *runOptions) { o.logger = logger }
}

func buildOptions(opts []RunOption) runOptions {
	o := runOptions{recorder: nopRecorder{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Summary is the headline state of a player
type Summary struct {
	Name             string
	Day              int
	Breweries        int
	BreweriesPerTier [models.NumTierBuckets]int
	Reputation       int
	RankName         string
	ClaimTax         float64
	UnclaimedYield   float64
	WalletBalance    float64
	// NetWorth values unclaimed mead at the current claim tax
	NetWorth float64
}

// Summarize captures the player's current state
func Summarize(p *models.Player) Summary {
	return Summary{
		Name:             p.Name(),
		Day:              p.Day(),
		Breweries:        p.BreweryCount(),
		BreweriesPerTier: p.BreweriesPerTier(),
		Reputation:       p.Reputation(),
		RankName:         p.RankName(),
		ClaimTax:         p.ClaimTax(),
		UnclaimedYield:   p.UnclaimedYield(),
		WalletBalance:    p.WalletBalance(),
		NetWorth:         p.WalletBalance() + p.UnclaimedYield()*(1-p.ClaimTax()),
	}
}

// Result is the outcome of one run
type Result struct {
	RunID    string
	Strategy Strategy
	StartDay int
	EndDay   int

	Compounds       int // compounds that went through
	BreweriesBought int
	Settlements     int

	// Rows holds the history of the days simulated by this run
	Rows  []models.Snapshot
	Final Summary
}

// Run simulates days on p with the given strategy. The strategy and day
// count are checked before p is touched.
func Run(p *models.Player, days, unitPrice int, strategy string, opts ...RunOption) (*Result, error) {
	s, err := ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}
	if s == CompoundWhenPossible && unitPrice <= 0 {
		return nil, fmt.Errorf("%w: compound unit price %d", models.ErrInvalidPrice, unitPrice)
	}

	o := buildOptions(opts)
	res := &Result{
		RunID:    uuid.New().String(),
		Strategy: s,
		StartDay: p.Day(),
	}
	logger := o.logger.With("run_id", res.RunID, "strategy", string(s), "player", p.Name())
	logger.Debug("run started", "days", days, "unit_price", unitPrice)

	for i := 0; i < days; i++ {
		p.DailyTick()

		switch s {
		case CompoundWhenPossible:
			if p.UnclaimedYield() >= float64(unitPrice) {
				c := p.Compound(unitPrice)
				if c.Compounded {
					res.Compounds++
					res.BreweriesBought += c.Bought
					o.recorder.RecordCompound(res.RunID, string(s), p, c)
				}
				if c.Settle.Settled {
					res.Settlements++
					o.recorder.RecordSettlement(res.RunID, string(s), p, c.Settle)
				}
			}
		case ClaimDaily:
			settle := p.ClaimAllAndSettle()
			if settle.Settled {
				res.Settlements++
				o.recorder.RecordSettlement(res.RunID, string(s), p, settle)
			}
		}

		o.recorder.RecordDay(res.RunID, string(s), p)
	}

	res.EndDay = p.Day()
	res.Rows = p.History().Since(res.StartDay + 1)
	res.Final = Summarize(p)

	logger.Info("run finished",
		"day", res.EndDay,
		"breweries", res.Final.Breweries,
		"wallet", res.Final.WalletBalance,
		"net_worth", res.Final.NetWorth,
	)

	return res, nil
}

// BreakEvenDay returns the first day the wallet covered what was paid for
// the breweries
func BreakEvenDay(p *models.Player) (int, bool) {
	h := p.History()
	invested := float64(p.Invested())
	for i := 0; i < h.Len(); i++ {
		s := h.At(i)
		if s.WalletBalance >= invested {
			return s.Day, true
		}
	}
	return 0, false
}
