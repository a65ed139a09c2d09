package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/napolitain/meadsim/internal/models"
)

const (
	// Namespace for all metrics
	namespace = "meadsim"
	// Subsystem for simulation run metrics
	subsystem = "run"
)

var runLabels = []string{"run_id", "strategy", "player"}

// Collector records simulation runs into its own Prometheus registry.
// It satisfies simulation.Recorder.
type Collector struct {
	registry *prometheus.Registry

	// Player state, updated every simulated day
	day           *prometheus.GaugeVec
	wallet        *prometheus.GaugeVec
	unclaimed     *prometheus.GaugeVec
	reputation    *prometheus.GaugeVec
	claimTax      *prometheus.GaugeVec
	breweries     *prometheus.GaugeVec
	breweriesTier *prometheus.GaugeVec

	// Events
	compoundsTotal       *prometheus.CounterVec
	breweriesBoughtTotal *prometheus.CounterVec
	settlementsTotal     *prometheus.CounterVec
	taxPaidTotal         *prometheus.CounterVec
	settlementAmount     *prometheus.HistogramVec
}

// NewCollector creates a collector with every metric registered
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		day: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "day",
				Help:      "Last simulated day",
			},
			runLabels,
		),

		wallet: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "wallet_balance",
				Help:      "Settled wallet balance",
			},
			runLabels,
		),

		unclaimed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "unclaimed_yield",
				Help:      "Mead produced but not yet claimed",
			},
			runLabels,
		),

		reputation: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reputation",
				Help:      "Player reputation",
			},
			runLabels,
		),

		claimTax: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "claim_tax_ratio",
				Help:      "Claim tax rate of the current rank",
			},
			runLabels,
		),

		breweries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "breweries",
				Help:      "Breweries owned",
			},
			runLabels,
		),

		breweriesTier: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "breweries_per_tier",
				Help:      "Breweries owned by tier",
			},
			append(append([]string{}, runLabels...), "tier"),
		),

		compoundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "compounds_total",
				Help:      "Compounds that bought at least one brewery",
			},
			runLabels,
		),

		breweriesBoughtTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "breweries_bought_total",
				Help:      "Breweries bought by compounding",
			},
			runLabels,
		),

		settlementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "settlements_total",
				Help:      "Claimed mead settlements into the wallet",
			},
			runLabels,
		),

		taxPaidTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tax_paid_total",
				Help:      "Mead lost to claim tax",
			},
			runLabels,
		),

		settlementAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "settlement_credited",
				Help:      "Mead credited to the wallet per settlement",
				Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
			},
			runLabels,
		),
	}

	c.registry.MustRegister(
		c.day,
		c.wallet,
		c.unclaimed,
		c.reputation,
		c.claimTax,
		c.breweries,
		c.breweriesTier,
		c.compoundsTotal,
		c.breweriesBoughtTotal,
		c.settlementsTotal,
		c.taxPaidTotal,
		c.settlementAmount,
	)

	return c
}

// Registry returns the registry holding the collector's metrics
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordDay records the player's state after a simulated day
func (c *Collector) RecordDay(runID, strategy string, p *models.Player) {
	labels := prometheus.Labels{"run_id": runID, "strategy": strategy, "player": p.Name()}

	c.day.With(labels).Set(float64(p.Day()))
	c.wallet.With(labels).Set(p.WalletBalance())
	c.unclaimed.With(labels).Set(p.UnclaimedYield())
	c.reputation.With(labels).Set(float64(p.Reputation()))
	c.claimTax.With(labels).Set(p.ClaimTax())
	c.breweries.With(labels).Set(float64(p.BreweryCount()))

	perTier := p.BreweriesPerTier()
	for tier, count := range perTier {
		c.breweriesTier.WithLabelValues(runID, strategy, p.Name(), models.Tier(tier).String()).Set(float64(count))
	}
}

// RecordCompound records a compound that went through
func (c *Collector) RecordCompound(runID, strategy string, p *models.Player, res models.CompoundResult) {
	if !res.Compounded {
		return
	}
	c.compoundsTotal.WithLabelValues(runID, strategy, p.Name()).Inc()
	c.breweriesBoughtTotal.WithLabelValues(runID, strategy, p.Name()).Add(float64(res.Bought))
}

// RecordSettlement records mead taxed into the wallet
func (c *Collector) RecordSettlement(runID, strategy string, p *models.Player, res models.SettleResult) {
	if !res.Settled {
		return
	}
	c.settlementsTotal.WithLabelValues(runID, strategy, p.Name()).Inc()
	c.taxPaidTotal.WithLabelValues(runID, strategy, p.Name()).Add(res.Tax)
	c.settlementAmount.WithLabelValues(runID, strategy, p.Name()).Observe(res.Credited)
}

// WriteTextfile writes every metric in the Prometheus text format, for the
// node exporter textfile collector
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
