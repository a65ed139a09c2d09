package models

// Brewery mechanics constants
const (
	// DefaultBreweryPrice is the price used when a brewery is bought with an invalid price
	DefaultBreweryPrice = 100

	// FermentationPeriodDays is the number of days after a buy or claim during which
	// a brewery earns no brewer rank and makes no progress towards a tier-up
	FermentationPeriodDays = 14

	// ReputationPerDay is the brewer rank earned per brewery per day after fermentation
	ReputationPerDay = 20

	// PurchaseReputationBonus is the brewer rank granted for each brewery bought
	PurchaseReputationBonus = 10

	// MaxTier is the terminal brewery tier
	MaxTier Tier = 3
)

// TierUpThresholds holds the cumulative days past fermentation a brewery needs
// before leaving the tier used as index (T1->T2, T2->T3, T3->T4).
// The last threshold is unreachable in practice.
var TierUpThresholds = [...]int{14, 42, 99999}

// TierYields holds the daily mead production per tier
var TierYields = [...]float64{2, 3, 4}

// NumTierBuckets is the number of per-tier counters reported by a player
const NumTierBuckets = len(TierYields)
