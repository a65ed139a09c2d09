package models

import "fmt"

// Tier is a brewery upgrade level (0 = T1)
type Tier int

// String returns the display name of the tier ("T1", "T2", ...)
func (t Tier) String() string {
	return fmt.Sprintf("T%d", int(t)+1)
}

// Yield returns the daily mead production of the tier.
// Tiers above the production table produce at the last listed rate.
func (t Tier) Yield() float64 {
	if int(t) >= len(TierYields) {
		return TierYields[len(TierYields)-1]
	}
	if t < 0 {
		return TierYields[0]
	}
	return TierYields[t]
}

// bucket returns the per-tier counter index the tier is reported under
func (t Tier) bucket() int {
	return min(int(t), NumTierBuckets-1)
}

// Brewery produces mead every day and earns reputation once its
// fermentation period is over.
type Brewery struct {
	price int

	mead                 float64 // unclaimed mead
	daysSinceClaim       int     // days since buy or last claim
	daysPastFermentation int     // cumulative, drives tier-ups
	tier                 Tier
	age                  int
	dailyYield           float64
}

// NewBrewery creates a tier 0 brewery. A negative price is replaced by
// DefaultBreweryPrice; the brewery is still usable and the returned error
// (wrapping ErrInvalidPrice) is only a warning.
func NewBrewery(price int) (*Brewery, error) {
	var warn error
	if price < 0 {
		warn = fmt.Errorf("%w: %d, default price of %d MEAD was set", ErrInvalidPrice, price, DefaultBreweryPrice)
		price = DefaultBreweryPrice
	}

	return &Brewery{
		price:      price,
		tier:       0,
		dailyYield: Tier(0).Yield(),
	}, warn
}

// DailyTick runs the brewery for one day and returns the mead produced and
// the reputation earned that day.
func (b *Brewery) DailyTick() (float64, int) {
	b.daysSinceClaim++
	b.age++

	reward := 0
	if b.daysSinceClaim > FermentationPeriodDays {
		b.daysPastFermentation++
		reward = ReputationPerDay
	}

	if b.tier < MaxTier && b.daysPastFermentation > TierUpThresholds[b.tier] {
		b.tier++
		b.dailyYield = b.tier.Yield()
	}

	b.mead += b.dailyYield

	return b.dailyYield, reward
}

// Claim empties the brewery and restarts its fermentation period.
// It returns the claimed mead before and after the given tax.
func (b *Brewery) Claim(taxRate float64) (gross, net float64) {
	gross = b.mead
	net = gross * (1 - taxRate)
	b.mead = 0
	b.daysSinceClaim = 0
	return gross, net
}

// Price returns the purchase price in MEAD
func (b *Brewery) Price() int { return b.price }

// AccumulatedYield returns the mead waiting to be claimed
func (b *Brewery) AccumulatedYield() float64 { return b.mead }

// DaysSinceClaim returns the days since the brewery was bought or last claimed
func (b *Brewery) DaysSinceClaim() int { return b.daysSinceClaim }

// DaysPastFermentation returns the cumulative days spent past fermentation
func (b *Brewery) DaysPastFermentation() int { return b.daysPastFermentation }

// Tier returns the current tier
func (b *Brewery) Tier() Tier { return b.tier }

// Age returns the total days since the brewery was bought
func (b *Brewery) Age() int { return b.age }

// DailyYield returns the current daily production
func (b *Brewery) DailyYield() float64 { return b.dailyYield }

// Fermenting reports whether the brewery is still inside its fermentation period
func (b *Brewery) Fermenting() bool {
	return b.daysSinceClaim <= FermentationPeriodDays
}
