package models

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// compoundTolerance is the float slack allowed between the mead left after
// buying breweries and the divmod remainder
const compoundTolerance = 1e-9

// Player owns breweries, collects their mead and tracks brewer rank.
// A Player is not safe for concurrent use.
type Player struct {
	name string

	breweries map[string]*Brewery
	order     []string // brewery ids in creation order
	perTier   [NumTierBuckets]int

	day        int
	reputation int

	unclaimed float64 // produced, not yet claimed
	pending   float64 // claimed, not yet taxed into the wallet
	wallet    float64

	history  History
	invested int
	ledger   Ledger

	logger *slog.Logger
}

// Ledger tracks every mead movement of a player since creation
type Ledger struct {
	InitialUnclaimed float64
	InitialWallet    float64
	Produced         float64 // mead produced by breweries
	Claimed          float64 // gross mead claimed from breweries
	Spent            float64 // claimed mead spent on compounding
	TaxPaid          float64
}

// PlayerOption configures NewPlayer
type PlayerOption func(*playerOptions)

type playerOptions struct {
	name      string
	pool      *NamePool
	unclaimed float64
	logger    *slog.Logger
}

// WithName sets an explicit player name
func WithName(name string) PlayerOption {
	return func(o *playerOptions) { o.name = name }
}

// WithNamePool draws the player name from pool when no explicit name is given
func WithNamePool(pool *NamePool) PlayerOption {
	return func(o *playerOptions) { o.pool = pool }
}

// WithUnclaimedYield starts the player with unclaimed mead
func WithUnclaimedYield(mead float64) PlayerOption {
	return func(o *playerOptions) { o.unclaimed = mead }
}

// WithLogger sets the logger used to report purchases, claims and no-ops
func WithLogger(logger *slog.Logger) PlayerOption {
	return func(o *playerOptions) { o.logger = logger }
}

// NewPlayer creates a player and buys its initial breweries at pricePerBrewery
func NewPlayer(breweryCount, pricePerBrewery, initialReputation int, initialWallet float64, opts ...PlayerOption) *Player {
	o := playerOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	p := &Player{
		breweries:  make(map[string]*Brewery),
		reputation: max(0, initialReputation),
		unclaimed:  o.unclaimed,
		wallet:     initialWallet,
		ledger: Ledger{
			InitialUnclaimed: o.unclaimed,
			InitialWallet:    initialWallet,
		},
	}
	p.name = resolveName(o)
	p.logger = o.logger.With("player", p.name)

	p.history.append(p.snapshot())

	for i := 0; i < breweryCount; i++ {
		p.BuyBrewery(pricePerBrewery)
	}

	for _, b := range p.breweries {
		p.invested += b.Price()
	}

	return p
}

func resolveName(o playerOptions) string {
	if o.name != "" {
		return o.name
	}
	if o.pool != nil {
		name, err := o.pool.Take()
		if err == nil {
			return name
		}
		o.logger.Warn("falling back to a generated player name", "error", err)
	}
	return GenerateName()
}

// DailyTick runs every brewery for one day and records the day in the
// history. It returns the unclaimed mead after the day.
func (p *Player) DailyTick() float64 {
	var dailyYield float64
	var dailyReputation int
	var perTier [NumTierBuckets]int

	for _, id := range p.order {
		b := p.breweries[id]
		yield, reputation := b.DailyTick()
		dailyYield += yield
		dailyReputation += reputation
		perTier[b.Tier().bucket()]++
	}

	p.unclaimed += dailyYield
	p.ledger.Produced += dailyYield
	p.addReputation(dailyReputation)
	p.perTier = perTier
	p.day++

	p.history.append(p.snapshot())

	return p.unclaimed
}

// RunForNDays runs n daily ticks
func (p *Player) RunForNDays(n int) {
	for i := 0; i < n; i++ {
		p.DailyTick()
	}
}

// ClaimResult is the outcome of claiming a single brewery
type ClaimResult struct {
	BreweryID string
	Gross     float64
	Net       float64 // gross after the claim tax in force when claimed
}

// ClaimFromBrewery moves the mead of one brewery into the pending pool.
// The mead is not taxed until TaxClaimedToWallet is called.
func (p *Player) ClaimFromBrewery(id string) (ClaimResult, error) {
	b, ok := p.breweries[id]
	if !ok {
		err := &NotFoundError{BreweryID: id}
		p.logger.Warn("claim skipped", "error", err)
		return ClaimResult{BreweryID: id}, err
	}

	gross, net := b.Claim(p.ClaimTax())
	p.unclaimed -= gross
	p.pending += gross
	p.ledger.Claimed += gross
	p.history.patchLast(func(s *Snapshot) { s.UnclaimedYield = p.unclaimed })

	p.logger.Debug("claimed mead", "brewery", id, "gross", gross)

	return ClaimResult{BreweryID: id, Gross: gross, Net: net}, nil
}

// SettleResult is the outcome of taxing pending mead into the wallet
type SettleResult struct {
	Settled  bool
	Claimed  float64 // pending mead before tax
	TaxRate  float64
	Tax      float64
	Credited float64
	Wallet   float64 // wallet balance after settlement
}

// TaxClaimedToWallet applies the current claim tax to all pending mead and
// adds the rest to the wallet.
func (p *Player) TaxClaimedToWallet() SettleResult {
	rate := p.ClaimTax()
	if p.pending <= 0 {
		p.logger.Info("no claimed mead to tax")
		return SettleResult{TaxRate: rate, Wallet: p.wallet}
	}

	claimed := p.pending
	tax := claimed * rate
	credited := claimed - tax

	p.wallet += credited
	p.ledger.TaxPaid += tax
	p.pending = 0
	p.history.patchLast(func(s *Snapshot) { s.WalletBalance = p.wallet })

	p.logger.Debug("taxed claimed mead",
		"claimed", claimed,
		"tax_rate", rate,
		"wallet", p.wallet,
	)

	return SettleResult{
		Settled:  true,
		Claimed:  claimed,
		TaxRate:  rate,
		Tax:      tax,
		Credited: credited,
		Wallet:   p.wallet,
	}
}

// ClaimAllAndSettle claims every brewery, then taxes everything once
func (p *Player) ClaimAllAndSettle() SettleResult {
	p.claimAll()
	return p.TaxClaimedToWallet()
}

func (p *Player) claimAll() float64 {
	var total float64
	for _, id := range p.order {
		res, err := p.ClaimFromBrewery(id)
		if err != nil {
			continue
		}
		total += res.Gross
	}
	return total
}

// CompoundResult is the outcome of a compound
type CompoundResult struct {
	Compounded bool
	Reason     string // why nothing happened, when Compounded is false
	Claimed    float64
	Bought     int
	BoughtIDs  []string
	Remainder  float64 // pending mead left after buying, settled to the wallet
	Settle     SettleResult
}

// Compound claims all mead, buys as many breweries at unitPrice as the
// claimed mead pays for and settles the remainder to the wallet.
// Nothing happens unless unclaimed mead exceeds unitPrice.
func (p *Player) Compound(unitPrice int) CompoundResult {
	if unitPrice <= 0 {
		err := fmt.Errorf("%w: compound unit price %d", ErrInvalidPrice, unitPrice)
		p.logger.Warn("compound skipped", "error", err)
		return CompoundResult{Reason: err.Error()}
	}
	if p.unclaimed <= float64(unitPrice) {
		p.logger.Info("not enough unclaimed mead to compound",
			"unclaimed", p.unclaimed,
			"unit_price", unitPrice,
		)
		return CompoundResult{Reason: "not enough unclaimed mead to compound"}
	}

	// claim but don't tax yet
	claimed := p.claimAll()

	price := float64(unitPrice)
	toBuy := int(math.Floor(p.pending / price))
	remainder := math.Mod(p.pending, price)

	res := CompoundResult{
		Compounded: true,
		Claimed:    claimed,
		BoughtIDs:  make([]string, 0, toBuy),
	}
	for i := 0; i < toBuy; i++ {
		purchase := p.BuyBrewery(unitPrice)
		p.pending -= price
		p.ledger.Spent += price
		res.BoughtIDs = append(res.BoughtIDs, purchase.ID)
	}
	res.Bought = toBuy

	if math.Abs(p.pending-remainder) > compoundTolerance*math.Max(1, price) {
		panic(fmt.Sprintf("compound: pending mead %v does not match remainder %v", p.pending, remainder))
	}
	res.Remainder = p.pending

	p.logger.Info("compounded",
		"bought", toBuy,
		"breweries", p.BreweryCount(),
	)

	res.Settle = p.TaxClaimedToWallet()
	return res
}

// PurchaseResult is the outcome of buying a brewery
type PurchaseResult struct {
	ID    string
	Price int
	// Warning is set (wrapping ErrInvalidPrice) when the default price was used
	Warning error
}

// BuyBrewery adds a new tier 0 brewery and grants the purchase bonus.
// Paying for it is up to the caller.
func (p *Player) BuyBrewery(price int) PurchaseResult {
	id := fmt.Sprintf("b%02d", len(p.order))

	b, warn := NewBrewery(price)
	if warn != nil {
		p.logger.Warn("brewery price replaced", "brewery", id, "error", warn)
	}

	p.breweries[id] = b
	p.order = append(p.order, id)
	p.perTier[0]++
	p.addReputation(PurchaseReputationBonus)
	p.history.patchLast(func(s *Snapshot) { s.BreweriesPerTier[0] = p.perTier[0] })

	p.logger.Debug("bought brewery", "brewery", id, "price", b.Price())

	return PurchaseResult{ID: id, Price: b.Price(), Warning: warn}
}

func (p *Player) addReputation(delta int) {
	p.reputation = max(0, p.reputation+delta)
}

func (p *Player) snapshot() Snapshot {
	return Snapshot{
		Day:              p.day,
		BreweriesPerTier: p.perTier,
		UnclaimedYield:   p.unclaimed,
		WalletBalance:    p.wallet,
	}
}

// Name returns the player (company) name
func (p *Player) Name() string { return p.name }

// Day returns the number of simulated days
func (p *Player) Day() int { return p.day }

// BreweryCount returns the number of owned breweries
func (p *Player) BreweryCount() int { return len(p.order) }

// BreweriesPerTier returns the brewery count per tier (T1, T2, T3)
func (p *Player) BreweriesPerTier() [NumTierBuckets]int { return p.perTier }

// BreweryIDs returns the brewery ids in creation order
func (p *Player) BreweryIDs() []string {
	ids := make([]string, len(p.order))
	copy(ids, p.order)
	return ids
}

// Brewery returns a copy of the brewery with the given id
func (p *Player) Brewery(id string) (Brewery, bool) {
	b, ok := p.breweries[id]
	if !ok {
		return Brewery{}, false
	}
	return *b, true
}

// Reputation returns the brewer rank points (BR)
func (p *Player) Reputation() int { return p.reputation }

// Rank returns the rank derived from the current reputation
func (p *Player) Rank() Rank { return RankFor(p.reputation, Novice) }

// RankName returns the name of the current rank
func (p *Player) RankName() string { return p.Rank().Name() }

// ClaimTax returns the tax rate of the current rank
func (p *Player) ClaimTax() float64 { return p.Rank().ClaimTax() }

// UnclaimedYield returns the mead still held by breweries
func (p *Player) UnclaimedYield() float64 { return p.unclaimed }

// ClaimedPendingTax returns claimed mead waiting to be taxed
func (p *Player) ClaimedPendingTax() float64 { return p.pending }

// WalletBalance returns the taxed mead in the wallet
func (p *Player) WalletBalance() float64 { return p.wallet }

// History returns the daily history
func (p *Player) History() *History { return &p.history }

// Invested returns the MEAD paid for the initial breweries
func (p *Player) Invested() int { return p.invested }

// Ledger returns the mead movements since creation
func (p *Player) Ledger() Ledger { return p.ledger }

// Imbalance returns how far the player's balances are from what the ledger
// says they should be. It is zero up to float rounding.
func (p *Player) Imbalance() float64 {
	l := p.ledger
	in := l.InitialUnclaimed + l.Produced
	out := p.unclaimed + p.pending + l.Spent + l.TaxPaid + (p.wallet - l.InitialWallet)
	return in - out
}

// String returns a printable stats panel
func (p *Player) String() string {
	var sb strings.Builder
	sb.WriteString(center("Player stats:", 61, '_'))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Day: %d\n", p.day)
	fmt.Fprintf(&sb, "Num Breweries: %d\n", p.BreweryCount())
	fmt.Fprintf(&sb, "BR: %d (%s)\n", p.reputation, p.RankName())
	fmt.Fprintf(&sb, "Claim tax: %d %%\n", int(math.Round(p.ClaimTax()*100)))
	fmt.Fprintf(&sb, "Unclaimed mead: %.2f\n", p.unclaimed)
	fmt.Fprintf(&sb, "Mead in wallet: %.2f\n", p.wallet)
	sb.WriteString(strings.Repeat("_", 61))
	sb.WriteByte('\n')
	return sb.String()
}

func center(s string, width int, fill byte) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}
