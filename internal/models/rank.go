package models

// Rank is the brewer rank tier derived from reputation (BR)
type Rank int

const (
	Novice Rank = iota
	Brewer
	Brewlord
	Brewmaster
)

// MaxRank is the highest reachable rank
const MaxRank = Brewmaster

// RankThresholds holds the minimum BR for each rank
var RankThresholds = [...]int{0, 50, 500, 2500}

// ClaimTaxes holds the claim tax per rank, strictly decreasing
var ClaimTaxes = [...]float64{0.18, 0.16, 0.14, 0.12}

var rankNames = [...]string{"novice", "brewer", "brewlord", "brewmaster"}

// AllRanks returns all ranks in increasing order
func AllRanks() []Rank {
	return []Rank{Novice, Brewer, Brewlord, Brewmaster}
}

// Name returns the rank name ("novice", "brewer", ...)
func (r Rank) Name() string {
	return rankNames[r.clamp()]
}

// String implements fmt.Stringer
func (r Rank) String() string {
	return r.Name()
}

// ClaimTax returns the tax rate applied when settling claimed mead
func (r Rank) ClaimTax() float64 {
	return ClaimTaxes[r.clamp()]
}

func (r Rank) clamp() Rank {
	if r < Novice {
		return Novice
	}
	if r > MaxRank {
		return MaxRank
	}
	return r
}

// RankFor returns the rank for the given reputation, scanning upward from rank
// from and stopping at the first threshold not met.
func RankFor(reputation int, from Rank) Rank {
	rank := from.clamp()
	for next := rank + 1; next <= MaxRank; next++ {
		if reputation < RankThresholds[next] {
			break
		}
		rank = next
	}
	return rank
}
