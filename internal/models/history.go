package models

// Snapshot is the state of a player at the end of a day
type Snapshot struct {
	Day              int
	BreweriesPerTier [NumTierBuckets]int
	UnclaimedYield   float64
	WalletBalance    float64
}

// Columns is the column-oriented view of a history, one slice per series
type Columns struct {
	Day            []int
	Tier1          []int
	Tier2          []int
	Tier3          []int
	UnclaimedYield []float64
	WalletBalance  []float64
}

// History is an append-only daily series. Only the latest entry (the day in
// progress) can be changed after it was appended.
type History struct {
	entries []Snapshot
}

// Len returns the number of recorded days, including day 0
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the i-th snapshot
func (h *History) At(i int) Snapshot {
	return h.entries[i]
}

// Last returns the most recent snapshot
func (h *History) Last() Snapshot {
	return h.entries[len(h.entries)-1]
}

// Since returns a copy of all snapshots with Day >= day
func (h *History) Since(day int) []Snapshot {
	start := len(h.entries)
	for i, s := range h.entries {
		if s.Day >= day {
			start = i
			break
		}
	}
	out := make([]Snapshot, len(h.entries)-start)
	copy(out, h.entries[start:])
	return out
}

// Columns returns a copy of the history as parallel series
func (h *History) Columns() Columns {
	n := len(h.entries)
	c := Columns{
		Day:            make([]int, n),
		Tier1:          make([]int, n),
		Tier2:          make([]int, n),
		Tier3:          make([]int, n),
		UnclaimedYield: make([]float64, n),
		WalletBalance:  make([]float64, n),
	}
	for i, s := range h.entries {
		c.Day[i] = s.Day
		c.Tier1[i] = s.BreweriesPerTier[0]
		c.Tier2[i] = s.BreweriesPerTier[1]
		c.Tier3[i] = s.BreweriesPerTier[2]
		c.UnclaimedYield[i] = s.UnclaimedYield
		c.WalletBalance[i] = s.WalletBalance
	}
	return c
}

func (h *History) append(s Snapshot) {
	h.entries = append(h.entries, s)
}

// patchLast edits the day in progress; earlier entries are never touched
func (h *History) patchLast(fn func(s *Snapshot)) {
	if len(h.entries) == 0 {
		return
	}
	fn(&h.entries[len(h.entries)-1])
}
