package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistorySince(t *testing.T) {
	p := newTestPlayer(1)
	p.RunForNDays(10)

	rows := p.History().Since(8)
	require.Len(t, rows, 3)
	assert.Equal(t, 8, rows[0].Day)
	assert.Equal(t, 10, rows[2].Day)

	assert.Empty(t, p.History().Since(11))
	assert.Len(t, p.History().Since(0), 11)
}

func TestHistorySinceReturnsCopy(t *testing.T) {
	p := newTestPlayer(1)
	p.RunForNDays(2)

	rows := p.History().Since(0)
	rows[0].WalletBalance = 999

	assert.Equal(t, 0.0, p.History().At(0).WalletBalance)
}

func TestHistoryPatchOnlyTouchesLastEntry(t *testing.T) {
	var h History
	h.append(Snapshot{Day: 0, UnclaimedYield: 1})
	h.append(Snapshot{Day: 1, UnclaimedYield: 2})

	h.patchLast(func(s *Snapshot) { s.UnclaimedYield = 5 })

	assert.Equal(t, 1.0, h.At(0).UnclaimedYield)
	assert.Equal(t, 5.0, h.Last().UnclaimedYield)
}

func TestHistoryPatchEmptyIsNoop(t *testing.T) {
	var h History
	h.patchLast(func(s *Snapshot) { s.Day = 3 })
	assert.Equal(t, 0, h.Len())
}

func TestHistoryColumns(t *testing.T) {
	p := newTestPlayer(2)
	p.RunForNDays(3)
	p.ClaimAllAndSettle()

	c := p.History().Columns()
	assert.Equal(t, []int{0, 1, 2, 3}, c.Day)
	assert.Equal(t, []int{2, 2, 2, 2}, c.Tier1)
	assert.Equal(t, []int{0, 0, 0, 0}, c.Tier2)
	assert.Equal(t, []int{0, 0, 0, 0}, c.Tier3)
	assert.InDeltaSlice(t, []float64{0, 4, 8, 0}, c.UnclaimedYield, 1e-9)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 12 * 0.82}, c.WalletBalance, 1e-9)
}
