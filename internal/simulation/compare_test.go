package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/meadsim/internal/models"
)

func TestCompareStrategies(t *testing.T) {
	setup := PlayerSetup{Name: "Compare Meadery", Breweries: 1, PricePerBrewery: 100}

	results, best, err := CompareStrategies(setup, 100, 100, WithLogger(discardLogger))

	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, s := range AllStrategies() {
		assert.Equal(t, s, results[i].Strategy)
		assert.Equal(t, "Compare Meadery", results[i].Result.Final.Name)
		assert.Equal(t, 100, results[i].Result.EndDay)
	}

	hold := results[0].Result.Final
	assert.Equal(t, 316.0, hold.UnclaimedYield)
	assert.Equal(t, "brewlord", hold.RankName)
	assert.InDelta(t, 316*0.86, hold.NetWorth, 1e-9)

	claimDaily := results[2].Result.Final
	assert.InDelta(t, 164.0, claimDaily.NetWorth, 1e-9)

	var bestWorth float64
	for _, r := range results {
		if r.Strategy == best {
			bestWorth = r.Result.Final.NetWorth
		}
	}
	for _, r := range results {
		assert.LessOrEqual(t, r.Result.Final.NetWorth, bestWorth)
	}
}

func TestCompareStrategiesFreshPlayers(t *testing.T) {
	setup := PlayerSetup{Name: "Fresh", Breweries: 2, PricePerBrewery: 50, Wallet: 5}

	results, _, err := CompareStrategies(setup, 30, 100, WithLogger(discardLogger))

	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, 0, r.Result.StartDay, "%s starts on a new player", r.Strategy)
		assert.Len(t, r.Result.Rows, 30)
	}
}

func TestCompareStrategiesGeneratesSharedName(t *testing.T) {
	results, _, err := CompareStrategies(PlayerSetup{Breweries: 1, PricePerBrewery: 100}, 5, 100,
		WithLogger(discardLogger))

	require.NoError(t, err)
	name := results[0].Result.Final.Name
	assert.NotEmpty(t, name)
	for _, r := range results {
		assert.Equal(t, name, r.Result.Final.Name)
	}
}

func TestCompareStrategiesTieGoesToFirst(t *testing.T) {
	// nothing happens in zero days, every strategy ends equal
	_, best, err := CompareStrategies(PlayerSetup{Name: "Tie", Breweries: 1, PricePerBrewery: 100}, 0, 100,
		WithLogger(discardLogger))

	require.NoError(t, err)
	assert.Equal(t, Hold, best)
}

func TestCompareStrategiesInvalidPrice(t *testing.T) {
	_, _, err := CompareStrategies(PlayerSetup{Name: "x", Breweries: 1}, 10, 0, WithLogger(discardLogger))

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidPrice))
}

func TestPlayerSetupNewPlayer(t *testing.T) {
	setup := PlayerSetup{
		Name:            "Setup Meadery",
		Breweries:       3,
		PricePerBrewery: 80,
		Reputation:      40,
		Wallet:          12,
		UnclaimedYield:  7,
	}

	p := setup.NewPlayer(discardLogger)

	assert.Equal(t, "Setup Meadery", p.Name())
	assert.Equal(t, 3, p.BreweryCount())
	assert.Equal(t, 240, p.Invested())
	assert.Equal(t, 70, p.Reputation())
	assert.Equal(t, 12.0, p.WalletBalance())
	assert.Equal(t, 7.0, p.UnclaimedYield())
}
