package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name string
		want Strategy
	}{
		{"hold", Hold},
		{"HODL", Hold},
		{"compound", CompoundWhenPossible},
		{"Compound When Possible", CompoundWhenPossible},
		{"compound-when-possible", CompoundWhenPossible},
		{"claim-daily", ClaimDaily},
		{"  claim daily ", ClaimDaily},
		{"ClaimDaily", ClaimDaily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStrategyUnknown(t *testing.T) {
	_, err := ParseStrategy("not-a-strategy")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStrategy))

	var invalid *InvalidStrategyError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "not-a-strategy", invalid.Name)
	assert.Contains(t, err.Error(), "hold, compound, claim-daily")
}

func TestAllStrategies(t *testing.T) {
	assert.Equal(t, []Strategy{Hold, CompoundWhenPossible, ClaimDaily}, AllStrategies())
	assert.Equal(t, []string{"hold", "compound", "claim-daily"}, StrategyNames())
}

func TestStrategyAliases(t *testing.T) {
	assert.Equal(t, []string{"hodl"}, Hold.Aliases())
	assert.Equal(t, []string{"claim daily", "claimdaily"}, ClaimDaily.Aliases())
	assert.Contains(t, CompoundWhenPossible.Aliases(), "compound when possible")
	assert.NotContains(t, CompoundWhenPossible.Aliases(), "compound")
}

func TestStrategyDescription(t *testing.T) {
	for _, s := range AllStrategies() {
		assert.NotEmpty(t, s.Description(), s)
	}
	assert.Empty(t, Strategy("unknown").Description())
}
