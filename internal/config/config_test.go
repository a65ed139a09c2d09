package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meadsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Simulation.Breweries)
	assert.Equal(t, 100, cfg.Simulation.PricePerBrewery)
	assert.Equal(t, 100, cfg.Simulation.Days)
	assert.Equal(t, 100, cfg.Simulation.UnitPrice)
	assert.Equal(t, "hold", cfg.Simulation.Strategy)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
simulation:
  breweries: 4
  total_price: 500
  reputation: 60
  wallet: 12.5
  name: "Honey Hall"
  days: 365
  unit_price: 150
  strategy: compound
logging:
  level: debug
  format: json
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Simulation.Breweries)
	assert.Equal(t, 125, cfg.Simulation.EffectivePrice())
	assert.Equal(t, 60, cfg.Simulation.Reputation)
	assert.Equal(t, 12.5, cfg.Simulation.Wallet)
	assert.Equal(t, "Honey Hall", cfg.Simulation.Name)
	assert.Equal(t, 365, cfg.Simulation.Days)
	assert.Equal(t, 150, cfg.Simulation.UnitPrice)
	assert.Equal(t, "compound", cfg.Simulation.Strategy)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
simulation:
  days: 365
`)
	t.Setenv("MEADSIM_SIMULATION_DAYS", "30")
	t.Setenv("MEADSIM_SIMULATION_STRATEGY", "claim-daily")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Simulation.Days)
	assert.Equal(t, "claim-daily", cfg.Simulation.Strategy)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero unit price", "simulation:\n  unit_price: 0\n"},
		{"negative breweries", "simulation:\n  breweries: -1\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"metrics without textfile", "metrics:\n  enabled: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "simulation: [\n"))
	require.Error(t, err)
}

func TestEffectivePrice(t *testing.T) {
	s := SimulationConfig{Breweries: 3, PricePerBrewery: 80}
	assert.Equal(t, 80, s.EffectivePrice())

	s.TotalPrice = 301
	assert.Equal(t, 100, s.EffectivePrice())

	s.Breweries = 0
	assert.Equal(t, 80, s.EffectivePrice())
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, ValidateConfig(Default()))
}
