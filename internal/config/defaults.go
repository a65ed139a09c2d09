package config

import "github.com/spf13/viper"

const (
	defaultBreweries = 1
	defaultPrice     = 100
	defaultDays      = 100
	defaultStrategy  = "hold"
	defaultDataDir   = "data"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("simulation.breweries", defaultBreweries)
	v.SetDefault("simulation.price_per_brewery", defaultPrice)
	v.SetDefault("simulation.total_price", 0)
	v.SetDefault("simulation.reputation", 0)
	v.SetDefault("simulation.wallet", 0.0)
	v.SetDefault("simulation.name", "")
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.days", defaultDays)
	v.SetDefault("simulation.unit_price", defaultPrice)
	v.SetDefault("simulation.strategy", defaultStrategy)

	v.SetDefault("data.dir", defaultDataDir)

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.format", defaultLogFormat)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")
}

// SetDefaults fills zero values of a config built without viper
func SetDefaults(cfg *Config) {
	if cfg.Simulation.Breweries == 0 {
		cfg.Simulation.Breweries = defaultBreweries
	}
	if cfg.Simulation.PricePerBrewery == 0 {
		cfg.Simulation.PricePerBrewery = defaultPrice
	}
	if cfg.Simulation.Days == 0 {
		cfg.Simulation.Days = defaultDays
	}
	if cfg.Simulation.UnitPrice == 0 {
		cfg.Simulation.UnitPrice = defaultPrice
	}
	if cfg.Simulation.Strategy == "" {
		cfg.Simulation.Strategy = defaultStrategy
	}

	if cfg.Data.Dir == "" {
		cfg.Data.Dir = defaultDataDir
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}
