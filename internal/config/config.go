package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (MEADSIM_SIMULATION_DAYS=30)
const EnvPrefix = "MEADSIM"

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Data       DataConfig       `mapstructure:"data"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// SimulationConfig describes the starting player and the run
type SimulationConfig struct {
	// Initial breweries bought at creation
	Breweries int `mapstructure:"breweries" validate:"min=0,max=1000"`

	// Price paid for each initial brewery
	PricePerBrewery int `mapstructure:"price_per_brewery" validate:"min=0"`

	// Total price of the initial breweries; when set it overrides
	// PricePerBrewery with the average price
	TotalPrice int `mapstructure:"total_price" validate:"min=0"`

	Reputation int     `mapstructure:"reputation" validate:"min=0"`
	Wallet     float64 `mapstructure:"wallet" validate:"min=0"`

	// Player name; drawn from the name pool when empty
	Name string `mapstructure:"name"`

	// Seed for the name pool
	Seed uint64 `mapstructure:"seed"`

	Days      int    `mapstructure:"days" validate:"min=0,max=100000"`
	UnitPrice int    `mapstructure:"unit_price" validate:"min=1"`
	Strategy  string `mapstructure:"strategy" validate:"required"`
}

// EffectivePrice returns the price of each initial brewery
func (s SimulationConfig) EffectivePrice() int {
	if s.TotalPrice > 0 && s.Breweries > 0 {
		return s.TotalPrice / s.Breweries
	}
	return s.PricePerBrewery
}

// DataConfig locates the data files
type DataConfig struct {
	// Directory holding names.json
	Dir string `mapstructure:"dir" validate:"required"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (meadsim.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("meadsim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	// Defaults must be registered so env-only keys reach Unmarshal
	setViperDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - env vars and defaults apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	return cfg
}
