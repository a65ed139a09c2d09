package config

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// MetricsConfig holds metrics export configuration
type MetricsConfig struct {
	// Enabled controls whether run metrics are collected
	Enabled bool `mapstructure:"enabled"`

	// Textfile is where metrics are written in Prometheus text format
	// after a run (node exporter textfile collector)
	Textfile string `mapstructure:"textfile" validate:"required_if=Enabled true"`
}
