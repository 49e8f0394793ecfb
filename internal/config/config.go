// Package config provides configuration management for the bet tracker.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
	Display DisplayConfig `mapstructure:"display" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// MetricsConfig represents the optional Prometheus exposition endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address" validate:"omitempty,hostname_port"`
}

// DisplayConfig represents presentation settings for the interactive loop
type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol" validate:"required"`
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true when running in the development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
