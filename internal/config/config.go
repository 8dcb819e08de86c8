// Package config loads application configuration from an optional config
// file and HOOPS_PBP_* environment variables, with sensible defaults for
// every setting.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Scraper  ScraperConfig  `mapstructure:"scraper"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ScraperConfig holds HTTP fetching configuration
type ScraperConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	UserAgent     string        `mapstructure:"user_agent"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetries    int           `mapstructure:"max_retries"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// FeedConfig holds orchestration configuration
type FeedConfig struct {
	League      string `mapstructure:"league"`
	Concurrency int    `mapstructure:"concurrency"`
}

// NotifierConfig holds game summary notification configuration
type NotifierConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional file and environment
// variables. An empty path skips the file and uses defaults plus env
// overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("HOOPS_PBP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scraper.base_url", "http://www.espn.com")
	v.SetDefault("scraper.user_agent", "hoops-pbp-cli/1.0 (github.com/pfrederiksen/hoops-pbp)")
	v.SetDefault("scraper.timeout", "30s")
	v.SetDefault("scraper.max_retries", 3)
	v.SetDefault("scraper.retry_interval", "500ms")

	v.SetDefault("feed.league", "nba")
	v.SetDefault("feed.concurrency", 4)

	v.SetDefault("notifier.enabled", false)

	v.SetDefault("logging.level", "info")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper.base_url is required")
	}
	if c.Scraper.Timeout < time.Second {
		return fmt.Errorf("scraper.timeout must be at least 1 second")
	}
	if c.Scraper.MaxRetries < 0 {
		return fmt.Errorf("scraper.max_retries must not be negative")
	}
	if c.Feed.League == "" {
		return fmt.Errorf("feed.league is required")
	}
	if c.Feed.Concurrency < 1 {
		return fmt.Errorf("feed.concurrency must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	return nil
}
