// Package config provides configuration management for the scraper.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingLanguage     = errors.New("scraper.language is required")
	ErrMissingOutputDir    = errors.New("output.dir is required")
	ErrNoFormats           = errors.New("output.formats must name at least one format")
	ErrInvalidFormat       = errors.New("output.formats entries must be one of: markdown, json, text, all")
	ErrInvalidMaxAttempts  = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoff      = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout      = errors.New("retry.timeout_sec must be at least 1")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete scraper configuration.
type Config struct {
	Scraper ScraperConfig `yaml:"scraper"`
	Output  OutputConfig  `yaml:"output"`
	Retry   RetryPolicy   `yaml:"retry"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScraperConfig contains fetch-side settings.
type ScraperConfig struct {
	Language  string `yaml:"language"`
	UserAgent string `yaml:"user_agent"`
}

// OutputConfig defines where and how exports are written.
type OutputConfig struct {
	Dir             string   `yaml:"dir"`
	Formats         []string `yaml:"formats"`
	IncludeFullText bool     `yaml:"include_full_text"`
}

// RetryPolicy defines retry behavior for fetch requests.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Scraper: ScraperConfig{
			Language:  "ja",
			UserAgent: "WikipediaScraper/2.0",
		},
		Output: OutputConfig{
			Dir:     "./output",
			Formats: []string{"markdown"},
		},
		Retry: RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Missing sections
// keep their default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Scraper.Language == "" {
		return ErrMissingLanguage
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if len(c.Output.Formats) == 0 {
		return ErrNoFormats
	}

	validFormats := map[string]bool{"markdown": true, "json": true, "text": true, "all": true}
	for _, format := range c.Output.Formats {
		if !validFormats[format] {
			return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
		}
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoff
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Language: %s, Formats: %v, Output: %s}",
		c.Scraper.Language,
		c.Output.Formats,
		c.Output.Dir,
	)
}
