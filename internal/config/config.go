// Package config loads pokereval settings from an HCL file with environment
// overrides.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"

	"github.com/lox/pokereval/poker"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "pokereval.hcl"

// EnvPrefix prefixes every environment override, e.g. POKEREVAL_LOG_LEVEL.
const EnvPrefix = "pokereval"

const (
	defaultLogLevel   = "info"
	defaultIterations = 100000
	defaultPlayers    = 2
	defaultCards      = 7
)

// Config represents the complete pokereval configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional" envconfig:"log_level"`
	Color    *bool         `hcl:"color,optional" envconfig:"color"`
	Equity   *EquityConfig `hcl:"equity,block" envconfig:"equity"`
	Deal     *DealConfig   `hcl:"deal,block" envconfig:"deal"`
}

// EquityConfig controls Monte Carlo runs.
type EquityConfig struct {
	Iterations int `hcl:"iterations,optional" envconfig:"iterations"`
	// Workers of 0 uses one per CPU, capped at 8.
	Workers int `hcl:"workers,optional" envconfig:"workers"`
	// Seed of 0 seeds from the current time.
	Seed int64 `hcl:"seed,optional" envconfig:"seed"`
}

// DealConfig sets the table dealt by the deal command.
type DealConfig struct {
	Players int `hcl:"players,optional" envconfig:"players"`
	Cards   int `hcl:"cards,optional" envconfig:"cards"`
}

// Default returns the built-in configuration
func Default() *Config {
	color := true
	return &Config{
		LogLevel: defaultLogLevel,
		Color:    &color,
		Equity: &EquityConfig{
			Iterations: defaultIterations,
		},
		Deal: &DealConfig{
			Players: defaultPlayers,
			Cards:   defaultCards,
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist, and
// then applies POKEREVAL_* environment overrides.
func Load(filename string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(filename); err == nil {
		config, err = parseFile(filename)
		if err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	return config, nil
}

func parseFile(filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Color == nil {
		config.Color = defaults.Color
	}
	if config.Equity == nil {
		config.Equity = defaults.Equity
	}
	if config.Equity.Iterations == 0 {
		config.Equity.Iterations = defaultIterations
	}
	if config.Deal == nil {
		config.Deal = defaults.Deal
	}
	if config.Deal.Players == 0 {
		config.Deal.Players = defaultPlayers
	}
	if config.Deal.Cards == 0 {
		config.Deal.Cards = defaultCards
	}

	return &config, nil
}

// ColorEnabled reports whether styled output is wanted.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	if c.Equity.Iterations <= 0 {
		return fmt.Errorf("equity: iterations must be positive, got %d", c.Equity.Iterations)
	}
	if c.Equity.Workers < 0 {
		return fmt.Errorf("equity: workers cannot be negative, got %d", c.Equity.Workers)
	}

	if c.Deal.Players < 1 {
		return fmt.Errorf("deal: players must be at least 1, got %d", c.Deal.Players)
	}
	if c.Deal.Cards < poker.MinHandSize || c.Deal.Cards > poker.MaxHandSize {
		return fmt.Errorf("deal: cards must be between %d and %d, got %d",
			poker.MinHandSize, poker.MaxHandSize, c.Deal.Cards)
	}
	if c.Deal.Players*c.Deal.Cards > poker.DeckSize {
		return fmt.Errorf("deal: %d players with %d cards each needs more than %d cards",
			c.Deal.Players, c.Deal.Cards, poker.DeckSize)
	}

	return nil
}
