package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stockana/strategy"
)

// Config represents a complete analysis run configuration.
type Config struct {
	Data     DataConfig      `json:"data" yaml:"data"`
	Strategy strategy.Config `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig   `json:"journal" yaml:"journal"`
}

// DataConfig locates the input bar series.
type DataConfig struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Bars   string `json:"bars" yaml:"bars"` // path to OHLCV CSV
}

// JournalConfig contains result recording parameters.
type JournalConfig struct {
	Type         string `json:"type" yaml:"type"` // "csv" or "sqlite"
	SignalsFile  string `json:"signals_file,omitempty" yaml:"signals_file,omitempty"`
	PatternsFile string `json:"patterns_file,omitempty" yaml:"patterns_file,omitempty"`
	DBPath       string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if yerr := yaml.Unmarshal(data, cfg); yerr != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", yerr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Data.Symbol == "" {
		return fmt.Errorf("data.symbol is required")
	}
	if c.Data.Bars == "" {
		return fmt.Errorf("data.bars is required")
	}
	if err := c.Strategy.Validate(); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.SignalsFile == "" || c.Journal.PatternsFile == "" {
			return fmt.Errorf("journal signals_file and patterns_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Symbol: "AAPL",
			Bars:   "./bars.csv",
		},
		Strategy: strategy.Default(),
		Journal: JournalConfig{
			Type:         "csv",
			SignalsFile:  "./signals.csv",
			PatternsFile: "./patterns.csv",
		},
	}
}
