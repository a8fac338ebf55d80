package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tekoa-labs/riskcore/market"
	"github.com/tekoa-labs/riskcore/risk"
)

// Config is the complete riskcore configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// AccountConfig contains account parameters
type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// RiskConfig contains the sizing defaults and portfolio limits
type RiskConfig struct {
	Instrument  string  `json:"instrument" yaml:"instrument"`
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"` // percent, (0, 100]
	StopPips    float64 `json:"stop_pips" yaml:"stop_pips"`
	RewardRatio float64 `json:"reward_ratio,omitempty" yaml:"reward_ratio,omitempty"`

	MaxOpenPositions int     `json:"max_open_positions" yaml:"max_open_positions"`
	MaxDailyLoss     float64 `json:"max_daily_loss" yaml:"max_daily_loss"`
}

// JournalConfig contains decision-journal parameters
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	DecisionsFile string `json:"decisions_file,omitempty" yaml:"decisions_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ServerConfig contains the HTTP boundary parameters
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// Limits converts the configured limits into the engine's form.
func (r RiskConfig) Limits() risk.Limits {
	return risk.Limits{
		MaxOpenPositions: r.MaxOpenPositions,
		MaxDailyLoss:     decimal.NewFromFloat(r.MaxDailyLoss),
	}
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Risk.Instrument == "" {
		return fmt.Errorf("risk.instrument is required")
	}
	if _, err := market.Lookup(c.Risk.Instrument); err != nil {
		return err
	}
	if c.Risk.RiskPercent <= 0 || c.Risk.RiskPercent > 100 {
		return fmt.Errorf("risk.risk_percent must be in (0, 100]")
	}
	if c.Risk.StopPips <= 0 {
		return fmt.Errorf("risk.stop_pips must be positive")
	}
	if c.Risk.RewardRatio < 0 {
		return fmt.Errorf("risk.reward_ratio must not be negative")
	}
	if c.Risk.MaxOpenPositions < 0 {
		return fmt.Errorf("risk.max_open_positions must not be negative")
	}
	if c.Risk.MaxDailyLoss < 0 {
		return fmt.Errorf("risk.max_daily_loss must not be negative")
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.DecisionsFile == "" {
			return fmt.Errorf("journal.decisions_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	case "none", "":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
			Balance:  10000,
		},
		Risk: RiskConfig{
			Instrument:       "EUR_USD",
			RiskPercent:      1.0,
			StopPips:         20,
			RewardRatio:      2.0,
			MaxOpenPositions: 5,
			MaxDailyLoss:     500,
		},
		Journal: JournalConfig{
			Type:          "csv",
			DecisionsFile: "./decisions.csv",
		},
		Server: ServerConfig{
			Addr: ":8086",
		},
	}
}
