// Package config loads and validates the simulation configuration for
// headless runs: session seeding, market rules, the scripted policy, and
// where the journal goes.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/survival/runner"
	"github.com/rustyeddy/survival/sim"
)

// Config represents the complete run configuration.
type Config struct {
	Session SessionConfig `json:"session" yaml:"session"`
	Rules   sim.Rules     `json:"rules" yaml:"rules"`
	Policy  PolicyConfig  `json:"policy" yaml:"policy"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// SessionConfig contains session initialization parameters. CashRate is a
// pointer so an explicit zero is distinguishable from an absent field.
type SessionConfig struct {
	Seed          uint32   `json:"seed" yaml:"seed"`
	Days          int      `json:"days" yaml:"days"`
	InitialEquity float64  `json:"initial_equity" yaml:"initial_equity"`
	CashRate      *float64 `json:"cash_rate,omitempty" yaml:"cash_rate,omitempty"`
}

// PolicyConfig scripts the player for a headless run. Side and Schedule are
// parsed names so config files stay readable.
type PolicyConfig struct {
	Side       string   `json:"side" yaml:"side"`
	Size       float64  `json:"size" yaml:"size"`
	Leverage   float64  `json:"leverage" yaml:"leverage"`
	StopLoss   float64  `json:"stop_loss" yaml:"stop_loss"`
	TakeProfit float64  `json:"take_profit" yaml:"take_profit"`
	UseStop    bool     `json:"use_stop" yaml:"use_stop"`
	UseTake    bool     `json:"use_take" yaml:"use_take"`
	Schedule   []string `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	DaysFile   string `json:"days_file,omitempty" yaml:"days_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ToPolicy converts the scripted policy into runner form.
func (p PolicyConfig) ToPolicy() (runner.Policy, error) {
	side, err := sim.ParseSide(p.Side)
	if err != nil {
		return runner.Policy{}, fmt.Errorf("policy: %w", err)
	}

	schedule := make([]sim.Mode, 0, len(p.Schedule))
	for _, name := range p.Schedule {
		mode, err := sim.ParseMode(name)
		if err != nil {
			return runner.Policy{}, fmt.Errorf("policy schedule: %w", err)
		}
		schedule = append(schedule, mode)
	}

	return runner.Policy{
		Action: sim.Action{
			Side:       side,
			Size:       p.Size,
			Leverage:   p.Leverage,
			StopLoss:   p.StopLoss,
			TakeProfit: p.TakeProfit,
			UseStop:    p.UseStop,
			UseTake:    p.UseTake,
		},
		Schedule: schedule,
	}, nil
}

// InitialState builds the session's day-one state from the config.
func (c *Config) InitialState() sim.State {
	st := sim.NewState()
	if c.Session.InitialEquity > 0 {
		st.Equity = c.Session.InitialEquity
		st.PeakEquity = c.Session.InitialEquity
	}
	if c.Session.CashRate != nil {
		st.CashRate = *c.Session.CashRate
	}
	return st
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
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

// Validate checks if the configuration is valid. The engine trusts its
// inputs, so range enforcement lives here.
func (c *Config) Validate() error {
	if c.Session.Days <= 0 {
		return fmt.Errorf("session.days must be positive")
	}
	if c.Session.InitialEquity < 0 {
		return fmt.Errorf("session.initial_equity must not be negative")
	}
	if c.Rules.MakerFee < 0 || c.Rules.TakerFee < 0 {
		return fmt.Errorf("rules fees must not be negative")
	}
	if c.Rules.MaxLeverage < 1 {
		return fmt.Errorf("rules.max_leverage must be at least 1")
	}
	if c.Rules.Maintenance < 0 || c.Rules.Maintenance >= 1 {
		return fmt.Errorf("rules.maintenance must be in [0, 1)")
	}
	if c.Rules.BlackSwanProb < 0 || c.Rules.BlackSwanProb > 1 {
		return fmt.Errorf("rules.black_swan_prob must be in [0, 1]")
	}
	if c.Rules.GoodNewsProb < 0 || c.Rules.GoodNewsProb > 1 {
		return fmt.Errorf("rules.good_news_prob must be in [0, 1]")
	}
	if c.Policy.Size < 0 || c.Policy.Size > 1 {
		return fmt.Errorf("policy.size must be in [0, 1]")
	}
	if c.Policy.Leverage < 1 || c.Policy.Leverage > c.Rules.MaxLeverage {
		return fmt.Errorf("policy.leverage must be in [1, %g]", c.Rules.MaxLeverage)
	}
	if _, err := c.Policy.ToPolicy(); err != nil {
		return err
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.DaysFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal days_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "none":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Seed:          1,
			Days:          120,
			InitialEquity: sim.InitialEquity,
			CashRate:      lo.ToPtr(0.0001),
		},
		Rules: sim.DefaultRules(),
		Policy: PolicyConfig{
			Side:     "long",
			Size:     0.3,
			Leverage: 5,
			StopLoss: 0.02,
			UseStop:  true,
			Schedule: []string{"trade", "trade", "trade", "study", "rest"},
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./survival.sqlite",
		},
	}
}
