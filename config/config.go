package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/ergung/position-calculator/display"
	"github.com/ergung/position-calculator/journal"
	"github.com/ergung/position-calculator/risk"
)

// Config is everything around the calculation itself: how results are shown,
// exported and checked, and how the CLI and server behave.
type Config struct {
	Display DisplayConfig `json:"display" yaml:"display"`
	Export  ExportConfig  `json:"export" yaml:"export"`
	Policy  risk.Policy   `json:"policy" yaml:"policy"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// DisplayConfig controls rounding for humans. It never affects the numbers
// the calculator produces.
type DisplayConfig struct {
	QuoteCurrency  string `json:"quote_currency" yaml:"quote_currency"`
	PricePlaces    int    `json:"price_places" yaml:"price_places"`
	MoneyPlaces    int    `json:"money_places" yaml:"money_places"`
	QuantityPlaces int    `json:"quantity_places" yaml:"quantity_places"`
}

// ExportConfig controls the spreadsheet row.
type ExportConfig struct {
	Format     string `json:"format" yaml:"format"` // "tsv", "pipe" or "csv"
	DateLayout string `json:"date_layout" yaml:"date_layout"`
}

type LoggingConfig struct {
	Level    string `json:"level" yaml:"level"`       // debug|info|warn|error
	Encoding string `json:"encoding" yaml:"encoding"` // console|json
}

type ServerConfig struct {
	Addr            string `json:"addr" yaml:"addr"`
	ShutdownTimeout string `json:"shutdown_timeout" yaml:"shutdown_timeout"` // e.g. "5s"
}

// ParseShutdownTimeout converts the timeout string to time.Duration.
func (s ServerConfig) ParseShutdownTimeout() (time.Duration, error) {
	if s.ShutdownTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.ShutdownTimeout)
}

// Options converts the section into display.Options.
func (d DisplayConfig) Options() display.Options {
	return display.Options{
		QuoteCurrency:  d.QuoteCurrency,
		PricePlaces:    int32(d.PricePlaces),
		MoneyPlaces:    int32(d.MoneyPlaces),
		QuantityPlaces: int32(d.QuantityPlaces),
	}
}

// ExportOptions combines the export and display sections into journal.Options.
func (c *Config) ExportOptions() (journal.Options, error) {
	f, err := journal.ParseFormat(c.Export.Format)
	if err != nil {
		return journal.Options{}, err
	}
	return journal.Options{
		Format:     f,
		DateLayout: c.Export.DateLayout,
		Display:    c.Display.Options(),
	}, nil
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
// Keys missing from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
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

// Validate reports every problem in the configuration, not just the first.
func (c *Config) Validate() error {
	var err error

	if c.Display.QuoteCurrency == "" {
		err = multierr.Append(err, errors.New("display.quote_currency is required"))
	}
	if c.Display.PricePlaces < 0 || c.Display.PricePlaces > 16 {
		err = multierr.Append(err, errors.New("display.price_places must be between 0 and 16"))
	}
	if c.Display.MoneyPlaces < 0 || c.Display.MoneyPlaces > 16 {
		err = multierr.Append(err, errors.New("display.money_places must be between 0 and 16"))
	}
	if c.Display.QuantityPlaces < 0 || c.Display.QuantityPlaces > 16 {
		err = multierr.Append(err, errors.New("display.quantity_places must be between 0 and 16"))
	}

	if _, ferr := journal.ParseFormat(c.Export.Format); ferr != nil {
		err = multierr.Append(err, fmt.Errorf("export.format: %w", ferr))
	}
	if c.Export.DateLayout == "" {
		err = multierr.Append(err, errors.New("export.date_layout is required"))
	}

	p := c.Policy
	if p.MinRR < 0 || p.MaxPositionValue < 0 || p.AccountBalance < 0 || p.MaxRiskPct < 0 || p.MaxLeverage < 0 {
		err = multierr.Append(err, errors.New("policy values must not be negative"))
	}
	if p.MaxRiskPct > 1 {
		err = multierr.Append(err, errors.New("policy.max_risk_pct must be between 0 and 1"))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q must be debug, info, warn or error", c.Logging.Level))
	}
	if c.Logging.Encoding != "console" && c.Logging.Encoding != "json" {
		err = multierr.Append(err, errors.New("logging.encoding must be 'console' or 'json'"))
	}

	if c.Server.Addr == "" {
		err = multierr.Append(err, errors.New("server.addr is required"))
	}
	if d, derr := c.Server.ParseShutdownTimeout(); derr != nil || d < 0 {
		err = multierr.Append(err, fmt.Errorf("server.shutdown_timeout %q is not a valid duration", c.Server.ShutdownTimeout))
	}

	return err
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			QuoteCurrency:  "USDT",
			PricePlaces:    8,
			MoneyPlaces:    2,
			QuantityPlaces: 6,
		},
		Export: ExportConfig{
			Format:     string(journal.FormatTSV),
			DateLayout: "2006-01-02",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "5s",
		},
	}
}
