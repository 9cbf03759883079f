package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log/level"
	"go-currency-converter/domain"
	"go-currency-converter/rates"
	"gopkg.in/yaml.v3"
)

// Currency one configured currency. The code is taken from the label.
type Currency struct {
	Label string  `yaml:"label"`
	Rate  float64 `yaml:"rate"`
}

// Config holds all application configuration.
type Config struct {
	Listen      string     `yaml:"listen"`
	LogLevel    string     `yaml:"log_level"`
	DefaultFrom string     `yaml:"default_from"`
	DefaultTo   string     `yaml:"default_to"`
	ZeroDecimal []string   `yaml:"zero_decimal"`
	Currencies  []Currency `yaml:"currencies"`
}

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CONVERTER_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("CONVERTER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.DefaultFrom == "" {
		cfg.DefaultFrom = string(rates.DefaultFrom)
	}
	if cfg.DefaultTo == "" {
		cfg.DefaultTo = string(rates.DefaultTo)
	}

	if _, err := cfg.Catalog(); err != nil {
		return nil, fmt.Errorf("currencies: %w", err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("log_level %q: unknown level", cfg.LogLevel)
	}

	return cfg, nil
}

// Catalog builds the rate catalog, falling back to the compiled-in table.
func (c *Config) Catalog() (*rates.Catalog, error) {
	if len(c.Currencies) == 0 {
		return rates.Default(), nil
	}
	entries := make([]rates.Entry, len(c.Currencies))
	for i, cur := range c.Currencies {
		entries[i] = rates.Entry{
			Label: cur.Label,
			Rate:  domain.Rate(cur.Rate),
		}
	}
	return rates.NewCatalog(entries)
}

// ZeroDecimalSet currencies displayed without fractional digits
func (c *Config) ZeroDecimalSet() domain.CurrencySet {
	if c.ZeroDecimal == nil {
		return rates.DefaultZeroDecimal()
	}
	codes := make([]domain.Currency, len(c.ZeroDecimal))
	for i, code := range c.ZeroDecimal {
		codes[i] = domain.Currency(strings.ToUpper(strings.TrimSpace(code)))
	}
	return domain.NewCurrencySet(codes...)
}

// Pair the currencies selected on startup
func (c *Config) Pair() (domain.Currency, domain.Currency) {
	return domain.Currency(c.DefaultFrom), domain.Currency(c.DefaultTo)
}

// LevelOption the log filter for the configured level
func (c *Config) LevelOption() level.Option {
	switch c.LogLevel {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}
