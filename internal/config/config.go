// Package config provides Viper-based configuration loading for hoard.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/hoard/internal/game/catalog"
	"github.com/cory-johannsen/hoard/internal/game/shop"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Catalog sources.
const (
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
)

// CatalogConfig selects where item records are read from.
type CatalogConfig struct {
	// Source is "yaml" (item files under Dir) or "postgres" (the items table).
	Source string `mapstructure:"source"`
	// Dir is the directory of YAML item files, used when Source is "yaml".
	Dir string `mapstructure:"dir"`
	// ShopTypes adds or replaces shop type definitions by ID.
	ShopTypes []catalog.ShopTypeConfig `mapstructure:"shop_types"`
}

// GenerationConfig holds the tunable constants of the inventory generators.
type GenerationConfig struct {
	// VarietyChance is the probability an off-category item is stocked.
	VarietyChance float64 `mapstructure:"variety_chance"`
	// BudgetOverflow is the factor a positive budget may be exceeded by.
	BudgetOverflow float64 `mapstructure:"budget_overflow"`
}

// Config is the top-level application configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Generation GenerationConfig `mapstructure:"generation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCatalog(c.Catalog); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGeneration(c.Generation); err != nil {
		errs = append(errs, err.Error())
	}
	// The database is only consulted when the catalog lives there.
	if c.Catalog.Source == SourcePostgres {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateCatalog(c CatalogConfig) error {
	var errs []string
	switch c.Source {
	case SourceYAML:
		if c.Dir == "" {
			errs = append(errs, "catalog.dir must not be empty when catalog.source is yaml")
		}
	case SourcePostgres:
	default:
		errs = append(errs, fmt.Sprintf("catalog.source must be one of [yaml, postgres], got %q", c.Source))
	}
	seen := make(map[string]bool, len(c.ShopTypes))
	for i, st := range c.ShopTypes {
		if st.ID == "" {
			errs = append(errs, fmt.Sprintf("catalog.shop_types[%d].id must not be empty", i))
			continue
		}
		if seen[st.ID] {
			errs = append(errs, fmt.Sprintf("catalog.shop_types[%d].id %q is duplicated", i, st.ID))
		}
		seen[st.ID] = true
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGeneration(g GenerationConfig) error {
	var errs []string
	if g.VarietyChance < 0 || g.VarietyChance > 1 {
		errs = append(errs, fmt.Sprintf("generation.variety_chance must be within [0, 1], got %g", g.VarietyChance))
	}
	if g.BudgetOverflow < 1 {
		errs = append(errs, fmt.Sprintf("generation.budget_overflow must be >= 1, got %g", g.BudgetOverflow))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with HOARD_ prefix
	v.SetEnvPrefix("HOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "hoard")
	v.SetDefault("database.password", "hoard")
	v.SetDefault("database.name", "hoard")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("catalog.source", SourceYAML)
	v.SetDefault("catalog.dir", "content/items")

	v.SetDefault("generation.variety_chance", catalog.DefaultVarietyChance)
	v.SetDefault("generation.budget_overflow", shop.DefaultBudgetOverflow)
}

// Tuning converts the generation settings into shop generator tuning.
func (g GenerationConfig) Tuning() shop.Tuning {
	return shop.Tuning{VarietyChance: g.VarietyChance, BudgetOverflow: g.BudgetOverflow}
}
