// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/currencyutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. QUICKLOG_LEDGER_FILE.
const EnvPrefix = "QUICKLOG"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Currency struct {
		Default string `mapstructure:"default" yaml:"default"`
	} `mapstructure:"currency" yaml:"currency"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Ledger struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"ledger" yaml:"ledger"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig loads configuration from the standard locations.
func InitializeConfig() (*Config, error) {
	return Load("")
}

// Load initializes Viper configuration with hierarchical loading. When
// configFile is empty, config.yaml is searched for in $HOME/.quicklog,
// .quicklog and the working directory; a missing file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.quicklog")
		v.AddConfigPath(".quicklog")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("currency.default", "GBP")
	v.SetDefault("categories.file", "")
	v.SetDefault("ledger.file", "ledger.yaml")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("batch.workers", 4)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return &apperror.ValidationError{Field: "log.level", Reason: fmt.Sprintf("unknown level %q", config.Log.Level)}
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return &apperror.ValidationError{Field: "log.format", Reason: fmt.Sprintf("%q (must be 'text' or 'json')", config.Log.Format)}
	}

	config.Currency.Default = strings.ToUpper(config.Currency.Default)
	if !currencyutils.IsKnownCurrency(config.Currency.Default) {
		return &apperror.ValidationError{Field: "currency.default", Reason: fmt.Sprintf("unknown currency code %q", config.Currency.Default)}
	}

	if strings.TrimSpace(config.Ledger.File) == "" {
		return &apperror.ValidationError{Field: "ledger.file", Reason: "must not be empty"}
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return &apperror.ValidationError{Field: "csv.delimiter", Reason: fmt.Sprintf("must be a single character, got: %q", config.CSV.Delimiter)}
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 256 {
		return &apperror.ValidationError{Field: "batch.workers", Reason: fmt.Sprintf("must be between 1 and 256, got: %d", config.Batch.Workers)}
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}
