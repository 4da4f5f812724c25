// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BANKSTMT_LOG_LEVEL.
const EnvPrefix = "BANKSTMT"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Output struct {
		Format     string `mapstructure:"format" yaml:"format"`
		Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	} `mapstructure:"output" yaml:"output"`

	Parse struct {
		Validate bool `mapstructure:"validate" yaml:"validate"`
	} `mapstructure:"parse" yaml:"parse"`

	API struct {
		Address     string `mapstructure:"address" yaml:"address"`
		BodyLimitMB int    `mapstructure:"body_limit_mb" yaml:"body_limit_mb"`
	} `mapstructure:"api" yaml:"api"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return load("")
}

// InitializeConfigFromFile behaves like InitializeConfig but reads the given
// file instead of searching the default locations. A missing file is an error.
func InitializeConfigFromFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.bank-statement")
		v.AddConfigPath(".bank-statement")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless explicitly given)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
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

// Default returns the built-in defaults, ignoring config files and the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return &config
}

// Validate checks the configuration after it has been changed in code, for
// example by command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("output.format", "csv")
	v.SetDefault("output.delimiter", ",")
	v.SetDefault("output.date_format", "2006-01-02")

	v.SetDefault("parse.validate", false)

	v.SetDefault("api.address", ":8080")
	v.SetDefault("api.body_limit_mb", 10)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	switch strings.ToLower(config.Output.Format) {
	case "csv", "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid output format: %s (must be 'csv', 'json' or 'yaml')", config.Output.Format)
	}

	if utf8.RuneCountInString(config.Output.Delimiter) != 1 {
		return fmt.Errorf("output delimiter must be a single character, got: %s", config.Output.Delimiter)
	}

	if config.Output.DateFormat == "" {
		return fmt.Errorf("output.date_format must not be empty")
	}

	if config.API.BodyLimitMB < 1 || config.API.BodyLimitMB > 1024 {
		return fmt.Errorf("api.body_limit_mb must be between 1 and 1024, got: %d", config.API.BodyLimitMB)
	}

	return nil
}

// CSVDelimiter returns the input CSV delimiter as a rune.
func (c *Config) CSVDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// OutputDelimiter returns the output CSV delimiter as a rune.
func (c *Config) OutputDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Output.Delimiter)
	return r
}
