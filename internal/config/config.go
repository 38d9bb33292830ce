// Package config loads and validates the settings of the tabkit command line
// tool from a YAML file, TABKIT_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/tabkit"
	"github.com/bjaus/tabkit/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// Delimiter separates fields of delimited input and output.
	Delimiter string `mapstructure:"delimiter"`
	// Format is the output format name. Empty means delimited text using Delimiter.
	Format string `mapstructure:"format"`
	// KeyName is the key column name for mapping input.
	KeyName string `mapstructure:"key_name"`
	// ValueName is the value column name for mapping input.
	ValueName string `mapstructure:"value_name"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedFormat is the resolved output format.
	ParsedFormat tabkit.Format
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".tabkit.yaml"

	// EnvPrefix prefixes environment variables that override file settings.
	EnvPrefix = "TABKIT"

	// DefaultDelimiter is used when neither the file nor a flag sets one.
	DefaultDelimiter = ","

	// DefaultKeyName is the default key column name for mapping input.
	DefaultKeyName = "Key"

	// DefaultValueName is the default value column name for mapping input.
	DefaultValueName = "Value"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"
)

// Static error definitions for better error handling.
var (
	// ErrSameColumnNames indicates that key_name equals value_name.
	ErrSameColumnNames = errors.New("key_name and value_name must differ")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings. An empty filename reads
// DefaultConfigFilename and tolerates its absence; an explicit filename must
// exist.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()

	v.SetDefault("delimiter", DefaultDelimiter)
	v.SetDefault("format", "")
	v.SetDefault("key_name", DefaultKeyName)
	v.SetDefault("value_name", DefaultValueName)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	explicit := configFilename != ""
	if !explicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	if cfg.Delimiter == "" {
		return fmt.Errorf("invalid delimiter: %w", tabkit.ErrEmptyDelimiter)
	}

	if strings.TrimSpace(cfg.KeyName) == "" || strings.TrimSpace(cfg.ValueName) == "" {
		return fmt.Errorf("invalid key_name or value_name: %w", tabkit.ErrEmptyColumnName)
	}

	if cfg.KeyName == cfg.ValueName {
		return fmt.Errorf("%w: both are '%s'", ErrSameColumnNames, cfg.KeyName)
	}

	format := strings.TrimSpace(cfg.Format)
	if format == "" {
		cfg.ParsedFormat = tabkit.Delimited(cfg.Delimiter)
	} else {
		parsed, err := tabkit.ParseFormat(format)
		if err != nil {
			return fmt.Errorf("failed to parse format: %w", err)
		}

		cfg.ParsedFormat = parsed
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}

// DelimitedOutput reports whether the resolved format writes delimited text
// with cfg.Delimiter, the layout the mapping formatter produces directly.
func (c *Config) DelimitedOutput() bool {
	return c.ParsedFormat == tabkit.Delimited(c.Delimiter)
}
