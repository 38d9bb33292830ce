package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/tabkit"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tabkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func validConfig() *Config {
	return &Config{
		Delimiter: ",",
		KeyName:   DefaultKeyName,
		ValueName: DefaultValueName,
		LogLevel:  DefaultLogLevel,
	}
}

// TestLoadConfig tests reading settings from an explicit file.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
delimiter: "|"
format: markdown
key_name: name
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "|", cfg.Delimiter)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "name", cfg.KeyName)
	assert.Equal(t, DefaultValueName, cfg.ValueName, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestLoadConfigMissingExplicitFile tests that an explicit path must exist.
func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

// TestLoadConfigInvalidYAML tests that malformed files are rejected.
func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(writeConfig(t, "delimiter: [unclosed"))
	require.Error(t, err)
}

// TestLoadConfigDefaults tests that a missing default file yields defaults.
//
// Not parallel: changes the working directory and environment.
func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDelimiter, cfg.Delimiter)
	assert.Empty(t, cfg.Format)
	assert.Equal(t, DefaultKeyName, cfg.KeyName)
	assert.Equal(t, DefaultValueName, cfg.ValueName)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// TestLoadConfigEnvOverride tests TABKIT_* environment variables.
//
// Not parallel: t.Setenv forbids it.
func TestLoadConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TABKIT_DELIMITER", ";")
	t.Setenv("TABKIT_FORMAT", "json")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "json", cfg.Format)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "empty delimiter", mutate: func(c *Config) { c.Delimiter = "" }, wantErr: tabkit.ErrEmptyDelimiter},
		{name: "empty key name", mutate: func(c *Config) { c.KeyName = " " }, wantErr: tabkit.ErrEmptyColumnName},
		{name: "empty value name", mutate: func(c *Config) { c.ValueName = "" }, wantErr: tabkit.ErrEmptyColumnName},
		{name: "same names", mutate: func(c *Config) { c.ValueName = c.KeyName }, wantErr: ErrSameColumnNames},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: tabkit.ErrUnsupportedFormat},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: ErrUnknownLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, ValidateConfig(cfg), tt.wantErr)
		})
	}
}

// TestValidateConfigDerivedFields tests the parsed fields.
func TestValidateConfigDerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Delimiter = "\t"
	cfg.LogLevel = "WARN"
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, tabkit.Delimited("\t"), cfg.ParsedFormat)
	assert.True(t, cfg.DelimitedOutput())
	assert.Equal(t, zapcore.WarnLevel, cfg.ParsedLogLevel)

	cfg.Format = "grid"
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, tabkit.Grid, cfg.ParsedFormat)
	assert.False(t, cfg.DelimitedOutput())
}
