package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

// isolate clears QUICKLOG_* variables and moves into an empty directory with an empty HOME.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		"QUICKLOG_LOG_LEVEL",
		"QUICKLOG_LOG_FORMAT",
		"QUICKLOG_CURRENCY_DEFAULT",
		"QUICKLOG_CATEGORIES_FILE",
		"QUICKLOG_LEDGER_FILE",
		"QUICKLOG_CSV_DELIMITER",
		"QUICKLOG_BATCH_WORKERS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "GBP", config.Currency.Default)
	assert.Equal(t, "", config.Categories.File)
	assert.Equal(t, "ledger.yaml", config.Ledger.File)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, ',', config.Delimiter())
	assert.Equal(t, 4, config.Batch.Workers)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	testEnvVars := map[string]string{
		"QUICKLOG_LOG_LEVEL":        "debug",
		"QUICKLOG_LOG_FORMAT":       "json",
		"QUICKLOG_CURRENCY_DEFAULT": "usd",
		"QUICKLOG_LEDGER_FILE":      "/tmp/ledger.yaml",
		"QUICKLOG_CSV_DELIMITER":    ";",
		"QUICKLOG_BATCH_WORKERS":    "16",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "USD", config.Currency.Default)
	assert.Equal(t, "/tmp/ledger.yaml", config.Ledger.File)
	assert.Equal(t, ';', config.Delimiter())
	assert.Equal(t, 16, config.Batch.Workers)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
  format: "json"
categories:
  file: "categories.yaml"
csv:
  delimiter: "|"
batch:
  workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "categories.yaml", config.Categories.File)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 2, config.Batch.Workers)
	assert.Equal(t, "GBP", config.Currency.Default)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
batch:
  workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("QUICKLOG_LOG_LEVEL", "error")
	t.Setenv("QUICKLOG_BATCH_WORKERS", "8")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 8, config.Batch.Workers)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  file: data/mine.yaml\n"), 0600))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/mine.yaml", config.Ledger.File)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("QUICKLOG_CURRENCY_DEFAULT", "XYZ")

	_, err := InitializeConfig()
	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "currency.default", ve.Field)
}

func validConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.Currency.Default = "GBP"
	config.Ledger.File = "ledger.yaml"
	config.CSV.Delimiter = ","
	config.Batch.Workers = 4
	return config
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		field        string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "invalid" }, "log.level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"unknown currency", func(c *Config) { c.Currency.Default = "ABC" }, "currency.default"},
		{"empty ledger file", func(c *Config) { c.Ledger.File = " " }, "ledger.file"},
		{"long delimiter", func(c *Config) { c.CSV.Delimiter = "abc" }, "csv.delimiter"},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }, "csv.delimiter"},
		{"no workers", func(c *Config) { c.Batch.Workers = 0 }, "batch.workers"},
		{"too many workers", func(c *Config) { c.Batch.Workers = 1000 }, "batch.workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)

			err := validateConfig(config)
			var ve *apperror.ValidationError
			require.True(t, errors.As(err, &ve), "expected a ValidationError, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateConfig_NormalizesCurrency(t *testing.T) {
	config := validConfig()
	config.Currency.Default = "eur"
	config.CSV.Delimiter = "§"

	require.NoError(t, validateConfig(config))
	assert.Equal(t, "EUR", config.Currency.Default)
	assert.Equal(t, '§', config.Delimiter())
}

func TestNewLogger(t *testing.T) {
	config := validConfig()
	config.Log.Format = "json"
	assert.NotNil(t, NewLogger(config))
}

func TestLoadEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("QUICKLOG_TEST_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("QUICKLOG_TEST_FROM_DOTENV"))

	require.NoError(t, LoadEnv(), "a missing .env is not an error")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUICKLOG_TEST_FROM_DOTENV=yes\n"), 0600))
	require.NoError(t, LoadEnv())
	assert.Equal(t, "yes", os.Getenv("QUICKLOG_TEST_FROM_DOTENV"))
}

func TestLoadEnvOrWarn(t *testing.T) {
	dir := isolate(t)
	logger := logging.NewMockLogger()

	LoadEnvOrWarn(logger)
	assert.Empty(t, logger.GetEntries(), "a missing .env is silent")

	// a directory named .env cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0750))
	require.Error(t, LoadEnv())

	LoadEnvOrWarn(logger)
	assert.True(t, logger.HasEntry("WARN", "Could not load .env file, continuing with the environment as is"))
}
