package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"supplychain/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("should use defaults", func(t *testing.T) {
		cfg, err := cmd.LoadConfig(cmd.LoadOptions{Lookup: lookupFrom(nil)})

		require.NoError(t, err)
		assert.Equal(t, cmd.DefaultConfig(), cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("should layer yaml, dotenv and environment", func(t *testing.T) {
		yamlFile := writeFile(t, "config.yaml", "http_port: \"9000\"\nstorage_driver: memory\nlog_level: debug\ndb_name: from-yaml\n")
		envFile := writeFile(t, ".env", "HTTP_PORT=9100\nDB_NAME=from-dotenv\n")

		cfg, err := cmd.LoadConfig(cmd.LoadOptions{
			ConfigFile: yamlFile,
			EnvFile:    envFile,
			Lookup:     lookupFrom(map[string]string{"DB_NAME": "from-env"}),
		})

		require.NoError(t, err)
		assert.Equal(t, "9100", cfg.HTTPPort)
		assert.Equal(t, cmd.DriverMemory, cfg.StorageDriver)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "from-env", cfg.DBName)
	})

	t.Run("should tolerate a missing dotenv file", func(t *testing.T) {
		_, err := cmd.LoadConfig(cmd.LoadOptions{
			EnvFile: filepath.Join(t.TempDir(), "missing.env"),
			Lookup:  lookupFrom(nil),
		})

		require.NoError(t, err)
	})

	t.Run("should fail on a missing yaml file", func(t *testing.T) {
		_, err := cmd.LoadConfig(cmd.LoadOptions{
			ConfigFile: filepath.Join(t.TempDir(), "missing.yaml"),
			Lookup:     lookupFrom(nil),
		})

		require.Error(t, err)
	})

	t.Run("should allow disabling the audit from the environment", func(t *testing.T) {
		cfg, err := cmd.LoadConfig(cmd.LoadOptions{Lookup: lookupFrom(map[string]string{"AUDIT_SCHEDULE": ""})})

		require.NoError(t, err)
		assert.Empty(t, cfg.AuditSchedule)
	})
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*cmd.Config)
		errMsg string
	}{
		{"unknown driver", func(c *cmd.Config) { c.StorageDriver = "redis" }, "STORAGE_DRIVER"},
		{"sqlite without path", func(c *cmd.Config) { c.SQLitePath = "" }, "SQLITE_PATH"},
		{"postgres without database", func(c *cmd.Config) { c.StorageDriver = cmd.DriverPostgres }, "DB_NAME"},
		{"bad log level", func(c *cmd.Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		{"empty port", func(c *cmd.Config) { c.HTTPPort = "" }, "HTTP_PORT"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := cmd.DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := cmd.DefaultConfig()
	cfg.LogLevel = "warn"

	level, err := cfg.Level()

	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := cmd.DefaultConfig()
	cfg.DBUser, cfg.DBPassword, cfg.DBName = "app", "secret", "supply"

	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=supply sslmode=disable", cfg.PostgresDSN())
}

func TestConfig_Set(t *testing.T) {
	cfg := cmd.DefaultConfig()

	require.NoError(t, cfg.Set("SQLITE_PATH", "/tmp/x.db"))
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	require.Error(t, cfg.Set("NOPE", "x"))
}
