package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPPort      string `yaml:"http_port"`
	StorageDriver string `yaml:"storage_driver"`
	SQLitePath    string `yaml:"sqlite_path"`
	DBHost        string `yaml:"db_host"`
	DBPort        string `yaml:"db_port"`
	DBUser        string `yaml:"db_user"`
	DBPassword    string `yaml:"db_password"`
	DBName        string `yaml:"db_name"`
	DBSslMode     string `yaml:"db_sslmode"`
	AuditSchedule string `yaml:"audit_schedule"`
	LogLevel      string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:      "8080",
		StorageDriver: DriverSQLite,
		SQLitePath:    "data/supplychain.db",
		DBHost:        "localhost",
		DBPort:        "5432",
		DBSslMode:     "disable",
		AuditSchedule: "@every 5m",
		LogLevel:      "info",
	}
}

// keys maps each environment variable to the field it sets.
func (c *Config) keys() map[string]*string {
	return map[string]*string{
		"HTTP_PORT":      &c.HTTPPort,
		"STORAGE_DRIVER": &c.StorageDriver,
		"SQLITE_PATH":    &c.SQLitePath,
		"DB_HOST":        &c.DBHost,
		"DB_PORT":        &c.DBPort,
		"DB_USER":        &c.DBUser,
		"DB_PASSWORD":    &c.DBPassword,
		"DB_NAME":        &c.DBName,
		"DB_SSLMODE":     &c.DBSslMode,
		"AUDIT_SCHEDULE": &c.AuditSchedule,
		"LOG_LEVEL":      &c.LogLevel,
	}
}

// LoadOptions selects the configuration sources. Lookup defaults to os.LookupEnv.
type LoadOptions struct {
	ConfigFile string
	EnvFile    string
	Lookup     func(string) (string, bool)
}

// LoadConfig layers defaults, the YAML file, the .env file and the environment,
// later sources winning. A missing .env file is not an error; a missing YAML file is.
func LoadConfig(opts LoadOptions) (Config, error) {
	cfg := DefaultConfig()

	if opts.ConfigFile != "" {
		raw, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", opts.ConfigFile, err)
		}
	}

	dotenv := map[string]string{}
	if opts.EnvFile != "" {
		values, err := godotenv.Read(opts.EnvFile)
		switch {
		case err == nil:
			dotenv = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read env file %s: %w", opts.EnvFile, err)
		}
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for key, field := range cfg.keys() {
		if v, ok := lookup(key); ok {
			*field = v
		} else if v, ok := dotenv[key]; ok {
			*field = v
		}
	}

	return cfg, nil
}

// Set overrides one key, as given on the command line.
func (c *Config) Set(key, value string) error {
	field, ok := c.keys()[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	*field = value
	return nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DBName == "" {
			errs = append(errs, errors.New("DB_NAME is required for the postgres driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q must be one of %s, %s, %s",
			c.StorageDriver, DriverSQLite, DriverPostgres, DriverMemory))
	}
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// PostgresDSN builds the gorm postgres connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
