// Package config loads CLI settings.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file,
// SNL_* environment variables, then command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	// DefaultFileName is the config file looked up in the working directory.
	DefaultFileName = "snakesladders"
	fileType        = "yaml"

	// Config keys.
	KeyLogLevel     = "log_level"
	KeyWorkers      = "workers"
	KeyDBPath       = "db_path"
	KeyRecord       = "record"
	KeyOTelEndpoint = "otel_endpoint"
)

// ErrInvalid indicates a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every CLI setting.
type Config struct {
	LogLevel     string `mapstructure:"log_level" env:"SNL_LOG_LEVEL"`
	Workers      int    `mapstructure:"workers" env:"SNL_WORKERS"`
	DBPath       string `mapstructure:"db_path" env:"SNL_DB_PATH"`
	Record       bool   `mapstructure:"record" env:"SNL_RECORD"`
	OTelEndpoint string `mapstructure:"otel_endpoint" env:"SNL_OTEL_ENDPOINT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Workers:  4,
		DBPath:   "snakesladders.db",
	}
}

// Load resolves defaults, the config file and the environment.
// An empty path looks for snakesladders.yaml in the working directory; a
// missing default file is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault(KeyLogLevel, cfg.LogLevel)
	v.SetDefault(KeyWorkers, cfg.Workers)
	v.SetDefault(KeyDBPath, cfg.DBPath)
	v.SetDefault(KeyRecord, cfg.Record)
	v.SetDefault(KeyOTelEndpoint, cfg.OTelEndpoint)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultFileName)
		v.SetConfigType(fileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d must be positive", ErrInvalid, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}
