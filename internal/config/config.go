package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env         string `mapstructure:"app_env"`
	ListenAddr  string `mapstructure:"listen_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	// StoreDriver selects the reliability store. Empty picks postgres when
	// DatabaseURL is set and sqlite otherwise.
	StoreDriver    string        `mapstructure:"store_driver"`
	SQLitePath     string        `mapstructure:"sqlite_path"`
	RulesFile      string        `mapstructure:"rules_file"`
	ReloadInterval time.Duration `mapstructure:"reload_interval"`
	LogLevel       string        `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("store_driver", "")
	v.SetDefault("sqlite_path", "data/rsp.db")
	v.SetDefault("rules_file", "")
	v.SetDefault("reload_interval", "5m")
	v.SetDefault("log_level", "info")
}

// Load reads configuration from defaults, an optional config file and the
// environment (APP_ENV, LISTEN_ADDR, DATABASE_URL, ...), in increasing order
// of precedence. When path is empty, ./sourcescore.{yaml,json,toml} is used
// if present.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("sourcescore")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Driver resolves StoreDriver, applying the DatabaseURL fallback.
func (c Config) Driver() string {
	if c.StoreDriver != "" {
		return strings.ToLower(c.StoreDriver)
	}
	if c.DatabaseURL != "" {
		return DriverPostgres
	}
	return DriverSQLite
}

func (c Config) Validate() error {
	switch c.Driver() {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.ReloadInterval < 0 {
		return fmt.Errorf("reload interval must not be negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}

// Production reports whether the service runs outside development.
func (c Config) Production() bool {
	return c.Env != "development" && c.Env != "test"
}
