// Package config loads service configuration from defaults, an optional YAML
// file and CONFHUB_* environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime settings of the conference service.
type Config struct {
	HTTPPort         int           `yaml:"httpPort"`
	SQLiteDSN        string        `yaml:"sqliteDsn"`
	LogLevel         string        `yaml:"logLevel"`
	CFPSweepSchedule string        `yaml:"cfpSweepSchedule"`
	ShutdownTimeout  time.Duration `yaml:"shutdownTimeout"`
}

func defaults() Config {
	return Config{
		HTTPPort:         8080,
		SQLiteDSN:        "file:conference-hub.db",
		LogLevel:         "info",
		CFPSweepSchedule: "@hourly",
		ShutdownTimeout:  10 * time.Second,
	}
}

// Load builds the configuration. When CONFHUB_CONFIG names a YAML file its
// values override the defaults, and individual environment variables override
// both.
func Load() (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFHUB_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("http port %d out of range", cfg.HTTPPort)
	}
	if strings.TrimSpace(cfg.SQLiteDSN) == "" {
		return Config{}, fmt.Errorf("sqlite dsn must not be empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("CONFHUB_HTTP_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CONFHUB_HTTP_PORT %q: %w", v, err)
		}
		cfg.HTTPPort = port
	}
	if v := strings.TrimSpace(os.Getenv("CONFHUB_SQLITE_DSN")); v != "" {
		cfg.SQLiteDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("CONFHUB_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("CONFHUB_CFP_SWEEP_SCHEDULE")); v != "" {
		cfg.CFPSweepSchedule = v
	}
	if v := strings.TrimSpace(os.Getenv("CONFHUB_SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid CONFHUB_SHUTDOWN_TIMEOUT %q", v)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
