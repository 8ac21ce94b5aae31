// Package config loads the application configuration from an optional
// yaml file with environment-variable overrides (prefix PRACTICE_, e.g.
// PRACTICE_SERVER_ADDR).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig defines the HTTP listen address.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DatabaseConfig defines the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig defines log output settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.path", defaultDBPath())
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("PRACTICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return &cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "practice.db"
	}
	return filepath.Join(home, ".practice-tracker", "practice.db")
}
