// Package config loads runtime configuration for the server and CLI client.
// Values come from .pokedex.yaml, POKEDEX_* env vars and CLI flags, in
// increasing order of precedence.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. POKEDEX_SERVER_PORT
const EnvPrefix = "POKEDEX"

// ServerConfig holds gRPC server settings
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// PokeAPIConfig holds upstream settings
type PokeAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// ClientConfig holds CLI client settings
type ClientConfig struct {
	ServerAddr string `mapstructure:"server_addr"`
}

// Config holds all runtime configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Client  ClientConfig  `mapstructure:"client"`
	// Locales are the preferred upstream locales when a request names none
	Locales  []string `mapstructure:"locales"`
	PageSize int      `mapstructure:"page_size"`
	LogLevel string   `mapstructure:"log_level"`
}

// Init points viper at the config file and environment. An empty path
// searches for .pokedex.yaml in the working and home directories.
func Init(path, home string) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(".pokedex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home != "" {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// No config file is fine; defaults apply
	_ = viper.ReadInConfig() // nolint:errcheck
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (*Config, error) {
	viper.SetDefault("server.port", 50051)
	viper.SetDefault("server.shutdown_timeout", 30*time.Second)
	viper.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2/")
	viper.SetDefault("client.server_addr", "localhost:50051")
	viper.SetDefault("locales", []string{"zh-Hans", "zh-Hant"})
	viper.SetDefault("page_size", 20)
	viper.SetDefault("log_level", "info")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and the log level
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	errors.ValidateRange("page_size", c.PageSize, 1, 100, vb)
	if c.PokeAPI.BaseURL == "" {
		vb.RequiredField("pokeapi.base_url")
	}
	if _, err := c.SlogLevel(); err != nil {
		vb.Fieldf("log_level", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
