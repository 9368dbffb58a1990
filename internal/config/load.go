package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "FLASHNOTES"

// Default values.
const (
	DefaultDataFile   = "data/flashnotes.json"
	DefaultLogLevel   = "warn"
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
)

// Load configuration from environment variables and optionally a config file.
// When configFile is empty, flashnotes.{yaml,toml,json} is looked up in the
// working directory and in $HOME/.config/flashnotes; a missing file is not an
// error. Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.data_file", DefaultDataFile)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", DefaultMaxSizeMB)
	v.SetDefault("log.max_backups", DefaultMaxBackups)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("flashnotes")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "flashnotes"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
