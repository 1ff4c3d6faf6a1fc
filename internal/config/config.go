package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment
// variables.
type Config struct {
	Env        string `mapstructure:"env"`         // current application environment (local, dev, prod etc)
	ListenAddr string `mapstructure:"listen_addr"` // address the HTTP server binds to
	DB         DB     `mapstructure:"database"`    // database configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	Path string `mapstructure:"path"` // path to the SQLite database file
}

// Load reads configuration from config files and environment variables.
// Every key has a default, so a bare environment works out of the box.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database.path", "scores.db")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("listen_addr", "LISTEN_ADDR")
	_ = v.BindEnv("database.path", "DATABASE_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
