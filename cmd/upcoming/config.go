package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/senior-finance/backend/internal/types"
	"github.com/spf13/viper"
)

// config of the command. Every key can be set in the config file or with
// an environment variable prefixed with UPCOMING_, e.g. UPCOMING_API_URL.
type config struct {
	APIURL   string        `mapstructure:"api_url"`
	AsOf     string        `mapstructure:"as_of"`   // YYYY-MM-DD, defaults to today
	Budgets  bool          `mapstructure:"budgets"` // Show the budget status of the month
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
}

// loadConfig reads the config file, if there is one, and the environment.
//
// The file is read from UPCOMING_CONFIG or $HOME/.config/upcoming/config.toml.
// A missing file in the default location is not an error.
func loadConfig() (config, error) {
	v := viper.New()

	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("as_of", "")
	v.SetDefault("budgets", true)
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("log_level", "warn")

	v.SetConfigType("toml")

	path := os.Getenv("UPCOMING_CONFIG")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "upcoming"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("UPCOMING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// asOf returns the reference date, defaulting to today.
func (c config) asOf() (types.Date, error) {
	if c.AsOf == "" {
		return types.Today(), nil
	}

	d, err := types.ParseDate(c.AsOf)
	if err != nil {
		return types.Date{}, fmt.Errorf("as_of must be a date in YYYY-MM-DD format: %w", err)
	}

	return d, nil
}

func (c config) level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
