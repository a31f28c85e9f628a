// Package config loads settings from flags, environment and an optional
// config file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SFX_LIBRARY_DB_PATH.
const EnvPrefix = "SFX_LIBRARY"

type Config struct {
	DBPath string    `mapstructure:"db_path"`
	Log    LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// DefaultDir is where the database and config file live unless overridden.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sfx-library")
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("db_path", filepath.Join(DefaultDir(), "library.db"))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")
}

// Load reads configuration into a Config. configFile may be empty, in which
// case config.yaml is looked up in DefaultDir; a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Kept for compatibility with the short variable name.
	_ = v.BindEnv("db_path", EnvPrefix+"_DB_PATH", EnvPrefix+"_DB")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
