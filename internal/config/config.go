// Package config loads application settings from an optional inventory.yaml
// in the working directory, overridable through INVENTORY_* environment
// variables.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string `mapstructure:"database_url"`
	ImportFile  string `mapstructure:"import_file"`
	BackupFile  string `mapstructure:"backup_file"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// Load reads the configuration. database_url is the only required setting.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("inventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Defaults double as the key registry for env overrides.
	v.SetDefault("database_url", "")
	v.SetDefault("import_file", "inventory.csv")
	v.SetDefault("backup_file", "backup.csv")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("inventory")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database_url is not set (INVENTORY_DATABASE_URL or inventory.yaml)")
	}
	return cfg, nil
}
