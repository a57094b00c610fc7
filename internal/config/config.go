package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type RemoteConfig struct {
	// Dir is the directory holding exported remote row dumps
	// (receipt.json, device.json, household_bill.json).
	Dir string `mapstructure:"dir"`
}

type SyncConfig struct {
	Workers         int `mapstructure:"workers"`
	QueueSize       int `mapstructure:"queue_size"`
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Log      LogConfig      `mapstructure:"log"`
}

// Load reads configuration from the given yaml file, with environment
// overrides (prefix RSYNC, e.g. RSYNC_DATABASE_PATH). An empty path loads
// config.yaml from the working directory; a missing file is not an error,
// defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "data/racun.db")
	v.SetDefault("database.log_mode", false)
	v.SetDefault("remote.dir", "data/remote")
	v.SetDefault("sync.workers", 2)
	v.SetDefault("sync.queue_size", 32)
	v.SetDefault("sync.interval_minutes", 15)
	v.SetDefault("log.level", "info")

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("RSYNC")
	// Nested keys use dots; env var names cannot, so database.path must
	// resolve from RSYNC_DATABASE_PATH.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// time.NewTicker panics on a non-positive period.
	if c.Sync.IntervalMinutes < 1 {
		c.Sync.IntervalMinutes = 1
	}
	return &c, nil
}
