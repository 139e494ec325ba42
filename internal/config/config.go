package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigPathEnv names the environment variable that points at a config file
const ConfigPathEnv = "PLANES_INFO_CONFIG_PATH"

// Config holds all configuration for the catalog
type Config struct {
	DBPath        string // SQLite snapshot of the catalog; empty disables it
	DatasetPath   string // JSON dataset replacing the embedded one; empty uses the embedded one
	SeedBatchSize int    // records per transaction when seeding the snapshot
	Log           LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string
	Format     string
	File       string // empty logs to stderr
	MaxSizeMB  int
	MaxBackups int
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("db_path", "")
	v.SetDefault("dataset_path", "")
	v.SetDefault("seed_batch_size", 500)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 16)
	v.SetDefault("log.max_backups", 3)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/planes_info")
	v.AddConfigPath(".")

	if configPath := os.Getenv(ConfigPathEnv); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Read config file (if it exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - defaults + env vars apply
	}

	v.SetEnvPrefix("PLANES_INFO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DBPath:        v.GetString("db_path"),
		DatasetPath:   v.GetString("dataset_path"),
		SeedBatchSize: v.GetInt("seed_batch_size"),
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.SeedBatchSize <= 0 {
		return fmt.Errorf("seed_batch_size must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	if cfg.Log.File != "" {
		if cfg.Log.MaxSizeMB <= 0 {
			return fmt.Errorf("log.max_size_mb must be greater than 0")
		}
		if cfg.Log.MaxBackups < 0 {
			return fmt.Errorf("log.max_backups must not be negative")
		}
	}

	return nil
}
