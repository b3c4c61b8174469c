package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// envKeyReplacer maps nested config keys to env var segments
// (backup.feed_url -> PODBACKUP_BACKUP_FEED_URL)
func envKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variables override file values
		viper.SetEnvPrefix("PODBACKUP")
		viper.SetEnvKeyReplacer(envKeyReplacer())
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine; defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetInt64("download.max_size") < 0 {
		return fmt.Errorf("download.max_size must not be negative")
	}

	if viper.GetFloat64("download.rate_limit") < 0 {
		return fmt.Errorf("download.rate_limit must not be negative")
	}

	// Auto-correct a non-positive download timeout
	if viper.GetDuration("download.timeout") <= 0 {
		viper.Set("download.timeout", 5*time.Minute)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Backup defaults; feed_url has no sensible default and must come from
	// config, env, or the --feed flag
	viper.SetDefault("backup.feed_url", "")
	viper.SetDefault("backup.output_dir", "./backup")

	// Download defaults
	viper.SetDefault("download.timeout", 5*time.Minute)
	viper.SetDefault("download.user_agent", "PodcastBackup/1.0")
	viper.SetDefault("download.max_size", 500*1024*1024)
	viper.SetDefault("download.rate_limit", 0.0)

	// Feed defaults
	viper.SetDefault("feed.timeout", 30*time.Second)

	// Database defaults
	viper.SetDefault("database.path", "./data/archive.db")
	viper.SetDefault("database.verbose", false)

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Rate limiting defaults for the archive API
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 20)
	viper.SetDefault("rate_limiting.burst", 40)
}
