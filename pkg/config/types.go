package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Backup       BackupConfig    `mapstructure:"backup"`
	Download     DownloadConfig  `mapstructure:"download"`
	Feed         FeedConfig      `mapstructure:"feed"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Server       ServerConfig    `mapstructure:"server"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// BackupConfig contains the backup pipeline inputs
type BackupConfig struct {
	FeedURL   string `mapstructure:"feed_url"`
	OutputDir string `mapstructure:"output_dir"`
}

// DownloadConfig contains asset download settings
type DownloadConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	MaxSize   int64         `mapstructure:"max_size"`
	RateLimit float64       `mapstructure:"rate_limit"`
}

// FeedConfig contains feed fetch settings
type FeedConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig contains archive index settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// RateLimitConfig contains archive API rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}
