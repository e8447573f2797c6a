package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Coach   CoachConfig   `mapstructure:"coach"`
	Review  ReviewConfig  `mapstructure:"review"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// BackendConfig holds settings for the upstream job-tracking REST API.
type BackendConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
	MaxRetries int    `mapstructure:"max_retries"`
}

// CoachConfig holds settings for the generative-AI collaborator.
type CoachConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// ReviewConfig bounds the job-review poll sequence.
type ReviewConfig struct {
	Interval    int `mapstructure:"interval"` // milliseconds
	MaxAttempts int `mapstructure:"max_attempts"`
}

type CacheConfig struct {
	TTL     int `mapstructure:"ttl"`     // seconds
	Cleanup int `mapstructure:"cleanup"` // seconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BackendTimeout returns the upstream request timeout as a duration.
func (b BackendConfig) BackendTimeout() time.Duration {
	return time.Duration(b.Timeout) * time.Millisecond
}

// PollInterval returns the review poll interval as a duration.
func (r ReviewConfig) PollInterval() time.Duration {
	return time.Duration(r.Interval) * time.Millisecond
}

func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

func (c CacheConfig) CleanupDuration() time.Duration {
	return time.Duration(c.Cleanup) * time.Second
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
