// Package config loads settings for the todo binaries from layered sources:
// defaults, configs/base.yaml, configs/{profile}.yaml and APP_* environment
// variables.
package config

import "time"

// Config is the union of every binary's settings. Each binary reads the
// sections it needs.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Web       ServerConfig    `koanf:"web"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Store     StoreConfig     `koanf:"store"`
	TUI       TUIConfig       `koanf:"tui"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig is an HTTP listener. server is the JSON API, web the
// browser front-end.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the front-ends' gateway to the JSON API.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is an exponential backoff policy. MaxAttempts of 1 disables
// retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig caps outbound requests. RequestsPerSecond of 0 disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// StoreConfig configures the SQLite database behind the JSON API.
type StoreConfig struct {
	// Path is a file path or ":memory:".
	Path string `koanf:"path"`
	// SeedOnReset loads the sample todos after a reset; otherwise reset
	// leaves the list empty.
	SeedOnReset bool `koanf:"seed_on_reset"`
	// SeedOnEmpty loads the sample todos into a new, empty database.
	SeedOnEmpty bool `koanf:"seed_on_empty"`
}

// TUIConfig configures the terminal front-end. Its log goes to LogFile
// because the terminal belongs to the UI.
type TUIConfig struct {
	LogFile        string        `koanf:"log_file"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
