package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks every section and joins the failures.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate("server"),
		c.Web.validate("web"),
		c.Log.validate(),
		c.Client.validate(),
		c.Store.validate(),
		c.TUI.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate(section string) error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s.port must be between 1 and 65535, got %d", section, s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.read_timeout must be positive", section))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.write_timeout must be positive", section))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%s.request_timeout must not be negative", section))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("client.base_url must be an absolute URL, got %q", cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	if s.Path == "" {
		return errors.New("store.path must not be empty")
	}
	return nil
}

func (t *TUIConfig) validate() error {
	var errs []error

	if t.LogFile == "" {
		errs = append(errs, errors.New("tui.log_file must not be empty"))
	}
	if t.RequestTimeout <= 0 {
		errs = append(errs, errors.New("tui.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
