package config

const (
	defaultServerPort = 8080
	defaultWebPort    = 3000

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults is the lowest configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "5s",

		"web.host":            "0.0.0.0",
		"web.port":            defaultWebPort,
		"web.read_timeout":    "5s",
		"web.write_timeout":   "15s",
		"web.idle_timeout":    "120s",
		"web.request_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "5s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"store.path":          "data/todos.db",
		"store.seed_on_reset": true,
		"store.seed_on_empty": true,

		"tui.log_file":        "data/todo-tui.log",
		"tui.request_timeout": "10s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-list",
	}
}
