package acl

import "context"

// Name identifies the gateway in the readiness report.
func (c *TodoClient) Name() string {
	return "todo-api"
}

// HealthCheck reports the API as unhealthy while the client's circuit
// breaker is open or half-open. No request is made.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
