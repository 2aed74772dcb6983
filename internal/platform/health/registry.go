// Package health keeps the set of dependency checks behind the readiness probe.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/go-todo-list/internal/platform/fanout"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// maxConcurrentChecks bounds how many checks a single probe runs at once.
const maxConcurrentChecks = 4

// Registry implements [ports.HealthRegistry]. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns the results
// keyed by checker name; nil means healthy. When two checkers share a name
// the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	names := make([]string, len(checkers))
	for i, c := range checkers {
		names[i] = c.Name()
	}

	outcomes := fanout.Run(ctx, maxConcurrentChecks, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		return struct{}{}, c.HealthCheck(ctx)
	})

	results := make(map[string]error, len(checkers))
	for i, o := range outcomes {
		results[names[i]] = o.Err
	}
	return results
}
