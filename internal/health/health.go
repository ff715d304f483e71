// Package health owns process liveness: the standard gRPC health service and
// a named-probe checker that feeds HTTP readiness.
package health

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Register installs the standard gRPC health service on the server and
// returns its handle so startup can flip the serving status.
func Register(grpcServer *grpc.Server) *health.Server {
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	return healthServer
}

// Probe checks one dependency.
type Probe func(ctx context.Context) error

// Checker runs named dependency probes for readiness reporting.
type Checker struct {
	mu     sync.RWMutex
	probes map[string]Probe
}

// NewChecker builds an empty Checker.
func NewChecker() *Checker {
	return &Checker{probes: make(map[string]Probe)}
}

// Add registers a named probe. Re-adding a name replaces the probe.
func (c *Checker) Add(name string, probe Probe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes[name] = probe
}

// Check runs every probe and returns the failures by name. An empty map
// means every dependency answered.
func (c *Checker) Check(ctx context.Context) map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	failures := make(map[string]error)
	for name, probe := range c.probes {
		if err := probe(ctx); err != nil {
			failures[name] = err
		}
	}
	return failures
}

// Err folds the current failures into a single error, nil when ready.
// Failure names are sorted so the message is stable.
func (c *Checker) Err(ctx context.Context) error {
	failures := c.Check(ctx)
	if len(failures) == 0 {
		return nil
	}
	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, failures[name]))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
