package consul

import (
	"context"
	"time"

	"github.com/hashicorp/consul/api"
	"go.uber.org/zap"
)

// healthLister is the slice of the registrar the gate needs.
type healthLister interface {
	ListHealthy(ctx context.Context, serviceName string) ([]*api.ServiceEntry, error)
}

// HealthGate blocks registration pipelines until a freshly registered
// instance shows up healthy in Consul or a deadline passes.
type HealthGate struct {
	lister   healthLister
	interval time.Duration
	timeout  time.Duration
	log      *zap.Logger
}

// NewHealthGate builds a gate polling at interval with an overall timeout.
func NewHealthGate(lister healthLister, interval, timeout time.Duration, log *zap.Logger) *HealthGate {
	return &HealthGate{lister: lister, interval: interval, timeout: timeout, log: log}
}

// WaitForHealthy polls the healthy-instance list until the given service id
// appears with passing checks. Poll errors count as "not yet healthy" so a
// briefly unreachable Consul does not fail the registration outright.
// Returns false on timeout or when the caller's context is cancelled.
func (g *HealthGate) WaitForHealthy(ctx context.Context, serviceName, serviceID string) bool {
	deadline := time.NewTimer(g.timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		if g.isHealthy(ctx, serviceName, serviceID) {
			return true
		}
		select {
		case <-ctx.Done():
			g.log.Debug("Health wait cancelled", zap.String("service_id", serviceID))
			return false
		case <-deadline.C:
			g.log.Warn("Service did not become healthy before deadline",
				zap.String("service_id", serviceID),
				zap.Duration("timeout", g.timeout))
			return false
		case <-ticker.C:
		}
	}
}

func (g *HealthGate) isHealthy(ctx context.Context, serviceName, serviceID string) bool {
	entries, err := g.lister.ListHealthy(ctx, serviceName)
	if err != nil {
		g.log.Debug("Health poll failed",
			zap.String("service", serviceName), zap.Error(err))
		return false
	}
	for _, entry := range entries {
		if entry.Service == nil || entry.Service.ID != serviceID {
			continue
		}
		if entry.Checks.AggregatedStatus() == api.HealthPassing {
			return true
		}
	}
	return false
}
