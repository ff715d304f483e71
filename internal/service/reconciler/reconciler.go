// Package reconciler keeps module metadata rows in step with live discovery
// health. Healthy module instances get their heartbeat refreshed on every
// sweep; rows whose heartbeat goes quiet past the staleness cutoff are
// flagged inactive, so a crashed module reads differently from one that
// deregistered cleanly.
package reconciler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pipestream-ai/platform-registry/internal/consul"
)

// healthSource is the slice of the discovery store the reconciler reads.
type healthSource interface {
	ListCatalog(ctx context.Context) (map[string][]string, error)
	ListHealthy(ctx context.Context, serviceName string) ([]*api.ServiceEntry, error)
}

// moduleStore is the slice of the metadata repository the reconciler writes.
type moduleStore interface {
	UpdateHeartbeat(ctx context.Context, serviceID string) error
	MarkStaleInactive(ctx context.Context, cutoff time.Time) (int64, error)
}

// Reconciler sweeps discovery health into the metadata store on a schedule.
type Reconciler struct {
	source     healthSource
	modules    moduleStore
	interval   time.Duration
	staleAfter time.Duration
	sweeps     *cron.Cron
	log        *zap.Logger
}

// New builds a Reconciler that sweeps every interval and treats heartbeats
// older than staleAfter as stale.
func New(source healthSource, modules moduleStore, interval, staleAfter time.Duration, log *zap.Logger) *Reconciler {
	return &Reconciler{
		source:     source,
		modules:    modules,
		interval:   interval,
		staleAfter: staleAfter,
		sweeps:     cron.New(cron.WithSeconds()),
		log:        log,
	}
}

// Start schedules periodic sweeps. The first sweep fires one interval after
// Start rather than immediately; registration itself stamps the initial
// heartbeat.
func (r *Reconciler) Start() error {
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.sweeps.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.interval)
		defer cancel()
		r.Sweep(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule reconcile sweep: %w", err)
	}
	r.sweeps.Start()
	r.log.Info("Module reconciler started",
		zap.Duration("interval", r.interval),
		zap.Duration("stale_after", r.staleAfter))
	return nil
}

// Stop halts scheduling and waits for an in-flight sweep, bounded by ctx.
func (r *Reconciler) Stop(ctx context.Context) {
	select {
	case <-r.sweeps.Stop().Done():
	case <-ctx.Done():
	}
}

// Sweep runs one reconcile pass: refresh heartbeats for every healthy
// module instance the catalog knows, then flag rows that stayed quiet.
// A catalog failure skips the refresh but still runs the staleness pass,
// otherwise a Consul outage would freeze module statuses at ACTIVE.
func (r *Reconciler) Sweep(ctx context.Context) {
	catalog, err := r.source.ListCatalog(ctx)
	if err != nil {
		r.log.Error("Failed to list catalog for reconcile sweep", zap.Error(err))
	} else {
		for name, tags := range catalog {
			if !isModule(tags) {
				continue
			}
			r.refreshHeartbeats(ctx, name)
		}
	}

	n, err := r.modules.MarkStaleInactive(ctx, time.Now().Add(-r.staleAfter))
	if err != nil {
		r.log.Error("Failed to mark stale modules inactive", zap.Error(err))
		return
	}
	if n > 0 {
		r.log.Info("Marked stale modules inactive", zap.Int64("count", n))
	}
}

func (r *Reconciler) refreshHeartbeats(ctx context.Context, name string) {
	entries, err := r.source.ListHealthy(ctx, name)
	if err != nil {
		r.log.Debug("Skipping heartbeat refresh for unreachable service",
			zap.String("service", name), zap.Error(err))
		return
	}
	for _, entry := range entries {
		err := r.modules.UpdateHeartbeat(ctx, entry.Service.ID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// Consul knows the instance but the metadata store never saw
			// it, usually a plain service carrying the module tag by hand.
			r.log.Debug("Healthy module instance has no metadata row",
				zap.String("service_id", entry.Service.ID))
		case err != nil:
			r.log.Warn("Failed to refresh module heartbeat",
				zap.String("service_id", entry.Service.ID), zap.Error(err))
		}
	}
}

func isModule(tags []string) bool {
	for _, tag := range tags {
		if tag == consul.ModuleTag {
			return true
		}
	}
	return false
}
