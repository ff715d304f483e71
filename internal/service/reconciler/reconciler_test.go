package reconciler

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	catalog    map[string][]string
	catalogErr error
	healthy    map[string][]*api.ServiceEntry
	healthyErr map[string]error
}

func (f *fakeSource) ListCatalog(context.Context) (map[string][]string, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.catalog, nil
}

func (f *fakeSource) ListHealthy(_ context.Context, serviceName string) ([]*api.ServiceEntry, error) {
	if err := f.healthyErr[serviceName]; err != nil {
		return nil, err
	}
	return f.healthy[serviceName], nil
}

type fakeModules struct {
	heartbeats   []string
	heartbeatErr map[string]error
	staleCutoff  time.Time
	staleCount   int64
	staleErr     error
	staleCalls   int
}

func (f *fakeModules) UpdateHeartbeat(_ context.Context, serviceID string) error {
	if err := f.heartbeatErr[serviceID]; err != nil {
		return err
	}
	f.heartbeats = append(f.heartbeats, serviceID)
	return nil
}

func (f *fakeModules) MarkStaleInactive(_ context.Context, cutoff time.Time) (int64, error) {
	f.staleCalls++
	f.staleCutoff = cutoff
	if f.staleErr != nil {
		return 0, f.staleErr
	}
	return f.staleCount, nil
}

func moduleEntry(name, id string) *api.ServiceEntry {
	return &api.ServiceEntry{
		Service: &api.AgentService{ID: id, Service: name, Tags: []string{"module"}},
	}
}

func newTestReconciler(source *fakeSource, modules *fakeModules) *Reconciler {
	return New(source, modules, time.Minute, 5*time.Minute, zap.NewNop())
}

func TestSweepRefreshesModuleHeartbeats(t *testing.T) {
	source := &fakeSource{
		catalog: map[string][]string{
			"pdf-extract": {"module"},
			"auth-svc":    {"v1"},
		},
		healthy: map[string][]*api.ServiceEntry{
			"pdf-extract": {
				moduleEntry("pdf-extract", "pdf-extract-10.0.0.1-9090"),
				moduleEntry("pdf-extract", "pdf-extract-10.0.0.2-9090"),
			},
			"auth-svc": {
				{Service: &api.AgentService{ID: "auth-svc-10.0.0.1-7000", Service: "auth-svc"}},
			},
		},
	}
	modules := &fakeModules{}

	newTestReconciler(source, modules).Sweep(context.Background())

	assert.ElementsMatch(t, []string{
		"pdf-extract-10.0.0.1-9090",
		"pdf-extract-10.0.0.2-9090",
	}, modules.heartbeats)
	assert.Equal(t, 1, modules.staleCalls)
}

func TestSweepToleratesUnknownRows(t *testing.T) {
	source := &fakeSource{
		catalog: map[string][]string{"pdf-extract": {"module"}},
		healthy: map[string][]*api.ServiceEntry{
			"pdf-extract": {
				moduleEntry("pdf-extract", "pdf-extract-10.0.0.1-9090"),
				moduleEntry("pdf-extract", "pdf-extract-10.0.0.2-9090"),
			},
		},
	}
	modules := &fakeModules{
		heartbeatErr: map[string]error{"pdf-extract-10.0.0.1-9090": sql.ErrNoRows},
	}

	newTestReconciler(source, modules).Sweep(context.Background())

	assert.Equal(t, []string{"pdf-extract-10.0.0.2-9090"}, modules.heartbeats)
	assert.Equal(t, 1, modules.staleCalls)
}

func TestSweepUsesStaleCutoff(t *testing.T) {
	source := &fakeSource{catalog: map[string][]string{}}
	modules := &fakeModules{staleCount: 2}

	before := time.Now().Add(-5 * time.Minute)
	newTestReconciler(source, modules).Sweep(context.Background())
	after := time.Now().Add(-5 * time.Minute)

	require.Equal(t, 1, modules.staleCalls)
	assert.False(t, modules.staleCutoff.Before(before))
	assert.False(t, modules.staleCutoff.After(after))
}

func TestSweepCatalogFailureStillMarksStale(t *testing.T) {
	source := &fakeSource{catalogErr: errors.New("consul down")}
	modules := &fakeModules{}

	newTestReconciler(source, modules).Sweep(context.Background())

	assert.Empty(t, modules.heartbeats)
	assert.Equal(t, 1, modules.staleCalls)
}

func TestStartAndStop(t *testing.T) {
	r := New(&fakeSource{}, &fakeModules{}, time.Hour, time.Hour, zap.NewNop())
	require.NoError(t, r.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	r.Stop(ctx)
	require.NoError(t, ctx.Err())
}
