package consul

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAgent struct {
	registered    []*api.AgentServiceRegistration
	deregistered  []string
	registerErr   error
	deregisterErr error
}

func (f *fakeAgent) ServiceRegisterOpts(reg *api.AgentServiceRegistration, _ api.ServiceRegisterOpts) error {
	f.registered = append(f.registered, reg)
	return f.registerErr
}

func (f *fakeAgent) ServiceDeregisterOpts(serviceID string, _ *api.QueryOptions) error {
	f.deregistered = append(f.deregistered, serviceID)
	return f.deregisterErr
}

type fakeHealth struct {
	entries map[string][]*api.ServiceEntry
	err     error
}

func (f *fakeHealth) Service(service, _ string, passingOnly bool, _ *api.QueryOptions) ([]*api.ServiceEntry, *api.QueryMeta, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	entries := f.entries[service]
	if !passingOnly {
		return entries, nil, nil
	}
	var passing []*api.ServiceEntry
	for _, e := range entries {
		if e.Checks.AggregatedStatus() == api.HealthPassing {
			passing = append(passing, e)
		}
	}
	return passing, nil, nil
}

type fakeCatalog struct {
	services map[string][]string
	err      error
}

func (f *fakeCatalog) Services(_ *api.QueryOptions) (map[string][]string, *api.QueryMeta, error) {
	return f.services, nil, f.err
}

func newTestRegistrar(agent *fakeAgent, health *fakeHealth, catalog *fakeCatalog) *Registrar {
	return &Registrar{agent: agent, health: health, catalog: catalog, log: zap.NewNop()}
}

func passingEntry(serviceID string) *api.ServiceEntry {
	return &api.ServiceEntry{
		Service: &api.AgentService{ID: serviceID, Service: "pdf-extract"},
		Checks:  api.HealthChecks{{Status: api.HealthPassing}},
	}
}

func criticalEntry(serviceID string) *api.ServiceEntry {
	return &api.ServiceEntry{
		Service: &api.AgentService{ID: serviceID, Service: "pdf-extract"},
		Checks:  api.HealthChecks{{Status: api.HealthCritical}},
	}
}

func TestRegistrarRegister(t *testing.T) {
	agent := &fakeAgent{}
	r := newTestRegistrar(agent, &fakeHealth{}, &fakeCatalog{})

	err := r.Register(context.Background(), moduleRequest(), "pdf-extract-10.0.0.5-50051")
	require.NoError(t, err)
	require.Len(t, agent.registered, 1)
	assert.Equal(t, "pdf-extract-10.0.0.5-50051", agent.registered[0].ID)
	assert.Equal(t, "pdf-extract", agent.registered[0].Name)
}

func TestRegistrarRegisterError(t *testing.T) {
	agent := &fakeAgent{registerErr: errors.New("connection refused")}
	r := newTestRegistrar(agent, &fakeHealth{}, &fakeCatalog{})

	err := r.Register(context.Background(), moduleRequest(), "pdf-extract-10.0.0.5-50051")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf-extract-10.0.0.5-50051")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRegistrarDeregister(t *testing.T) {
	agent := &fakeAgent{}
	r := newTestRegistrar(agent, &fakeHealth{}, &fakeCatalog{})

	require.NoError(t, r.Deregister(context.Background(), "auth-svc-10.0.0.1-7000"))
	assert.Equal(t, []string{"auth-svc-10.0.0.1-7000"}, agent.deregistered)

	agent.deregisterErr = errors.New("no such service")
	assert.Error(t, r.Deregister(context.Background(), "auth-svc-10.0.0.1-7000"))
}

func TestRegistrarListHealthyFiltersCritical(t *testing.T) {
	health := &fakeHealth{entries: map[string][]*api.ServiceEntry{
		"pdf-extract": {passingEntry("a"), criticalEntry("b")},
	}}
	r := newTestRegistrar(&fakeAgent{}, health, &fakeCatalog{})

	entries, err := r.ListHealthy(context.Background(), "pdf-extract")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Service.ID)

	all, err := r.ListAll(context.Background(), "pdf-extract")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRegistrarListCatalog(t *testing.T) {
	catalog := &fakeCatalog{services: map[string][]string{
		"consul":      nil,
		"pdf-extract": {"module", "capability:ocr"},
	}}
	r := newTestRegistrar(&fakeAgent{}, &fakeHealth{}, catalog)

	services, err := r.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.services, services)

	catalog.err = errors.New("catalog unavailable")
	_, err = r.ListCatalog(context.Background())
	assert.Error(t, err)
}
