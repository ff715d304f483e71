package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/config"
)

type fakePipeline struct {
	req    *registrationv1.RegisterRequest
	events []*registrationv1.RegistrationEvent
}

func (f *fakePipeline) Register(_ context.Context, req *registrationv1.RegisterRequest) <-chan *registrationv1.RegistrationEvent {
	f.req = req
	out := make(chan *registrationv1.RegistrationEvent, len(f.events))
	for _, event := range f.events {
		out <- event
	}
	close(out)
	return out
}

type fakeInstanceStore struct {
	entries      []*api.ServiceEntry
	listErr      error
	listCalls    int
	deregistered []string
	deregErr     map[string]error
}

func (f *fakeInstanceStore) ListAll(context.Context, string) ([]*api.ServiceEntry, error) {
	f.listCalls++
	return f.entries, f.listErr
}

func (f *fakeInstanceStore) Deregister(_ context.Context, serviceID string) error {
	if err, ok := f.deregErr[serviceID]; ok {
		return err
	}
	f.deregistered = append(f.deregistered, serviceID)
	return nil
}

func completedEvents() []*registrationv1.RegistrationEvent {
	return []*registrationv1.RegistrationEvent{
		{EventType: registrationv1.RegistrationEventType_STARTED, Message: "Starting service registration"},
		{EventType: registrationv1.RegistrationEventType_COMPLETED, Message: "Service registration completed successfully"},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:                  "development",
		AppName:                 "platform-registry",
		GRPCPort:                "9090",
		HTTPPort:                "8090",
		ServiceVersion:          "1.0.0",
		SelfRegistrationEnabled: true,
		SelfAdvertisedHost:      "10.0.0.9",
	}
}

func TestRunDisabledDoesNothing(t *testing.T) {
	cfg := testConfig()
	cfg.SelfRegistrationEnabled = false

	pipe := &fakePipeline{events: completedEvents()}
	store := &fakeInstanceStore{}
	boot := New(pipe, store, cfg, nil, zap.NewNop())

	boot.Run(context.Background())

	assert.Nil(t, pipe.req)
	assert.Zero(t, store.listCalls)
	assert.Empty(t, boot.serviceID)
}

func TestRunRegistersWithDerivedIdentity(t *testing.T) {
	pipe := &fakePipeline{events: completedEvents()}
	store := &fakeInstanceStore{}
	boot := New(pipe, store, testConfig(), nil, zap.NewNop())

	boot.Run(context.Background())

	require.NotNil(t, pipe.req)
	assert.Equal(t, "platform-registry", pipe.req.GetName())
	assert.Equal(t, registrationv1.ServiceType_SERVICE_TYPE_SERVICE, pipe.req.GetKind())
	assert.Equal(t, "10.0.0.9", pipe.req.GetConnectivity().GetAdvertisedHost())
	assert.Equal(t, int32(9090), pipe.req.GetConnectivity().GetAdvertisedPort())
	assert.Equal(t, "1.0.0", pipe.req.GetVersion())
	assert.Equal(t, "development", pipe.req.GetMetadata()["environment"])

	require.Len(t, pipe.req.GetHttpEndpoints(), 1)
	endpoint := pipe.req.GetHttpEndpoints()[0]
	assert.Equal(t, "http", endpoint.GetScheme())
	assert.Equal(t, int32(8090), endpoint.GetPort())
	assert.Equal(t, "/healthz", endpoint.GetHealthPath())

	assert.Equal(t, "platform-registry-10.0.0.9-9090", boot.serviceID)
}

func TestRunResolvesHostFromEnvChain(t *testing.T) {
	t.Setenv("PLATFORM_REGISTRY_HOST", "172.16.0.4")

	cfg := testConfig()
	cfg.SelfAdvertisedHost = ""

	pipe := &fakePipeline{events: completedEvents()}
	boot := New(pipe, &fakeInstanceStore{}, cfg, nil, zap.NewNop())

	boot.Run(context.Background())

	require.NotNil(t, pipe.req)
	assert.Equal(t, "172.16.0.4", pipe.req.GetConnectivity().GetAdvertisedHost())
}

func TestRunCleansStaleInstancesOutsideProd(t *testing.T) {
	store := &fakeInstanceStore{
		entries: []*api.ServiceEntry{
			{Service: &api.AgentService{ID: "platform-registry-10.0.0.1-9090"}},
			{Service: &api.AgentService{ID: "platform-registry-10.0.0.2-9090"}},
		},
	}
	pipe := &fakePipeline{events: completedEvents()}
	boot := New(pipe, store, testConfig(), nil, zap.NewNop())

	boot.Run(context.Background())

	assert.Equal(t, []string{
		"platform-registry-10.0.0.1-9090",
		"platform-registry-10.0.0.2-9090",
	}, store.deregistered)
	assert.NotNil(t, pipe.req)
}

func TestRunSkipsCleanupInProd(t *testing.T) {
	cfg := testConfig()
	cfg.AppEnv = "production"

	store := &fakeInstanceStore{
		entries: []*api.ServiceEntry{
			{Service: &api.AgentService{ID: "platform-registry-10.0.0.1-9090"}},
		},
	}
	pipe := &fakePipeline{events: completedEvents()}
	boot := New(pipe, store, cfg, nil, zap.NewNop())

	boot.Run(context.Background())

	assert.Zero(t, store.listCalls)
	assert.Empty(t, store.deregistered)
	assert.NotNil(t, pipe.req)
}

func TestRunSurvivesCleanupFailures(t *testing.T) {
	store := &fakeInstanceStore{
		entries: []*api.ServiceEntry{
			{Service: &api.AgentService{ID: "platform-registry-10.0.0.1-9090"}},
			{Service: &api.AgentService{ID: "platform-registry-10.0.0.2-9090"}},
		},
		deregErr: map[string]error{
			"platform-registry-10.0.0.1-9090": errors.New("consul unreachable"),
		},
	}
	pipe := &fakePipeline{events: completedEvents()}
	boot := New(pipe, store, testConfig(), nil, zap.NewNop())

	boot.Run(context.Background())

	assert.Equal(t, []string{"platform-registry-10.0.0.2-9090"}, store.deregistered)
	assert.NotNil(t, pipe.req)
}

func TestGrpcServiceNamesFiltersReserved(t *testing.T) {
	services := func() []string {
		return []string{
			"grpc.health.v1.Health",
			"ai.pipestream.platform.registration.v1.PlatformRegistrationService",
			"grpc.reflection.v1alpha.ServerReflection",
			"ai.pipestream.platform.registration.v1.PlatformRegistrationService",
			"grpc.reflection.v1.ServerReflection",
		}
	}
	pipe := &fakePipeline{events: completedEvents()}
	boot := New(pipe, &fakeInstanceStore{}, testConfig(), services, zap.NewNop())

	boot.Run(context.Background())

	require.NotNil(t, pipe.req)
	assert.Equal(t,
		[]string{"ai.pipestream.platform.registration.v1.PlatformRegistrationService"},
		pipe.req.GetGrpcServices())
}

func TestBuildRequestDefaultsInternalPort(t *testing.T) {
	cfg := testConfig()
	cfg.SelfInternalHost = "registry.internal"
	cfg.SelfInternalPort = 0

	boot := New(&fakePipeline{}, &fakeInstanceStore{}, cfg, nil, zap.NewNop())
	req := boot.buildRequest()

	assert.Equal(t, "registry.internal", req.GetConnectivity().GetInternalHost())
	assert.Equal(t, int32(9090), req.GetConnectivity().GetInternalPort())
}

func TestShutdownDeregistersSelf(t *testing.T) {
	store := &fakeInstanceStore{}
	pipe := &fakePipeline{events: completedEvents()}
	boot := New(pipe, store, testConfig(), nil, zap.NewNop())

	boot.Run(context.Background())
	boot.Shutdown(context.Background())

	assert.Contains(t, store.deregistered, "platform-registry-10.0.0.9-9090")
}

func TestShutdownWithoutRegistrationIsNoop(t *testing.T) {
	store := &fakeInstanceStore{}
	boot := New(&fakePipeline{}, store, testConfig(), nil, zap.NewNop())

	boot.Shutdown(context.Background())

	assert.Empty(t, store.deregistered)
}
