package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
)

type fakeStore struct {
	catalog    map[string][]string
	catalogErr error
	healthy    map[string][]*api.ServiceEntry
	healthyErr map[string]error
}

func (f *fakeStore) ListCatalog(context.Context) (map[string][]string, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.catalog, nil
}

func (f *fakeStore) ListHealthy(_ context.Context, serviceName string) ([]*api.ServiceEntry, error) {
	if err := f.healthyErr[serviceName]; err != nil {
		return nil, err
	}
	return f.healthy[serviceName], nil
}

func instance(name, id, addr string, port int, tags []string, meta map[string]string) *api.ServiceEntry {
	return &api.ServiceEntry{
		Service: &api.AgentService{
			ID:      id,
			Service: name,
			Address: addr,
			Port:    port,
			Tags:    tags,
			Meta:    meta,
		},
	}
}

func newTestService(store *fakeStore) *Service {
	return NewService(store, 10*time.Millisecond, zap.NewNop())
}

func TestListServicesPartitionsModules(t *testing.T) {
	store := &fakeStore{
		catalog: map[string][]string{"auth-svc": nil, "pdf-extract": nil},
		healthy: map[string][]*api.ServiceEntry{
			"auth-svc": {
				instance("auth-svc", "auth-svc-10.0.0.1-7000", "10.0.0.1", 7000, nil, nil),
			},
			"pdf-extract": {
				instance("pdf-extract", "pdf-extract-10.0.0.5-50051", "10.0.0.5", 50051,
					[]string{"module"}, map[string]string{"version": "2.1.0"}),
			},
		},
	}
	svc := newTestService(store)

	services := svc.ListServices(context.Background())
	require.Len(t, services.GetServices(), 1)
	assert.Equal(t, "auth-svc", services.GetServices()[0].GetServiceName())
	assert.Equal(t, int32(1), services.GetTotalCount())
	assert.NotNil(t, services.GetAsOf())

	modules := svc.ListModules(context.Background())
	require.Len(t, modules.GetModules(), 1)
	assert.Equal(t, "pdf-extract", modules.GetModules()[0].GetModuleName())
	assert.Equal(t, "2.1.0", modules.GetModules()[0].GetVersion())
	assert.Equal(t, int32(1), modules.GetTotalCount())
}

func TestListServicesSurvivesCatalogError(t *testing.T) {
	svc := newTestService(&fakeStore{catalogErr: errors.New("consul unreachable")})

	resp := svc.ListServices(context.Background())

	assert.Empty(t, resp.GetServices())
	assert.Equal(t, int32(0), resp.GetTotalCount())
	assert.NotNil(t, resp.GetAsOf())
}

func TestListServicesSkipsFailedHealthLookups(t *testing.T) {
	store := &fakeStore{
		catalog: map[string][]string{"auth-svc": nil, "flaky-svc": nil},
		healthy: map[string][]*api.ServiceEntry{
			"auth-svc": {
				instance("auth-svc", "auth-svc-10.0.0.1-7000", "10.0.0.1", 7000, nil, nil),
			},
		},
		healthyErr: map[string]error{"flaky-svc": errors.New("health lookup failed")},
	}
	svc := newTestService(store)

	resp := svc.ListServices(context.Background())

	require.Len(t, resp.GetServices(), 1)
	assert.Equal(t, "auth-svc", resp.GetServices()[0].GetServiceName())
}

func TestGetServiceByName(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"auth-svc": {
				instance("auth-svc", "auth-svc-10.0.0.1-7000", "10.0.0.1", 7000,
					[]string{"edge", "capability:jwt"},
					map[string]string{"version": "1.4.2"}),
				instance("auth-svc", "auth-svc-10.0.0.2-7000", "10.0.0.2", 7000, nil, nil),
			},
		},
	}
	svc := newTestService(store)

	got, err := svc.GetServiceByName(context.Background(), "auth-svc")
	require.NoError(t, err)
	assert.Equal(t, "auth-svc-10.0.0.1-7000", got.GetServiceId())
	assert.Equal(t, "10.0.0.1", got.GetHost())
	assert.Equal(t, int32(7000), got.GetPort())
	assert.Equal(t, "1.4.2", got.GetVersion())
	assert.Equal(t, []string{"edge"}, got.GetTags())
	assert.Equal(t, []string{"jwt"}, got.GetCapabilities())
	assert.True(t, got.GetIsHealthy())

	_, err = svc.GetServiceByName(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Service not found: ghost", status.Convert(err).Message())
}

func TestGetServiceByID(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"auth-svc": {
				instance("auth-svc", "auth-svc-10.0.0.1-7000", "10.0.0.1", 7000, nil, nil),
				instance("auth-svc", "auth-svc-10.0.0.2-7000", "10.0.0.2", 7000, nil, nil),
			},
		},
	}
	svc := newTestService(store)

	got, err := svc.GetServiceByID(context.Background(), "auth-svc-10.0.0.2-7000")
	require.NoError(t, err)
	assert.Equal(t, "auth-svc-10.0.0.2-7000", got.GetServiceId())
	assert.Equal(t, "10.0.0.2", got.GetHost())

	_, err = svc.GetServiceByID(context.Background(), "noformat")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.GetServiceByID(context.Background(), "auth-svc-10.0.0.9-7000")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Service instance not found: auth-svc-10.0.0.9-7000", status.Convert(err).Message())

	_, err = svc.GetServiceByID(context.Background(), "ghost-10.0.0.9-7000")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Service not found: ghost-10.0.0.9-7000", status.Convert(err).Message())
}

func TestGetModuleRequiresModuleTag(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"pdf-extract": {
				instance("pdf-extract", "pdf-extract-10.0.0.4-50051", "10.0.0.4", 50051, nil, nil),
				instance("pdf-extract", "pdf-extract-10.0.0.5-50051", "10.0.0.5", 50051,
					[]string{"module"},
					map[string]string{
						"version":       "2.1.0",
						"input-format":  "application/pdf",
						"output-format": "text/plain",
					}),
			},
		},
	}
	svc := newTestService(store)

	got, err := svc.GetModuleByName(context.Background(), "pdf-extract")
	require.NoError(t, err)
	assert.Equal(t, "pdf-extract-10.0.0.5-50051", got.GetServiceId())
	assert.Equal(t, "application/pdf", got.GetInputFormat())
	assert.Equal(t, "text/plain", got.GetOutputFormat())

	// The untagged sibling is invisible to module lookups.
	_, err = svc.GetModuleByID(context.Background(), "pdf-extract-10.0.0.4-50051")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Module instance not found: pdf-extract-10.0.0.4-50051", status.Convert(err).Message())

	got, err = svc.GetModuleByID(context.Background(), "pdf-extract-10.0.0.5-50051")
	require.NoError(t, err)
	assert.Equal(t, "pdf-extract-10.0.0.5-50051", got.GetServiceId())
}

func TestReadsPreferAdvertisedPair(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"pdf-extract": {
				// Registered under an internal bridge address; the advertised
				// pair rides in metadata.
				instance("pdf-extract", "pdf-extract-10.0.0.5-50051", "172.17.0.2", 50052,
					[]string{"module"},
					map[string]string{
						"advertised-host": "10.0.0.5",
						"advertised-port": "50051",
					}),
			},
		},
	}
	svc := newTestService(store)

	mod, err := svc.GetModuleByName(context.Background(), "pdf-extract")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", mod.GetHost())
	assert.Equal(t, int32(50051), mod.GetPort())

	resolved := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName: "pdf-extract",
	})
	require.True(t, resolved.GetFound())
	assert.Equal(t, "10.0.0.5", resolved.GetHost())
	assert.Equal(t, int32(50051), resolved.GetPort())
}

func TestResolveCapabilityFilter(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"ocr": {
				instance("ocr", "ocr-10.0.0.1-9000", "10.0.0.1", 9000,
					[]string{"capability:ocr", "capability:french"}, nil),
				instance("ocr", "ocr-10.0.0.2-9000", "10.0.0.2", 9000,
					[]string{"capability:ocr"}, nil),
			},
		},
	}
	svc := newTestService(store)

	resolved := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName:          "ocr",
		RequiredCapabilities: []string{"french"},
	})
	require.True(t, resolved.GetFound())
	assert.Equal(t, "ocr-10.0.0.1-9000", resolved.GetServiceId())
	assert.Equal(t, int32(2), resolved.GetTotalInstances())
	assert.Equal(t, int32(1), resolved.GetHealthyInstances())
	assert.ElementsMatch(t, []string{"ocr", "french"}, resolved.GetCapabilities())

	notFound := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName:          "ocr",
		RequiredCapabilities: []string{"german"},
	})
	assert.False(t, notFound.GetFound())
	assert.Equal(t, "No instances match the required criteria", notFound.GetSelectionReason())
	assert.Equal(t, int32(2), notFound.GetTotalInstances())
	assert.Equal(t, int32(2), notFound.GetHealthyInstances())
}

func TestResolveRequiredTags(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"ocr": {
				instance("ocr", "ocr-10.0.0.1-9000", "10.0.0.1", 9000, []string{"gpu"}, nil),
				instance("ocr", "ocr-10.0.0.2-9000", "10.0.0.2", 9000, nil, nil),
			},
		},
	}
	svc := newTestService(store)

	resolved := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName:  "ocr",
		RequiredTags: []string{"gpu"},
	})
	require.True(t, resolved.GetFound())
	assert.Equal(t, "ocr-10.0.0.1-9000", resolved.GetServiceId())
	assert.Equal(t, "Selected first available healthy instance", resolved.GetSelectionReason())
}

func TestResolveNoHealthyInstances(t *testing.T) {
	svc := newTestService(&fakeStore{})

	resolved := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName: "ghost",
	})

	assert.False(t, resolved.GetFound())
	assert.Equal(t, int32(0), resolved.GetTotalInstances())
	assert.Equal(t, int32(0), resolved.GetHealthyInstances())
	assert.Equal(t, "No healthy instances found", resolved.GetSelectionReason())
	assert.Equal(t, "ghost", resolved.GetServiceName())
	assert.NotNil(t, resolved.GetResolvedAt())
}

func TestResolvePreferLocal(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"ocr": {
				instance("ocr", "ocr-10.0.0.1-9000", "10.0.0.1", 9000, nil, nil),
				instance("ocr", "ocr-localhost-9000", "127.0.0.1", 9000, nil, nil),
			},
		},
	}
	svc := newTestService(store)

	resolved := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName: "ocr",
		PreferLocal: true,
	})
	require.True(t, resolved.GetFound())
	assert.Equal(t, "ocr-localhost-9000", resolved.GetServiceId())
	assert.Equal(t, "Selected local instance as requested", resolved.GetSelectionReason())

	// Without the preference the first instance wins.
	resolved = svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName: "ocr",
	})
	assert.Equal(t, "ocr-10.0.0.1-9000", resolved.GetServiceId())
}

func TestResolveProjectsMetadata(t *testing.T) {
	store := &fakeStore{
		healthy: map[string][]*api.ServiceEntry{
			"auth-svc": {
				instance("auth-svc", "auth-svc-10.0.0.1-7000", "10.0.0.1", 7000,
					[]string{"edge", "capability:jwt"},
					map[string]string{
						"version":                     "1.4.2",
						"team_owner":                  "identity",
						"http_schema_artifact_id":     "auth-api",
						"http_schema_version":         "3.2.0",
						"http_endpoint_count":         "1",
						"http_endpoint_0_scheme":      "https",
						"http_endpoint_0_host":        "10.0.0.1",
						"http_endpoint_0_port":        "8443",
						"http_endpoint_0_tls_enabled": "true",
					}),
			},
		},
	}
	svc := newTestService(store)

	resolved := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName: "auth-svc",
	})

	require.True(t, resolved.GetFound())
	assert.Equal(t, "1.4.2", resolved.GetVersion())
	assert.Equal(t, "identity", resolved.GetMetadata()["team_owner"])
	assert.Equal(t, "auth-api", resolved.GetHttpSchemaArtifactId())
	assert.Equal(t, "3.2.0", resolved.GetHttpSchemaVersion())
	require.Len(t, resolved.GetHttpEndpoints(), 1)
	assert.Equal(t, int32(8443), resolved.GetHttpEndpoints()[0].GetPort())
	assert.True(t, resolved.GetHttpEndpoints()[0].GetTlsEnabled())
	assert.Equal(t, []string{"edge"}, resolved.GetTags())
	assert.Equal(t, []string{"jwt"}, resolved.GetCapabilities())
}

func TestResolveStoreError(t *testing.T) {
	svc := newTestService(&fakeStore{
		healthyErr: map[string]error{"ocr": errors.New("consul unreachable")},
	})

	resolved := svc.Resolve(context.Background(), &registrationv1.ResolveServiceRequest{
		ServiceName: "ocr",
	})

	assert.False(t, resolved.GetFound())
	assert.Contains(t, resolved.GetSelectionReason(), "Error resolving service: ")
	assert.Contains(t, resolved.GetSelectionReason(), "consul unreachable")
}

func TestWatchServicesStreamsSnapshots(t *testing.T) {
	store := &fakeStore{
		catalog: map[string][]string{"auth-svc": nil},
		healthy: map[string][]*api.ServiceEntry{
			"auth-svc": {
				instance("auth-svc", "auth-svc-10.0.0.1-7000", "10.0.0.1", 7000, nil, nil),
			},
		},
	}
	svc := newTestService(store)

	ctx, cancel := context.WithCancel(context.Background())
	ch := svc.WatchServices(ctx)

	first, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, int32(1), first.GetTotalCount())

	second, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, int32(1), second.GetTotalCount())
	assert.False(t, second.GetAsOf().AsTime().Before(first.GetAsOf().AsTime()))

	cancel()
	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-ch:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("watch stream did not close after cancellation")
		}
	}
}
