package consul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
)

func moduleRequest() *registrationv1.RegisterRequest {
	return &registrationv1.RegisterRequest{
		Name: "pdf-extract",
		Kind: registrationv1.ServiceType_SERVICE_TYPE_MODULE,
		Connectivity: &registrationv1.Connectivity{
			AdvertisedHost: "10.0.0.5",
			AdvertisedPort: 50051,
			InternalHost:   "pdf-extract.internal",
			InternalPort:   50052,
		},
		Version:      "2.1.0",
		Metadata:     map[string]string{"team.owner": "platform"},
		Tags:         []string{"beta"},
		Capabilities: []string{"ocr"},
		HttpEndpoints: []*registrationv1.HttpEndpoint{
			{
				Scheme:     "https",
				Host:       "api.example.com",
				Port:       443,
				BasePath:   "/api/v1",
				HealthPath: "/health",
				TlsEnabled: true,
			},
			{
				Scheme: "http",
				Host:   "internal.example.com",
				Port:   8080,
			},
		},
		HttpSchemaArtifactId: "pdf-extract-http",
		HttpSchemaVersion:    "1.0.0",
		GrpcServices:         []string{"ai.pipestream.data.module.v1.PipeStepProcessorService"},
	}
}

func TestBuildRegistrationModule(t *testing.T) {
	reg := buildRegistration(moduleRequest(), "pdf-extract-10.0.0.5-50051")

	assert.Equal(t, "pdf-extract-10.0.0.5-50051", reg.ID)
	assert.Equal(t, "pdf-extract", reg.Name)
	assert.Equal(t, "pdf-extract.internal", reg.Address)
	assert.Equal(t, 50052, reg.Port)

	assert.ElementsMatch(t, []string{"beta", "capability:ocr", "module"}, reg.Tags)

	meta := reg.Meta
	assert.Equal(t, "10.0.0.5", meta["advertised-host"])
	assert.Equal(t, "50051", meta["advertised-port"])
	assert.Equal(t, "2.1.0", meta["version"])
	assert.Equal(t, "SERVICE_TYPE_MODULE", meta["service-type"])
	assert.Equal(t, "platform", meta["team_owner"], "dotted keys are rewritten")
	_, hasDotted := meta["team.owner"]
	assert.False(t, hasDotted)

	assert.Equal(t, "2", meta["http_endpoint_count"])
	assert.Equal(t, "https", meta["http_endpoint_0_scheme"])
	assert.Equal(t, "api.example.com", meta["http_endpoint_0_host"])
	assert.Equal(t, "443", meta["http_endpoint_0_port"])
	assert.Equal(t, "/api/v1", meta["http_endpoint_0_base_path"])
	assert.Equal(t, "/health", meta["http_endpoint_0_health_path"])
	assert.Equal(t, "true", meta["http_endpoint_0_tls_enabled"])
	assert.Equal(t, "false", meta["http_endpoint_1_tls_enabled"])
	_, hasBlankBase := meta["http_endpoint_1_base_path"]
	assert.False(t, hasBlankBase, "blank paths are omitted")

	assert.Equal(t, "pdf-extract-http", meta["http_schema_artifact_id"])
	assert.Equal(t, "1.0.0", meta["http_schema_version"])
	assert.Equal(t, "1", meta["grpc_service_count"])
	assert.Equal(t, "ai.pipestream.data.module.v1.PipeStepProcessorService", meta["grpc_service_0"])
}

func TestBuildRegistrationHTTPCheckFromFirstEndpoint(t *testing.T) {
	reg := buildRegistration(moduleRequest(), "pdf-extract-10.0.0.5-50051")

	require.NotNil(t, reg.Check)
	assert.Equal(t, "pdf-extract HTTP Health Check", reg.Check.Name)
	assert.Equal(t, "https://api.example.com:443/health", reg.Check.HTTP)
	assert.Empty(t, reg.Check.GRPC)
	assert.Equal(t, "10s", reg.Check.Interval)
	assert.Equal(t, "1m", reg.Check.DeregisterCriticalServiceAfter)
}

func TestBuildRegistrationServiceGRPCCheck(t *testing.T) {
	req := &registrationv1.RegisterRequest{
		Name: "auth-svc",
		Kind: registrationv1.ServiceType_SERVICE_TYPE_SERVICE,
		Connectivity: &registrationv1.Connectivity{
			AdvertisedHost: "10.0.0.1",
			AdvertisedPort: 7000,
		},
		Version: "1.4.2",
	}
	reg := buildRegistration(req, "auth-svc-10.0.0.1-7000")

	assert.Equal(t, "10.0.0.1", reg.Address)
	assert.Equal(t, 7000, reg.Port)
	assert.NotContains(t, reg.Tags, "module")
	assert.Equal(t, "SERVICE_TYPE_SERVICE", reg.Meta["service-type"])
	_, hasCount := reg.Meta["http_endpoint_count"]
	assert.False(t, hasCount)

	require.NotNil(t, reg.Check)
	assert.Equal(t, "auth-svc gRPC Health Check", reg.Check.Name)
	assert.Equal(t, "10.0.0.1:7000", reg.Check.GRPC)
	assert.Empty(t, reg.Check.HTTP)
}

func TestBuildRegistrationInternalHostKeepsAdvertisedPort(t *testing.T) {
	req := moduleRequest()
	req.Connectivity.InternalPort = 0

	reg := buildRegistration(req, "pdf-extract-10.0.0.5-50051")

	assert.Equal(t, "pdf-extract.internal", reg.Address)
	assert.Equal(t, 50051, reg.Port)
}

func TestBuildRegistrationKeepsExistingModuleTag(t *testing.T) {
	req := moduleRequest()
	req.Tags = []string{"module"}
	req.Capabilities = nil

	reg := buildRegistration(req, "pdf-extract-10.0.0.5-50051")

	assert.Equal(t, []string{"module"}, reg.Tags)
}

func TestParseHTTPEndpointsRoundTrip(t *testing.T) {
	reg := buildRegistration(moduleRequest(), "pdf-extract-10.0.0.5-50051")

	endpoints := ParseHTTPEndpoints(reg.Meta)
	require.Len(t, endpoints, 2)

	assert.Equal(t, "https", endpoints[0].GetScheme())
	assert.Equal(t, "api.example.com", endpoints[0].GetHost())
	assert.Equal(t, int32(443), endpoints[0].GetPort())
	assert.Equal(t, "/api/v1", endpoints[0].GetBasePath())
	assert.Equal(t, "/health", endpoints[0].GetHealthPath())
	assert.True(t, endpoints[0].GetTlsEnabled())

	assert.Equal(t, "http", endpoints[1].GetScheme())
	assert.Equal(t, "internal.example.com", endpoints[1].GetHost())
	assert.Equal(t, int32(8080), endpoints[1].GetPort())
	assert.Empty(t, endpoints[1].GetBasePath())
	assert.False(t, endpoints[1].GetTlsEnabled())
}

func TestParseHTTPEndpointsEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]string
		want int
	}{
		{"no count key", map[string]string{"version": "1.0.0"}, 0},
		{"blank count", map[string]string{"http_endpoint_count": ""}, 0},
		{"garbage count", map[string]string{"http_endpoint_count": "lots"}, 0},
		{
			"missing host skipped",
			map[string]string{
				"http_endpoint_count":  "2",
				"http_endpoint_0_port": "8080",
				"http_endpoint_1_host": "h",
				"http_endpoint_1_port": "9090",
			},
			1,
		},
		{
			"garbage port skipped",
			map[string]string{
				"http_endpoint_count":  "1",
				"http_endpoint_0_host": "h",
				"http_endpoint_0_port": "eighty",
			},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ParseHTTPEndpoints(tt.meta), tt.want)
		})
	}
}

func TestParseGRPCServices(t *testing.T) {
	meta := map[string]string{
		"grpc_service_count": "2",
		"grpc_service_0":     "grpc.health.v1.Health",
		"grpc_service_1":     "ai.pipestream.data.module.v1.PipeStepProcessorService",
	}
	assert.Equal(t, []string{
		"grpc.health.v1.Health",
		"ai.pipestream.data.module.v1.PipeStepProcessorService",
	}, ParseGRPCServices(meta))

	assert.Nil(t, ParseGRPCServices(map[string]string{}))
	assert.Empty(t, ParseGRPCServices(map[string]string{"grpc_service_count": "zero"}))
}
