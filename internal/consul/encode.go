package consul

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/consul/api"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
)

const (
	// ModuleTag marks registrations that answer the module callback API.
	ModuleTag = "module"
	// CapabilityTagPrefix carries capabilities inside the tag list.
	CapabilityTagPrefix = "capability:"

	checkInterval   = "10s"
	deregisterAfter = "1m"
)

// buildRegistration maps a registration request onto Consul's agent payload.
// The registered address prefers the internal host and port so health checks
// run against reachable targets; the advertised pair survives in metadata for
// read-back. Structured fields (endpoints, gRPC service names) are flattened
// to numeric-indexed meta keys because Consul metadata is flat strings only.
func buildRegistration(req *registrationv1.RegisterRequest, serviceID string) *api.AgentServiceRegistration {
	conn := req.GetConnectivity()
	advertisedHost := conn.GetAdvertisedHost()
	advertisedPort := int(conn.GetAdvertisedPort())

	registerHost := advertisedHost
	if conn.GetInternalHost() != "" {
		registerHost = conn.GetInternalHost()
	}
	registerPort := advertisedPort
	if conn.GetInternalPort() > 0 {
		registerPort = int(conn.GetInternalPort())
	}

	meta := make(map[string]string, len(req.GetMetadata())+8)
	for k, v := range req.GetMetadata() {
		meta[k] = v
	}
	meta["advertised-host"] = advertisedHost
	meta["advertised-port"] = strconv.Itoa(advertisedPort)
	meta["version"] = req.GetVersion()
	meta["service-type"] = req.GetKind().String()

	if endpoints := req.GetHttpEndpoints(); len(endpoints) > 0 {
		meta["http_endpoint_count"] = strconv.Itoa(len(endpoints))
		for i, ep := range endpoints {
			prefix := fmt.Sprintf("http_endpoint_%d_", i)
			meta[prefix+"scheme"] = ep.GetScheme()
			meta[prefix+"host"] = ep.GetHost()
			meta[prefix+"port"] = strconv.Itoa(int(ep.GetPort()))
			if ep.GetBasePath() != "" {
				meta[prefix+"base_path"] = ep.GetBasePath()
			}
			if ep.GetHealthPath() != "" {
				meta[prefix+"health_path"] = ep.GetHealthPath()
			}
			meta[prefix+"tls_enabled"] = strconv.FormatBool(ep.GetTlsEnabled())
		}
	}
	if req.GetHttpSchemaArtifactId() != "" {
		meta["http_schema_artifact_id"] = req.GetHttpSchemaArtifactId()
	}
	if req.GetHttpSchemaVersion() != "" {
		meta["http_schema_version"] = req.GetHttpSchemaVersion()
	}
	if services := req.GetGrpcServices(); len(services) > 0 {
		meta["grpc_service_count"] = strconv.Itoa(len(services))
		for i, name := range services {
			meta[fmt.Sprintf("grpc_service_%d", i)] = name
		}
	}

	tags := append([]string(nil), req.GetTags()...)
	for _, capability := range req.GetCapabilities() {
		tags = append(tags, CapabilityTagPrefix+capability)
	}
	if req.GetKind() == registrationv1.ServiceType_SERVICE_TYPE_MODULE && !containsTag(tags, ModuleTag) {
		tags = append(tags, ModuleTag)
	}

	return &api.AgentServiceRegistration{
		ID:      serviceID,
		Name:    req.GetName(),
		Address: registerHost,
		Port:    registerPort,
		Tags:    tags,
		Meta:    sanitizeMetaKeys(meta),
		Check:   buildCheck(req, registerHost, registerPort),
	}
}

// buildCheck prefers an HTTP check against the first declared endpoint and
// falls back to a gRPC check on the registered address.
func buildCheck(req *registrationv1.RegisterRequest, registerHost string, registerPort int) *api.AgentServiceCheck {
	if endpoints := req.GetHttpEndpoints(); len(endpoints) > 0 {
		ep := endpoints[0]
		return &api.AgentServiceCheck{
			Name: req.GetName() + " HTTP Health Check",
			HTTP: fmt.Sprintf("%s://%s:%d%s",
				ep.GetScheme(), ep.GetHost(), ep.GetPort(), ep.GetHealthPath()),
			Interval:                       checkInterval,
			DeregisterCriticalServiceAfter: deregisterAfter,
		}
	}
	return &api.AgentServiceCheck{
		Name:                           req.GetName() + " gRPC Health Check",
		GRPC:                           fmt.Sprintf("%s:%d", registerHost, registerPort),
		Interval:                       checkInterval,
		DeregisterCriticalServiceAfter: deregisterAfter,
	}
}

// sanitizeMetaKeys rewrites dots in metadata keys to underscores. Consul
// rejects dotted keys; readers look keys up under the rewritten form.
func sanitizeMetaKeys(meta map[string]string) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[strings.ReplaceAll(k, ".", "_")] = v
	}
	return out
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// ParseHTTPEndpoints rebuilds the endpoint list from the flat numeric-indexed
// meta keys written at registration time. A missing or malformed count yields
// no endpoints; individual entries missing a host or a parseable port are
// skipped rather than failing the whole list.
func ParseHTTPEndpoints(meta map[string]string) []*registrationv1.HttpEndpoint {
	countValue, ok := meta["http_endpoint_count"]
	if !ok || countValue == "" {
		return nil
	}
	count, err := strconv.Atoi(countValue)
	if err != nil {
		return nil
	}

	endpoints := make([]*registrationv1.HttpEndpoint, 0, count)
	for i := 0; i < count; i++ {
		prefix := fmt.Sprintf("http_endpoint_%d_", i)
		host := meta[prefix+"host"]
		portValue := meta[prefix+"port"]
		if host == "" || portValue == "" {
			continue
		}
		port, err := strconv.Atoi(portValue)
		if err != nil {
			continue
		}
		ep := &registrationv1.HttpEndpoint{
			Scheme: meta[prefix+"scheme"],
			Host:   host,
			Port:   int32(port),
		}
		if v := meta[prefix+"base_path"]; v != "" {
			ep.BasePath = v
		}
		if v := meta[prefix+"health_path"]; v != "" {
			ep.HealthPath = v
		}
		if v := meta[prefix+"tls_enabled"]; v != "" {
			ep.TlsEnabled, _ = strconv.ParseBool(v)
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints
}

// ParseGRPCServices rebuilds the gRPC service-name list from flat meta keys.
func ParseGRPCServices(meta map[string]string) []string {
	countValue, ok := meta["grpc_service_count"]
	if !ok || countValue == "" {
		return nil
	}
	count, err := strconv.Atoi(countValue)
	if err != nil {
		return nil
	}
	services := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if name := meta[fmt.Sprintf("grpc_service_%d", i)]; name != "" {
			services = append(services, name)
		}
	}
	return services
}
