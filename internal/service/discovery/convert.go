package discovery

import (
	"strconv"
	"strings"

	"github.com/hashicorp/consul/api"
	"google.golang.org/protobuf/types/known/timestamppb"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/consul"
)

// serviceFromEntry rebuilds a service record from a healthy store entry,
// decoding the flat meta fields written at registration time.
func serviceFromEntry(entry *api.ServiceEntry) *registrationv1.GetServiceResponse {
	svc := entry.Service
	host, port := advertisedAddress(svc)
	resp := &registrationv1.GetServiceResponse{
		ServiceId:   svc.ID,
		ServiceName: svc.Service,
		Host:        host,
		Port:        port,
		IsHealthy:   true,
	}
	if len(svc.Meta) > 0 {
		resp.Metadata = copyMeta(svc.Meta)
		resp.Version = svc.Meta["version"]
		resp.HttpEndpoints = consul.ParseHTTPEndpoints(svc.Meta)
		resp.HttpSchemaArtifactId = svc.Meta["http_schema_artifact_id"]
		resp.HttpSchemaVersion = svc.Meta["http_schema_version"]
	}
	resp.Tags, resp.Capabilities = partitionTags(svc.Tags)
	resp.RegisteredAt = timestamppb.Now()
	resp.LastHealthCheck = timestamppb.Now()
	return resp
}

// moduleFromEntry rebuilds a module record, lifting the module-specific
// format hints out of the metadata map.
func moduleFromEntry(entry *api.ServiceEntry) *registrationv1.GetModuleResponse {
	svc := entry.Service
	host, port := advertisedAddress(svc)
	resp := &registrationv1.GetModuleResponse{
		ServiceId:  svc.ID,
		ModuleName: svc.Service,
		Host:       host,
		Port:       port,
		IsHealthy:  true,
	}
	if len(svc.Meta) > 0 {
		resp.Metadata = copyMeta(svc.Meta)
		resp.Version = svc.Meta["version"]
		resp.InputFormat = svc.Meta["input-format"]
		resp.OutputFormat = svc.Meta["output-format"]
	}
	resp.RegisteredAt = timestamppb.Now()
	resp.LastHealthCheck = timestamppb.Now()
	return resp
}

// advertisedAddress prefers the advertised pair stashed in metadata over the
// record's own address, which may be an internal endpoint only the store's
// health probe can reach.
func advertisedAddress(svc *api.AgentService) (string, int32) {
	host := svc.Address
	if h := svc.Meta["advertised-host"]; h != "" {
		host = h
	}
	port := int32(svc.Port)
	if p := svc.Meta["advertised-port"]; p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			port = int32(parsed)
		}
	}
	return host, port
}

// partitionTags splits a record's tag list into plain tags and the
// capabilities carried under the capability prefix.
func partitionTags(tags []string) (plain, capabilities []string) {
	for _, tag := range tags {
		if strings.HasPrefix(tag, consul.CapabilityTagPrefix) {
			capabilities = append(capabilities, strings.TrimPrefix(tag, consul.CapabilityTagPrefix))
		} else {
			plain = append(plain, tag)
		}
	}
	return plain, capabilities
}

func hasModuleTag(tags []string) bool {
	for _, tag := range tags {
		if tag == consul.ModuleTag {
			return true
		}
	}
	return false
}

func copyMeta(meta map[string]string) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
