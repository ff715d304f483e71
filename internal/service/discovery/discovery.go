// Package discovery serves the read side of the platform registry: listing,
// lookup, and resolution of registered services and modules straight from the
// discovery store, plus watch streams that poll for changes.
package discovery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/consul/api"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/consul"
	"github.com/pipestream-ai/platform-registry/pkg/ids"
)

// storeReader is the slice of the Consul adapter the query layer reads from.
type storeReader interface {
	ListCatalog(ctx context.Context) (map[string][]string, error)
	ListHealthy(ctx context.Context, serviceName string) ([]*api.ServiceEntry, error)
}

// Service answers discovery queries against the store.
type Service struct {
	store         storeReader
	watchInterval time.Duration
	log           *zap.Logger
}

// NewService builds the query layer. watchInterval is the poll cadence for
// watch streams between snapshots.
func NewService(store storeReader, watchInterval time.Duration, log *zap.Logger) *Service {
	return &Service{store: store, watchInterval: watchInterval, log: log}
}

// ListServices snapshots all healthy non-module instances. Store failures
// degrade to an empty snapshot rather than an error so watch streams and
// dashboards keep functioning through Consul blips.
func (s *Service) ListServices(ctx context.Context) *registrationv1.ListServicesResponse {
	resp := &registrationv1.ListServicesResponse{AsOf: timestamppb.Now()}
	s.eachHealthyEntry(ctx, func(entry *api.ServiceEntry) {
		if hasModuleTag(entry.Service.Tags) {
			return
		}
		resp.Services = append(resp.Services, serviceFromEntry(entry))
	})
	resp.TotalCount = int32(len(resp.Services))
	return resp
}

// ListModules snapshots all healthy module-tagged instances.
func (s *Service) ListModules(ctx context.Context) *registrationv1.ListModulesResponse {
	resp := &registrationv1.ListModulesResponse{AsOf: timestamppb.Now()}
	s.eachHealthyEntry(ctx, func(entry *api.ServiceEntry) {
		if !hasModuleTag(entry.Service.Tags) {
			return
		}
		resp.Modules = append(resp.Modules, moduleFromEntry(entry))
	})
	resp.TotalCount = int32(len(resp.Modules))
	return resp
}

// healthLookupConcurrency caps the fan-out of per-name health queries so a
// large catalog does not flood the Consul agent.
const healthLookupConcurrency = 8

// eachHealthyEntry walks every healthy instance of every catalog entry in
// stable name order. Per-name lookup failures skip that name only. Health
// lookups fan out concurrently; results are visited in name order so
// snapshots stay deterministic.
func (s *Service) eachHealthyEntry(ctx context.Context, visit func(*api.ServiceEntry)) {
	catalog, err := s.store.ListCatalog(ctx)
	if err != nil {
		s.log.Error("Failed to list catalog from Consul", zap.Error(err))
		return
	}
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([][]*api.ServiceEntry, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(healthLookupConcurrency)
	for i, name := range names {
		g.Go(func() error {
			entries, err := s.store.ListHealthy(gctx, name)
			if err != nil {
				s.log.Debug("Skipping service with failed health lookup",
					zap.String("service", name), zap.Error(err))
				return nil
			}
			results[i] = entries
			return nil
		})
	}
	// Lookup failures are swallowed per name, so Wait only flushes the group.
	_ = g.Wait()

	for _, entries := range results {
		for _, entry := range entries {
			visit(entry)
		}
	}
}

// GetServiceByName returns the first healthy instance of the named service.
func (s *Service) GetServiceByName(ctx context.Context, serviceName string) (*registrationv1.GetServiceResponse, error) {
	entries, err := s.store.ListHealthy(ctx, serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service %s: %w", serviceName, err)
	}
	if len(entries) == 0 {
		return nil, status.Errorf(codes.NotFound, "Service not found: %s", serviceName)
	}
	return serviceFromEntry(entries[0]), nil
}

// GetServiceByID resolves the instance whose id matches exactly. The service
// name needed for the store query is recovered from the id's trailing
// host and port tokens.
func (s *Service) GetServiceByID(ctx context.Context, serviceID string) (*registrationv1.GetServiceResponse, error) {
	serviceName, ok := ids.ServiceNameFromID(serviceID)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid service ID format: %s", serviceID)
	}
	entries, err := s.store.ListHealthy(ctx, serviceName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service %s: %w", serviceID, err)
	}
	if len(entries) == 0 {
		return nil, status.Errorf(codes.NotFound, "Service not found: %s", serviceID)
	}
	for _, entry := range entries {
		if entry.Service.ID == serviceID {
			return serviceFromEntry(entry), nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "Service instance not found: %s", serviceID)
}

// GetModuleByName returns the first healthy module-tagged instance.
func (s *Service) GetModuleByName(ctx context.Context, moduleName string) (*registrationv1.GetModuleResponse, error) {
	entries, err := s.store.ListHealthy(ctx, moduleName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up module %s: %w", moduleName, err)
	}
	for _, entry := range entries {
		if hasModuleTag(entry.Service.Tags) {
			return moduleFromEntry(entry), nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "Module not found: %s", moduleName)
}

// GetModuleByID resolves a module instance by exact id, gated on the module
// tag so a plain service cannot masquerade as a module.
func (s *Service) GetModuleByID(ctx context.Context, moduleID string) (*registrationv1.GetModuleResponse, error) {
	moduleName, ok := ids.ServiceNameFromID(moduleID)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid module ID format: %s", moduleID)
	}
	entries, err := s.store.ListHealthy(ctx, moduleName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up module %s: %w", moduleID, err)
	}
	if len(entries) == 0 {
		return nil, status.Errorf(codes.NotFound, "Module not found: %s", moduleID)
	}
	for _, entry := range entries {
		if entry.Service.ID == moduleID && hasModuleTag(entry.Service.Tags) {
			return moduleFromEntry(entry), nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "Module instance not found: %s", moduleID)
}

// Resolve selects the best healthy instance matching the request's tag and
// capability constraints. Among matching instances the first wins; there is
// no guaranteed load-balancing strategy beyond the store's ordering. Resolve
// never errors: failures are reported inside the response.
func (s *Service) Resolve(ctx context.Context, req *registrationv1.ResolveServiceRequest) *registrationv1.ResolveServiceResponse {
	serviceName := req.GetServiceName()
	resp := &registrationv1.ResolveServiceResponse{
		ServiceName: serviceName,
		ResolvedAt:  timestamppb.Now(),
	}

	entries, err := s.store.ListHealthy(ctx, serviceName)
	if err != nil {
		s.log.Error("Failed to resolve service",
			zap.String("service", serviceName), zap.Error(err))
		resp.SelectionReason = "Error resolving service: " + err.Error()
		return resp
	}
	if len(entries) == 0 {
		resp.SelectionReason = "No healthy instances found"
		return resp
	}

	matching := entries
	if required := req.GetRequiredTags(); len(required) > 0 {
		matching = filterEntries(matching, func(e *api.ServiceEntry) bool {
			return containsAll(e.Service.Tags, required)
		})
	}
	if required := req.GetRequiredCapabilities(); len(required) > 0 {
		matching = filterEntries(matching, func(e *api.ServiceEntry) bool {
			_, capabilities := partitionTags(e.Service.Tags)
			return containsAll(capabilities, required)
		})
	}
	if len(matching) == 0 {
		resp.TotalInstances = int32(len(entries))
		resp.HealthyInstances = int32(len(entries))
		resp.SelectionReason = "No instances match the required criteria"
		return resp
	}

	selected := matching[0]
	reason := "Selected first available healthy instance"
	if req.GetPreferLocal() {
		for _, e := range matching {
			if e.Service.Address == "localhost" || e.Service.Address == "127.0.0.1" {
				selected = e
				reason = "Selected local instance as requested"
				break
			}
		}
	}

	svc := selected.Service
	host, port := advertisedAddress(svc)
	resp.Found = true
	resp.Host = host
	resp.Port = port
	resp.ServiceId = svc.ID
	resp.TotalInstances = int32(len(entries))
	resp.HealthyInstances = int32(len(matching))
	resp.SelectionReason = reason
	if len(svc.Meta) > 0 {
		resp.Metadata = copyMeta(svc.Meta)
		resp.Version = svc.Meta["version"]
		resp.HttpEndpoints = consul.ParseHTTPEndpoints(svc.Meta)
		resp.HttpSchemaArtifactId = svc.Meta["http_schema_artifact_id"]
		resp.HttpSchemaVersion = svc.Meta["http_schema_version"]
	}
	resp.Tags, resp.Capabilities = partitionTags(svc.Tags)
	return resp
}

func filterEntries(entries []*api.ServiceEntry, keep func(*api.ServiceEntry) bool) []*api.ServiceEntry {
	out := make([]*api.ServiceEntry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func containsAll(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, v := range have {
		set[v] = struct{}{}
	}
	for _, v := range want {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
