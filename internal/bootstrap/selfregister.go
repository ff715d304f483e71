// Package bootstrap self-registers this process through its own registration
// pipeline so the registry shows up in discovery like any other platform
// service. Registration bypasses the gRPC client; calling our own front door
// over the network would deadlock on the health gate.
package bootstrap

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/consul/api"
	"go.uber.org/zap"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/config"
	"github.com/pipestream-ai/platform-registry/pkg/ids"
	"github.com/pipestream-ai/platform-registry/pkg/netutil"
)

// reservedGrpcServices are exposed by every server and carry no routing
// value, so they never appear in a registration request.
var reservedGrpcServices = map[string]struct{}{
	"grpc.health.v1.Health":                    {},
	"grpc.reflection.v1.ServerReflection":      {},
	"grpc.reflection.v1alpha.ServerReflection": {},
}

// pipeline is the slice of the registration coordinator the bootstrapper drives.
type pipeline interface {
	Register(ctx context.Context, req *registrationv1.RegisterRequest) <-chan *registrationv1.RegistrationEvent
}

// instanceStore lists and removes discovery records during startup cleanup
// and shutdown deregistration.
type instanceStore interface {
	ListAll(ctx context.Context, serviceName string) ([]*api.ServiceEntry, error)
	Deregister(ctx context.Context, serviceID string) error
}

// SelfRegistration registers this process on startup and deregisters it on
// shutdown. It stays inert unless REGISTRATION_SELF_ENABLED is set.
type SelfRegistration struct {
	pipeline pipeline
	store    instanceStore
	cfg      *config.Config
	services func() []string
	log      *zap.Logger

	serviceID string
}

// New wires the bootstrapper. The services func reports the gRPC service
// names this server exposes; nil means none are advertised.
func New(pipeline pipeline, store instanceStore, cfg *config.Config, services func() []string, log *zap.Logger) *SelfRegistration {
	return &SelfRegistration{
		pipeline: pipeline,
		store:    store,
		cfg:      cfg,
		services: services,
		log:      log,
	}
}

// Run drives one registration pipeline to completion. Callers start it in a
// goroutine after the gRPC and HTTP listeners are up; the health gate cannot
// see a passing check before then. Outside production, stale records for the
// same service name are removed first so restarts converge on one instance.
func (s *SelfRegistration) Run(ctx context.Context) {
	if !s.cfg.SelfRegistrationEnabled {
		s.log.Info("Self-registration disabled")
		return
	}

	req := s.buildRequest()
	s.serviceID = ids.ServiceID(
		req.GetName(),
		req.GetConnectivity().GetAdvertisedHost(),
		int(req.GetConnectivity().GetAdvertisedPort()),
	)

	if !isProdEnv(s.cfg.AppEnv) {
		s.cleanupExisting(ctx, req.GetName())
	}

	s.log.Info("Self-registering with local pipeline",
		zap.String("service", req.GetName()),
		zap.String("service_id", s.serviceID))

	for event := range s.pipeline.Register(ctx, req) {
		switch event.GetEventType() {
		case registrationv1.RegistrationEventType_COMPLETED:
			s.log.Info("Self-registration completed", zap.String("service", req.GetName()))
		case registrationv1.RegistrationEventType_FAILED:
			s.log.Error("Self-registration failed",
				zap.String("service", req.GetName()),
				zap.String("message", event.GetMessage()),
				zap.String("detail", event.GetErrorDetail()))
		default:
			s.log.Debug("Self-registration event",
				zap.String("event_type", event.GetEventType().String()),
				zap.String("message", event.GetMessage()))
		}
	}
}

// Shutdown removes this instance's discovery record. Safe to call when Run
// never registered anything.
func (s *SelfRegistration) Shutdown(ctx context.Context) {
	if s.serviceID == "" {
		return
	}
	if err := s.store.Deregister(ctx, s.serviceID); err != nil {
		s.log.Warn("Failed to deregister on shutdown",
			zap.String("service_id", s.serviceID), zap.Error(err))
		return
	}
	s.log.Info("Deregistered on shutdown", zap.String("service_id", s.serviceID))
}

func (s *SelfRegistration) buildRequest() *registrationv1.RegisterRequest {
	name := s.cfg.SelfServiceName
	if name == "" {
		name = s.cfg.AppName
	}

	host := s.cfg.SelfAdvertisedHost
	if host == "" {
		host = netutil.ResolveHost(name)
	}

	port := s.cfg.SelfAdvertisedPort
	if port <= 0 {
		port, _ = strconv.Atoi(s.cfg.GRPCPort)
	}

	connectivity := &registrationv1.Connectivity{
		AdvertisedHost: host,
		AdvertisedPort: int32(port),
	}
	if s.cfg.SelfInternalHost != "" {
		connectivity.InternalHost = s.cfg.SelfInternalHost
		internalPort := s.cfg.SelfInternalPort
		if internalPort <= 0 {
			internalPort = port
		}
		connectivity.InternalPort = int32(internalPort)
	}

	metadata := map[string]string{"environment": s.cfg.AppEnv}
	if s.cfg.SelfDescription != "" {
		metadata["description"] = s.cfg.SelfDescription
	}

	httpPort, _ := strconv.Atoi(s.cfg.HTTPPort)

	return &registrationv1.RegisterRequest{
		Name:         name,
		Kind:         registrationv1.ServiceType_SERVICE_TYPE_SERVICE,
		Connectivity: connectivity,
		Version:      s.cfg.ServiceVersion,
		Metadata:     metadata,
		Tags:         s.cfg.SelfTags,
		Capabilities: s.cfg.SelfCapabilities,
		HttpEndpoints: []*registrationv1.HttpEndpoint{{
			Scheme:     "http",
			Host:       host,
			Port:       int32(httpPort),
			HealthPath: "/healthz",
		}},
		GrpcServices: s.grpcServiceNames(),
	}
}

func (s *SelfRegistration) grpcServiceNames() []string {
	if s.services == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var names []string
	for _, name := range s.services() {
		if name == "" {
			continue
		}
		if _, reserved := reservedGrpcServices[name]; reserved {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *SelfRegistration) cleanupExisting(ctx context.Context, serviceName string) {
	entries, err := s.store.ListAll(ctx, serviceName)
	if err != nil {
		s.log.Warn("Failed to list existing registrations",
			zap.String("service", serviceName), zap.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.Service == nil || entry.Service.ID == "" {
			continue
		}
		if err := s.store.Deregister(ctx, entry.Service.ID); err != nil {
			s.log.Warn("Failed to deregister stale instance",
				zap.String("service_id", entry.Service.ID), zap.Error(err))
			continue
		}
		s.log.Info("Deregistered stale instance",
			zap.String("service_id", entry.Service.ID))
	}
}

func isProdEnv(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return true
	}
	return false
}
