package server

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/metrics"
)

type registrationCoordinator interface {
	Register(ctx context.Context, req *registrationv1.RegisterRequest) <-chan *registrationv1.RegistrationEvent
	Unregister(ctx context.Context, req *registrationv1.UnregisterRequest) *registrationv1.UnregisterResponse
}

type discoveryQueries interface {
	ListServices(ctx context.Context) *registrationv1.ListServicesResponse
	ListModules(ctx context.Context) *registrationv1.ListModulesResponse
	GetServiceByName(ctx context.Context, serviceName string) (*registrationv1.GetServiceResponse, error)
	GetServiceByID(ctx context.Context, serviceID string) (*registrationv1.GetServiceResponse, error)
	GetModuleByName(ctx context.Context, moduleName string) (*registrationv1.GetModuleResponse, error)
	GetModuleByID(ctx context.Context, moduleID string) (*registrationv1.GetModuleResponse, error)
	Resolve(ctx context.Context, req *registrationv1.ResolveServiceRequest) *registrationv1.ResolveServiceResponse
	WatchServices(ctx context.Context) <-chan *registrationv1.WatchServicesResponse
	WatchModules(ctx context.Context) <-chan *registrationv1.WatchModulesResponse
}

type schemaQueries interface {
	GetModuleSchema(ctx context.Context, req *registrationv1.GetModuleSchemaRequest) (*registrationv1.GetModuleSchemaResponse, error)
	GetModuleSchemaVersions(ctx context.Context, req *registrationv1.GetModuleSchemaVersionsRequest) (*registrationv1.GetModuleSchemaVersionsResponse, error)
}

// PlatformServer is the single gRPC front door. It adapts the registration
// coordinator, the discovery queries, and the schema lookups onto the
// PlatformRegistrationService surface; all domain behavior lives behind it.
type PlatformServer struct {
	coordinator registrationCoordinator
	discovery   discoveryQueries
	schemas     schemaQueries
	log         *zap.Logger
}

var _ registrationv1.PlatformRegistrationServiceServer = (*PlatformServer)(nil)

func NewPlatformServer(coordinator registrationCoordinator, discovery discoveryQueries, schemas schemaQueries, log *zap.Logger) *PlatformServer {
	return &PlatformServer{
		coordinator: coordinator,
		discovery:   discovery,
		schemas:     schemas,
		log:         log,
	}
}

// Register streams pipeline events to the caller until the coordinator
// closes the channel. A send failure abandons the stream; the pipeline keeps
// running to completion on its buffered channel so compensation still fires.
func (p *PlatformServer) Register(req *registrationv1.RegisterRequest, stream registrationv1.PlatformRegistrationService_RegisterServer) error {
	start := time.Now()
	kind := kindLabel(req.GetKind())

	metrics.ActiveRegistrations.Inc()
	defer metrics.ActiveRegistrations.Dec()

	outcome := "cancelled"
	defer func() {
		metrics.RegistrationsTotal.WithLabelValues(kind, outcome).Inc()
		metrics.RegistrationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	for event := range p.coordinator.Register(stream.Context(), req) {
		switch event.GetEventType() {
		case registrationv1.RegistrationEventType_COMPLETED:
			outcome = "completed"
		case registrationv1.RegistrationEventType_FAILED:
			outcome = "failed"
		}
		if err := stream.Send(&registrationv1.RegisterResponse{Event: event}); err != nil {
			p.log.Warn("Failed to send registration event",
				zap.String("name", req.GetName()),
				zap.Error(err))
			return err
		}
	}
	return nil
}

func (p *PlatformServer) Unregister(ctx context.Context, req *registrationv1.UnregisterRequest) (*registrationv1.UnregisterResponse, error) {
	return p.coordinator.Unregister(ctx, req), nil
}

func (p *PlatformServer) ListServices(ctx context.Context, _ *registrationv1.ListServicesRequest) (*registrationv1.ListServicesResponse, error) {
	return p.discovery.ListServices(ctx), nil
}

func (p *PlatformServer) ListModules(ctx context.Context, _ *registrationv1.ListModulesRequest) (*registrationv1.ListModulesResponse, error) {
	return p.discovery.ListModules(ctx), nil
}

func (p *PlatformServer) GetService(ctx context.Context, req *registrationv1.GetServiceRequest) (*registrationv1.GetServiceResponse, error) {
	switch id := req.GetIdentifier().(type) {
	case *registrationv1.GetServiceRequest_ServiceName:
		return p.discovery.GetServiceByName(ctx, id.ServiceName)
	case *registrationv1.GetServiceRequest_ServiceId:
		return p.discovery.GetServiceByID(ctx, id.ServiceId)
	default:
		return nil, status.Error(codes.InvalidArgument, "Must provide service_name or service_id")
	}
}

func (p *PlatformServer) GetModule(ctx context.Context, req *registrationv1.GetModuleRequest) (*registrationv1.GetModuleResponse, error) {
	switch id := req.GetIdentifier().(type) {
	case *registrationv1.GetModuleRequest_ModuleName:
		return p.discovery.GetModuleByName(ctx, id.ModuleName)
	case *registrationv1.GetModuleRequest_ServiceId:
		return p.discovery.GetModuleByID(ctx, id.ServiceId)
	default:
		return nil, status.Error(codes.InvalidArgument, "Must provide module_name or service_id")
	}
}

func (p *PlatformServer) ResolveService(ctx context.Context, req *registrationv1.ResolveServiceRequest) (*registrationv1.ResolveServiceResponse, error) {
	return p.discovery.Resolve(ctx, req), nil
}

func (p *PlatformServer) WatchServices(_ *registrationv1.WatchServicesRequest, stream registrationv1.PlatformRegistrationService_WatchServicesServer) error {
	metrics.WatchStreams.WithLabelValues("service").Inc()
	defer metrics.WatchStreams.WithLabelValues("service").Dec()

	for snapshot := range p.discovery.WatchServices(stream.Context()) {
		if err := stream.Send(snapshot); err != nil {
			return err
		}
	}
	return nil
}

func (p *PlatformServer) WatchModules(_ *registrationv1.WatchModulesRequest, stream registrationv1.PlatformRegistrationService_WatchModulesServer) error {
	metrics.WatchStreams.WithLabelValues("module").Inc()
	defer metrics.WatchStreams.WithLabelValues("module").Dec()

	for snapshot := range p.discovery.WatchModules(stream.Context()) {
		if err := stream.Send(snapshot); err != nil {
			return err
		}
	}
	return nil
}

func (p *PlatformServer) GetModuleSchema(ctx context.Context, req *registrationv1.GetModuleSchemaRequest) (*registrationv1.GetModuleSchemaResponse, error) {
	return p.schemas.GetModuleSchema(ctx, req)
}

func (p *PlatformServer) GetModuleSchemaVersions(ctx context.Context, req *registrationv1.GetModuleSchemaVersionsRequest) (*registrationv1.GetModuleSchemaVersionsResponse, error) {
	return p.schemas.GetModuleSchemaVersions(ctx, req)
}

func kindLabel(kind registrationv1.ServiceType) string {
	switch kind {
	case registrationv1.ServiceType_SERVICE_TYPE_SERVICE:
		return "service"
	case registrationv1.ServiceType_SERVICE_TYPE_MODULE:
		return "module"
	default:
		return "unspecified"
	}
}
