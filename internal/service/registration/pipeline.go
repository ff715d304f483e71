package registration

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/repository"
	"github.com/pipestream-ai/platform-registry/internal/service/schema"
	"github.com/pipestream-ai/platform-registry/pkg/ids"
)

// compensationTimeout bounds rollback work once a pipeline is unwinding.
// Compensations run on a fresh context so a cancelled request still rolls
// back its Consul registration and database row.
const compensationTimeout = 10 * time.Second

// pipeline is the per-request state of one Register call.
type pipeline struct {
	c   *Coordinator
	ctx context.Context
	req *registrationv1.RegisterRequest
	out chan<- *registrationv1.RegistrationEvent

	serviceID     string
	compensations []func(context.Context)
}

// run executes the branch for the request's kind. Branches return true once
// the terminal COMPLETED event is sent; any other exit either already failed
// (which compensates before emitting FAILED) or was cancelled mid-flight, in
// which case the stack is unwound here.
func (p *pipeline) run() {
	conn := p.req.GetConnectivity()
	p.serviceID = ids.ServiceID(p.req.GetName(), conn.GetAdvertisedHost(), int(conn.GetAdvertisedPort()))

	var completed bool
	if p.req.GetKind() == registrationv1.ServiceType_SERVICE_TYPE_MODULE {
		completed = p.runModule()
	} else {
		completed = p.runService()
	}
	if completed {
		p.compensations = nil
		return
	}
	p.compensate()
}

func (p *pipeline) runService() bool {
	req := p.req
	conn := req.GetConnectivity()

	if !p.emit(registrationv1.RegistrationEventType_STARTED,
		"Starting service registration", p.serviceID) {
		return false
	}
	if p.c.shuttingDown.Load() {
		p.fail("Registration failed", "Registration service is shutting down")
		return false
	}
	if !validRequest(req) {
		p.fail("Invalid service registration request", "Missing required fields")
		return false
	}
	if !p.emit(registrationv1.RegistrationEventType_VALIDATED,
		"Service registration request validated", "") {
		return false
	}

	if err := p.c.discovery.Register(p.ctx, req, p.serviceID); err != nil {
		if p.ctx.Err() != nil {
			return false
		}
		p.c.log.Error("Consul registration failed",
			zap.String("service_id", p.serviceID), zap.Error(err))
		p.fail("Failed to register with Consul", "Consul registration returned false")
		return false
	}
	p.pushDeregister()
	if !p.emit(registrationv1.RegistrationEventType_CONSUL_REGISTERED,
		"Service registered with Consul", p.serviceID) {
		return false
	}
	if !p.emit(registrationv1.RegistrationEventType_HEALTH_CHECK_CONFIGURED,
		"Health check configured", "") {
		return false
	}

	if !p.c.gate.WaitForHealthy(p.ctx, req.GetName(), p.serviceID) {
		if p.ctx.Err() != nil {
			return false
		}
		p.fail("Service registered but failed health checks",
			"Service did not become healthy within timeout period. Check service logs and connectivity.")
		return false
	}
	if !p.emit(registrationv1.RegistrationEventType_CONSUL_HEALTHY,
		"Service reported healthy by Consul", "") {
		return false
	}

	// Services may carry an OpenAPI document for their HTTP surface. The
	// archive outcome is log-only either way: the service event stream never
	// grows an APICURIO_REGISTERED element, and a failure is non-fatal since
	// the instance is already registered and healthy.
	if schema := req.GetHttpSchema(); schema != "" {
		version := req.GetHttpSchemaVersion()
		if version == "" {
			version = req.GetVersion()
		}
		base := req.GetHttpSchemaArtifactId()
		if base == "" {
			base = req.GetName() + "-http"
		}
		if _, err := p.c.archive.CreateOrUpdateWithArtifactBase(p.ctx, base, version, schema); err != nil {
			p.c.log.Warn("Failed to register HTTP schema for service",
				zap.String("service", req.GetName()),
				zap.Error(err))
		} else {
			p.c.log.Info("HTTP schema registered in Apicurio",
				zap.String("service", req.GetName()),
				zap.String("artifact_base", base))
		}
	}

	p.c.events.EmitServiceRegistered(p.serviceID, req.GetName(),
		conn.GetAdvertisedHost(), conn.GetAdvertisedPort(), req.GetVersion())
	return p.emit(registrationv1.RegistrationEventType_COMPLETED,
		"Service registration completed successfully", p.serviceID)
}

func (p *pipeline) runModule() bool {
	req := p.req
	conn := req.GetConnectivity()
	moduleName := req.GetName()

	if !p.emit(registrationv1.RegistrationEventType_STARTED,
		"Starting module registration", p.serviceID) {
		return false
	}
	if p.c.shuttingDown.Load() {
		p.fail("Registration failed", "Registration service is shutting down")
		return false
	}
	if !validRequest(req) {
		p.fail("Invalid module registration request", "Missing required fields")
		return false
	}
	if !p.emit(registrationv1.RegistrationEventType_VALIDATED,
		"Module registration request validated", "") {
		return false
	}

	if err := p.c.discovery.Register(p.ctx, req, p.serviceID); err != nil {
		if p.ctx.Err() != nil {
			return false
		}
		p.c.log.Error("Consul registration failed",
			zap.String("service_id", p.serviceID), zap.Error(err))
		p.fail("Failed to register with Consul", "Consul registration failed")
		return false
	}
	p.pushDeregister()
	if !p.emit(registrationv1.RegistrationEventType_CONSUL_REGISTERED,
		"Module registered with Consul", p.serviceID) {
		return false
	}
	if !p.emit(registrationv1.RegistrationEventType_HEALTH_CHECK_CONFIGURED,
		"Health check configured", "") {
		return false
	}

	if !p.c.gate.WaitForHealthy(p.ctx, moduleName, p.serviceID) {
		if p.ctx.Err() != nil {
			return false
		}
		p.fail("Module failed health checks",
			"Module did not become healthy within timeout period")
		return false
	}
	if !p.emit(registrationv1.RegistrationEventType_CONSUL_HEALTHY,
		"Module reported healthy by Consul", "") {
		return false
	}

	metadata, err := p.c.fetcher.FetchModuleMetadata(p.ctx, moduleName)
	if err != nil {
		if p.ctx.Err() != nil {
			return false
		}
		p.fail("Registration failed", err.Error())
		return false
	}
	if !p.emit(registrationv1.RegistrationEventType_METADATA_RETRIEVED,
		"Module metadata retrieved", "") {
		return false
	}

	schemaJSON := metadata.GetJsonConfigSchema()
	if strings.TrimSpace(schemaJSON) == "" {
		schemaJSON = schema.Synthesize(moduleName)
	}
	if !p.emit(registrationv1.RegistrationEventType_SCHEMA_VALIDATED,
		"Schema validated or synthesized", "") {
		return false
	}

	metadataJSON, err := json.Marshal(buildModuleMetadata(metadata))
	if err != nil {
		p.fail("Registration failed", err.Error())
		return false
	}
	saved, err := p.c.store.RegisterModule(p.ctx, &repository.Module{
		ServiceID:   p.serviceID,
		ServiceName: moduleName,
		Host:        conn.GetAdvertisedHost(),
		Port:        int(conn.GetAdvertisedPort()),
		Version:     req.GetVersion(),
		Metadata:    metadataJSON,
	}, schemaJSON, createdBy)
	if err != nil {
		if p.ctx.Err() != nil {
			return false
		}
		p.fail("Registration failed", err.Error())
		return false
	}
	p.pushDeleteModule()
	if !p.emit(registrationv1.RegistrationEventType_DATABASE_SAVED,
		"Module registration saved to database", p.serviceID) {
		return false
	}

	// Registry sync is best-effort. The schema row tracks the outcome so a
	// later reconciliation can retry failed syncs.
	artifactID := ""
	ref, err := p.c.archive.CreateOrUpdate(p.ctx, moduleName, req.GetVersion(), schemaJSON)
	if err != nil {
		p.c.log.Warn("Apicurio registration failed, continuing without registry sync",
			zap.String("module", moduleName),
			zap.String("version", req.GetVersion()),
			zap.Error(err))
		if markErr := p.c.store.MarkSchemaFailed(p.ctx, saved.ConfigSchemaID, err.Error()); markErr != nil {
			p.c.log.Error("Failed to record schema sync failure",
				zap.String("schema_id", saved.ConfigSchemaID), zap.Error(markErr))
		}
		if !p.emit(registrationv1.RegistrationEventType_SCHEMA_VALIDATED,
			"Apicurio registry sync skipped (failure)", "") {
			return false
		}
	} else {
		artifactID = ref.ArtifactID
		if markErr := p.c.store.MarkSchemaSynced(p.ctx, saved.ConfigSchemaID, ref.ArtifactID, ref.GlobalID); markErr != nil {
			p.c.log.Error("Failed to record schema sync",
				zap.String("schema_id", saved.ConfigSchemaID), zap.Error(markErr))
		}
		if !p.emit(registrationv1.RegistrationEventType_APICURIO_REGISTERED,
			"Schema registered in Apicurio", "") {
			return false
		}
	}

	p.c.events.EmitModuleRegistered(p.serviceID, moduleName,
		conn.GetAdvertisedHost(), conn.GetAdvertisedPort(), req.GetVersion(),
		saved.ConfigSchemaID, artifactID)
	return p.emit(registrationv1.RegistrationEventType_COMPLETED,
		"Module registration completed successfully", p.serviceID)
}

// emit sends one progress event, giving up if the request is cancelled.
func (p *pipeline) emit(eventType registrationv1.RegistrationEventType, message, serviceID string) bool {
	event := &registrationv1.RegistrationEvent{
		EventType: eventType,
		Message:   message,
		ServiceId: serviceID,
		Timestamp: timestamppb.Now(),
	}
	select {
	case p.out <- event:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// fail unwinds the compensation stack, then emits the terminal FAILED event.
func (p *pipeline) fail(message, detail string) {
	p.c.log.Error("Registration failed",
		zap.String("service_id", p.serviceID),
		zap.String("detail", detail))
	p.compensate()
	event := &registrationv1.RegistrationEvent{
		EventType:   registrationv1.RegistrationEventType_FAILED,
		Message:     message,
		ServiceId:   p.serviceID,
		ErrorDetail: detail,
		Timestamp:   timestamppb.Now(),
	}
	select {
	case p.out <- event:
	case <-p.ctx.Done():
	}
}

// compensate pops recorded handlers in reverse order. The stack is cleared
// as it unwinds so the cancellation path and fail never double-run it.
func (p *pipeline) compensate() {
	if len(p.compensations) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()
	for i := len(p.compensations) - 1; i >= 0; i-- {
		p.compensations[i](ctx)
	}
	p.compensations = nil
}

func (p *pipeline) pushDeregister() {
	serviceID := p.serviceID
	p.compensations = append(p.compensations, func(ctx context.Context) {
		if err := p.c.discovery.Deregister(ctx, serviceID); err != nil {
			p.c.log.Error("Failed to roll back Consul registration",
				zap.String("service_id", serviceID), zap.Error(err))
			return
		}
		p.c.log.Info("Rolled back Consul registration",
			zap.String("service_id", serviceID))
	})
}

func (p *pipeline) pushDeleteModule() {
	serviceID := p.serviceID
	p.compensations = append(p.compensations, func(ctx context.Context) {
		if err := p.c.store.DeleteModule(ctx, serviceID); err != nil {
			p.c.log.Error("Failed to roll back module row",
				zap.String("service_id", serviceID), zap.Error(err))
			return
		}
		p.c.log.Info("Rolled back module row",
			zap.String("service_id", serviceID))
	})
}

// validRequest checks the minimal field set every registration needs: a
// name, a concrete kind, and an advertised address.
func validRequest(req *registrationv1.RegisterRequest) bool {
	if req.GetName() == "" {
		return false
	}
	kind := req.GetKind()
	if kind != registrationv1.ServiceType_SERVICE_TYPE_SERVICE &&
		kind != registrationv1.ServiceType_SERVICE_TYPE_MODULE {
		return false
	}
	conn := req.GetConnectivity()
	return conn.GetAdvertisedHost() != "" && conn.GetAdvertisedPort() > 0
}
