// Package registration drives the platform registration pipeline: a
// forward-only state machine that registers a service or module with the
// discovery store, gates on health, persists module metadata, archives the
// config schema, and reports one event per transition on a streaming channel.
// Failures unwind a LIFO compensation stack before the terminal FAILED event
// so a half-registered instance never lingers in the discovery store.
package registration

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	modulev1 "github.com/pipestream-ai/platform-registry/api/protos/module/v1"
	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/apicurio"
	"github.com/pipestream-ai/platform-registry/internal/repository"
	"github.com/pipestream-ai/platform-registry/pkg/ids"
)

// createdBy tags schema rows written by the registration pipeline.
const createdBy = "registration-service"

// eventBuffer sizes the per-request event channel. A full module pipeline
// emits eleven events, so the pipeline goroutine never blocks on a slow
// reader before its terminal event.
const eventBuffer = 16

// Discovery is the slice of the discovery-store adapter the pipeline drives.
type Discovery interface {
	Register(ctx context.Context, req *registrationv1.RegisterRequest, serviceID string) error
	Deregister(ctx context.Context, serviceID string) error
}

// HealthWaiter blocks until a registered instance reports healthy, the
// deadline passes, or ctx is cancelled.
type HealthWaiter interface {
	WaitForHealthy(ctx context.Context, serviceName, serviceID string) bool
}

// MetadataFetcher invokes a module's registration callback over gRPC.
type MetadataFetcher interface {
	FetchModuleMetadata(ctx context.Context, moduleName string) (*modulev1.GetServiceRegistrationResponse, error)
}

// ModuleStore persists module rows and tracks schema sync state.
type ModuleStore interface {
	RegisterModule(ctx context.Context, mod *repository.Module, schemaJSON, createdBy string) (*repository.Module, error)
	DeleteModule(ctx context.Context, serviceID string) error
	MarkSchemaSynced(ctx context.Context, schemaID, artifactID string, globalID int64) error
	MarkSchemaFailed(ctx context.Context, schemaID, syncError string) error
}

// Archive registers config schemas with the external schema registry.
type Archive interface {
	CreateOrUpdate(ctx context.Context, serviceName, version, jsonSchema string) (*apicurio.SchemaRef, error)
	CreateOrUpdateWithArtifactBase(ctx context.Context, artifactBase, version, jsonSchema string) (*apicurio.SchemaRef, error)
}

// EventSink publishes lifecycle events for downstream indexers.
type EventSink interface {
	EmitServiceRegistered(serviceID, serviceName, host string, port int32, version string)
	EmitServiceUnregistered(serviceID, serviceName string)
	EmitModuleRegistered(serviceID, moduleName, host string, port int32, version, schemaID, artifactID string)
	EmitModuleUnregistered(serviceID, moduleName string)
}

// Coordinator runs registration pipelines and tracks them for shutdown.
type Coordinator struct {
	discovery Discovery
	gate      HealthWaiter
	fetcher   MetadataFetcher
	store     ModuleStore
	archive   Archive
	events    EventSink
	log       *zap.Logger

	shuttingDown atomic.Bool
	stop         chan struct{}
	inflight     sync.WaitGroup
}

// NewCoordinator wires the registration pipeline to its collaborators.
func NewCoordinator(
	discovery Discovery,
	gate HealthWaiter,
	fetcher MetadataFetcher,
	store ModuleStore,
	archive Archive,
	events EventSink,
	log *zap.Logger,
) *Coordinator {
	return &Coordinator{
		discovery: discovery,
		gate:      gate,
		fetcher:   fetcher,
		store:     store,
		archive:   archive,
		events:    events,
		log:       log,
		stop:      make(chan struct{}),
	}
}

// Register runs the registration pipeline for one request. The returned
// channel carries progress events in state-machine order and is closed when
// the pipeline ends. COMPLETED or FAILED is always the final element unless
// the caller's context is cancelled first, in which case the channel closes
// after compensation with no terminal event.
func (c *Coordinator) Register(ctx context.Context, req *registrationv1.RegisterRequest) <-chan *registrationv1.RegistrationEvent {
	out := make(chan *registrationv1.RegistrationEvent, eventBuffer)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer close(out)

		pctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			select {
			case <-c.stop:
				cancel()
			case <-pctx.Done():
			}
		}()

		p := &pipeline{c: c, ctx: pctx, req: req, out: out}
		p.run()
	}()
	return out
}

// Unregister removes the discovery record derived from the request triple
// and publishes the matching unregistered event. Persisted module metadata
// is left in place so a restart can re-register without losing history;
// deregistering an unknown instance reports failure without error.
func (c *Coordinator) Unregister(ctx context.Context, req *registrationv1.UnregisterRequest) *registrationv1.UnregisterResponse {
	serviceID := ids.ServiceID(req.GetName(), req.GetHost(), int(req.GetPort()))
	module := req.GetKind() == registrationv1.ServiceType_SERVICE_TYPE_MODULE

	resp := &registrationv1.UnregisterResponse{Timestamp: timestamppb.Now()}
	if err := c.discovery.Deregister(ctx, serviceID); err != nil {
		c.log.Error("Failed to unregister from Consul",
			zap.String("service_id", serviceID),
			zap.Error(err))
		if module {
			resp.Message = "Failed to unregister module"
		} else {
			resp.Message = "Failed to unregister service"
		}
		return resp
	}

	resp.Success = true
	if module {
		resp.Message = "Module unregistered successfully"
		c.events.EmitModuleUnregistered(serviceID, req.GetName())
	} else {
		resp.Message = "Service unregistered successfully"
		c.events.EmitServiceUnregistered(serviceID, req.GetName())
	}
	c.log.Info("Unregistered from Consul", zap.String("service_id", serviceID))
	return resp
}

// Shutdown stops accepting registrations, waits for in-flight pipelines to
// finish until ctx expires, then force-cancels the remainder. Cancelled
// pipelines still run their compensations on a fresh context.
func (c *Coordinator) Shutdown(ctx context.Context) {
	if !c.shuttingDown.CompareAndSwap(false, true) {
		return
	}
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		c.log.Info("Registration pipelines drained")
	case <-ctx.Done():
		c.log.Warn("Forcing cancellation of in-flight registrations")
		close(c.stop)
		<-done
	}
}
