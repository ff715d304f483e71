package consul

import (
	"context"
	"fmt"

	"github.com/hashicorp/consul/api"
	"go.uber.org/zap"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
)

// agentAPI is the slice of *api.Agent the registrar uses.
type agentAPI interface {
	ServiceRegisterOpts(reg *api.AgentServiceRegistration, opts api.ServiceRegisterOpts) error
	ServiceDeregisterOpts(serviceID string, q *api.QueryOptions) error
}

// healthAPI is the slice of *api.Health the registrar uses.
type healthAPI interface {
	Service(service, tag string, passingOnly bool, q *api.QueryOptions) ([]*api.ServiceEntry, *api.QueryMeta, error)
}

// catalogAPI is the slice of *api.Catalog the registrar uses.
type catalogAPI interface {
	Services(q *api.QueryOptions) (map[string][]string, *api.QueryMeta, error)
}

// Registrar registers and deregisters platform services against a Consul
// agent and reads the catalog and health endpoints for the discovery layer.
type Registrar struct {
	agent   agentAPI
	health  healthAPI
	catalog catalogAPI
	log     *zap.Logger
}

// NewRegistrar wraps a Consul client.
func NewRegistrar(client *api.Client, log *zap.Logger) *Registrar {
	return &Registrar{
		agent:   client.Agent(),
		health:  client.Health(),
		catalog: client.Catalog(),
		log:     log,
	}
}

// Register writes the service registration under the given id.
func (r *Registrar) Register(ctx context.Context, req *registrationv1.RegisterRequest, serviceID string) error {
	reg := buildRegistration(req, serviceID)
	r.log.Info("Registering with Consul",
		zap.String("service_id", serviceID),
		zap.String("name", reg.Name),
		zap.String("address", reg.Address),
		zap.Int("port", reg.Port))

	opts := api.ServiceRegisterOpts{}.WithContext(ctx)
	if err := r.agent.ServiceRegisterOpts(reg, opts); err != nil {
		r.log.Error("Consul registration failed",
			zap.String("service_id", serviceID), zap.Error(err))
		return fmt.Errorf("failed to register %s with consul: %w", serviceID, err)
	}
	r.log.Info("Registered with Consul", zap.String("service_id", serviceID))
	return nil
}

// Deregister removes the registration with the given id.
func (r *Registrar) Deregister(ctx context.Context, serviceID string) error {
	q := (&api.QueryOptions{}).WithContext(ctx)
	if err := r.agent.ServiceDeregisterOpts(serviceID, q); err != nil {
		r.log.Error("Consul deregistration failed",
			zap.String("service_id", serviceID), zap.Error(err))
		return fmt.Errorf("failed to deregister %s from consul: %w", serviceID, err)
	}
	r.log.Info("Deregistered from Consul", zap.String("service_id", serviceID))
	return nil
}

// ListCatalog returns every service name in the catalog with its tags.
func (r *Registrar) ListCatalog(ctx context.Context) (map[string][]string, error) {
	services, _, err := r.catalog.Services((&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list consul catalog: %w", err)
	}
	return services, nil
}

// ListHealthy returns the instances of a service whose checks all pass.
func (r *Registrar) ListHealthy(ctx context.Context, serviceName string) ([]*api.ServiceEntry, error) {
	entries, _, err := r.health.Service(serviceName, "", true, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list healthy instances of %s: %w", serviceName, err)
	}
	return entries, nil
}

// ListAll returns every instance of a service regardless of check status.
// Startup cleanup uses it to find stale registrations left by crashed runs.
func (r *Registrar) ListAll(ctx context.Context, serviceName string) ([]*api.ServiceEntry, error) {
	entries, _, err := r.health.Service(serviceName, "", false, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list instances of %s: %w", serviceName, err)
	}
	return entries, nil
}
