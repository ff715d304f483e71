// Package consul adapts platform registrations onto Consul's agent and
// health APIs. Registrations are written as flat string metadata because
// Consul meta values cannot nest; the decode half of the codec lives here
// too so readers and writers stay in lockstep.
package consul

import (
	"net"

	"github.com/hashicorp/consul/api"

	"github.com/pipestream-ai/platform-registry/internal/config"
)

// NewClient builds a Consul API client from service configuration.
func NewClient(cfg *config.Config) (*api.Client, error) {
	conf := api.DefaultConfig()
	conf.Address = net.JoinHostPort(cfg.ConsulHost, cfg.ConsulPort)
	if cfg.ConsulTLSEnabled {
		conf.Scheme = "https"
	}
	if cfg.ConsulHTTPToken != "" {
		conf.Token = cfg.ConsulHTTPToken
	}
	if cfg.ConsulDatacenter != "" {
		conf.Datacenter = cfg.ConsulDatacenter
	}
	return api.NewClient(conf)
}
