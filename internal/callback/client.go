package callback

import (
	"context"
	"fmt"

	"github.com/hashicorp/consul/api"
	"go.uber.org/zap"

	modulev1 "github.com/pipestream-ai/platform-registry/api/protos/module/v1"
)

// instanceLister is the slice of the discovery registrar the fetcher needs.
type instanceLister interface {
	ListHealthy(ctx context.Context, serviceName string) ([]*api.ServiceEntry, error)
}

// Fetcher resolves a module against the discovery store and invokes its
// registration callback over a cached channel.
type Fetcher struct {
	lister   instanceLister
	channels *ChannelManager
	log      *zap.Logger
}

// NewFetcher wires the fetcher to discovery and the channel cache.
func NewFetcher(lister instanceLister, channels *ChannelManager, log *zap.Logger) *Fetcher {
	return &Fetcher{lister: lister, channels: channels, log: log}
}

// FetchModuleMetadata calls GetServiceRegistration on a healthy instance of
// the named module and returns its self-reported registration metadata.
func (f *Fetcher) FetchModuleMetadata(ctx context.Context, moduleName string) (*modulev1.GetServiceRegistrationResponse, error) {
	instances, err := f.lister.ListHealthy(ctx, moduleName)
	if err != nil {
		return nil, fmt.Errorf("failed to discover module %s: %w", moduleName, err)
	}

	conn, err := f.channels.GetChannel(moduleName, instances)
	if err != nil {
		return nil, err
	}

	client := modulev1.NewPipeStepProcessorServiceClient(conn)
	resp, err := client.GetServiceRegistration(ctx, &modulev1.GetServiceRegistrationRequest{})
	if err != nil {
		f.log.Warn("Module callback failed",
			zap.String("module", moduleName), zap.Error(err))
		return nil, fmt.Errorf("module callback for %s failed: %w", moduleName, err)
	}

	f.log.Debug("Module callback succeeded",
		zap.String("module", moduleName),
		zap.String("version", resp.GetVersion()))
	return resp, nil
}
