package discovery

import (
	"context"
	"time"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
)

// WatchServices streams service snapshots: one immediately, then one per
// poll interval until ctx is cancelled. Inner listing failures already
// degrade to empty snapshots, so the stream never terminates on store
// errors.
func (s *Service) WatchServices(ctx context.Context) <-chan *registrationv1.WatchServicesResponse {
	out := make(chan *registrationv1.WatchServicesResponse, 1)
	go func() {
		defer close(out)
		s.log.Info("Starting service watch stream")
		defer s.log.Info("Service watch stream closed")

		ticker := time.NewTicker(s.watchInterval)
		defer ticker.Stop()
		for {
			list := s.ListServices(ctx)
			snapshot := &registrationv1.WatchServicesResponse{
				Services:   list.GetServices(),
				AsOf:       list.GetAsOf(),
				TotalCount: list.GetTotalCount(),
			}
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// WatchModules streams module snapshots on the same cadence as WatchServices.
func (s *Service) WatchModules(ctx context.Context) <-chan *registrationv1.WatchModulesResponse {
	out := make(chan *registrationv1.WatchModulesResponse, 1)
	go func() {
		defer close(out)
		s.log.Info("Starting module watch stream")
		defer s.log.Info("Module watch stream closed")

		ticker := time.NewTicker(s.watchInterval)
		defer ticker.Stop()
		for {
			list := s.ListModules(ctx)
			snapshot := &registrationv1.WatchModulesResponse{
				Modules:    list.GetModules(),
				AsOf:       list.GetAsOf(),
				TotalCount: list.GetTotalCount(),
			}
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
