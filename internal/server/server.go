// Package server wires the registry's collaborators behind the single gRPC
// front door and owns process startup and shutdown.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/database/connect"
	"github.com/pipestream-ai/platform-registry/database/migrations"
	"github.com/pipestream-ai/platform-registry/internal/apicurio"
	"github.com/pipestream-ai/platform-registry/internal/bootstrap"
	"github.com/pipestream-ai/platform-registry/internal/callback"
	"github.com/pipestream-ai/platform-registry/internal/config"
	"github.com/pipestream-ai/platform-registry/internal/consul"
	"github.com/pipestream-ai/platform-registry/internal/events"
	"github.com/pipestream-ai/platform-registry/internal/health"
	"github.com/pipestream-ai/platform-registry/internal/metrics"
	"github.com/pipestream-ai/platform-registry/internal/repository"
	"github.com/pipestream-ai/platform-registry/internal/service/discovery"
	"github.com/pipestream-ai/platform-registry/internal/service/reconciler"
	"github.com/pipestream-ai/platform-registry/internal/service/registration"
	"github.com/pipestream-ai/platform-registry/internal/service/schema"
	"github.com/pipestream-ai/platform-registry/pkg/logger"
	"github.com/pipestream-ai/platform-registry/pkg/tracing"
)

const shutdownGrace = 30 * time.Second

// Run wires every collaborator, serves until a shutdown signal arrives, and
// tears the process down in dependency order.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Environment: cfg.AppEnv,
		LogLevel:    cfg.LogLevel,
		ServiceName: cfg.AppName,
	})
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ServiceName:    cfg.AppName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.AppEnv,
		Endpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	})
	if err != nil {
		log.Warn("Failed to initialize tracing, continuing without it", zap.Error(err))
		shutdownTracing = func(context.Context) error { return nil }
	}

	db, err := connect.Postgres(ctx, log, cfg)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := migrations.Apply(ctx, db); err != nil {
		log.Error("Failed to apply migrations", zap.Error(err))
		return
	}

	consulClient, err := consul.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create Consul client", zap.Error(err))
		return
	}
	registrar := consul.NewRegistrar(consulClient, log)
	gate := consul.NewHealthGate(registrar, cfg.HealthPollInterval, cfg.HealthCheckTimeout, log)

	archive := apicurio.NewClient(cfg.ApicurioURL, cfg.ApicurioGroup, log)

	publisher := events.NewPublisher(cfg.KafkaBrokers, events.Topics{
		ServiceRegistered:   cfg.TopicServiceRegisteredEvents,
		ServiceUnregistered: cfg.TopicServiceUnregisteredEvents,
		ModuleRegistered:    cfg.TopicModuleRegisteredEvents,
		ModuleUnregistered:  cfg.TopicModuleUnregisteredEvents,
	}, log)

	channels := callback.NewChannelManager(cfg.ChannelIdleTTL, cfg.ChannelCacheCapacity, cfg.GRPCFlowControlWindow, log)
	fetcher := callback.NewFetcher(registrar, channels, log)

	store := repository.NewModuleRepository(db, log)

	coordinator := registration.NewCoordinator(registrar, gate, fetcher, store, archive, publisher, log)
	queries := discovery.NewService(registrar, cfg.WatchInterval, log)
	schemas := schema.NewService(store, archive, fetcher, log)

	sweeper := reconciler.New(registrar, store, cfg.ReconcileInterval, cfg.ModuleStaleAfter, log)
	if err := sweeper.Start(); err != nil {
		log.Error("Failed to start module reconciler", zap.Error(err))
		return
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(log)),
		grpc.ChainStreamInterceptor(StreamServerInterceptor(log)),
		grpc.InitialWindowSize(cfg.GRPCFlowControlWindow),
		grpc.InitialConnWindowSize(cfg.GRPCFlowControlWindow),
	)
	registrationv1.RegisterPlatformRegistrationServiceServer(grpcServer,
		NewPlatformServer(coordinator, queries, schemas, log))
	healthServer := health.Register(grpcServer)
	reflection.Register(grpcServer)

	checker := health.NewChecker()
	checker.Add("postgres", func(ctx context.Context) error {
		return db.PingContext(ctx)
	})
	checker.Add("consul", func(context.Context) error {
		leader, err := consulClient.Status().Leader()
		if err != nil {
			return err
		}
		if leader == "" {
			return errors.New("no leader elected")
		}
		return nil
	})
	checker.Add("apicurio", func(ctx context.Context) error {
		if !archive.IsHealthy(ctx) {
			return errors.New("health endpoint failed")
		}
		return nil
	})
	checker.Add("kafka", func(ctx context.Context) error {
		conn, err := kafka.DialContext(ctx, "tcp", cfg.KafkaBrokers[0])
		if err != nil {
			return err
		}
		return conn.Close()
	})

	httpServer := metrics.NewServer(":"+cfg.HTTPPort, func() error {
		probeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return checker.Err(probeCtx)
	})
	go func() {
		log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}()

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Error("Failed to listen", zap.String("port", cfg.GRPCPort), zap.Error(err))
		return
	}

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	selfReg := bootstrap.New(coordinator, registrar, cfg, grpcServiceNames(grpcServer), log)
	go selfReg.Run(ctx)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		log.Warn("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		// Flip health first so load balancers stop routing, then drain.
		healthServer.Shutdown()
		selfReg.Shutdown(shutdownCtx)
		sweeper.Stop(shutdownCtx)
		coordinator.Shutdown(shutdownCtx)

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			log.Warn("Graceful stop timed out, forcing")
			grpcServer.Stop()
		}

		channels.Shutdown()
		if err := publisher.Close(); err != nil {
			log.Warn("Failed to close event publisher", zap.Error(err))
		}
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("Failed to stop HTTP server", zap.Error(err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	log.Info("gRPC server listening",
		zap.String("port", cfg.GRPCPort),
		zap.String("environment", cfg.AppEnv))
	if err := grpcServer.Serve(lis); err != nil {
		log.Error("gRPC server failed", zap.Error(err))
	}

	stop()
	<-shutdownDone
	log.Info("Server stopped gracefully")
}

// grpcServiceNames reports the service names the server exposes, for
// self-registration.
func grpcServiceNames(s *grpc.Server) func() []string {
	return func() []string {
		info := s.GetServiceInfo()
		names := make([]string, 0, len(info))
		for name := range info {
			names = append(names, name)
		}
		return names
	}
}

