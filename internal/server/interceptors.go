package server

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/pipestream-ai/platform-registry/internal/metrics"
)

// UnaryServerInterceptor creates a new unary server interceptor that logs request details.
func UnaryServerInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		startTime := time.Now()

		svcName, methodName := extractServiceAndMethod(info.FullMethod)

		spanCtx, span := otel.Tracer("grpc.server").Start(ctx, info.FullMethod)
		defer span.End()

		resp, err := handler(spanCtx, req)

		duration := time.Since(startTime).Seconds()
		metrics.RequestDuration.WithLabelValues(methodName, status.Code(err).String()).Observe(duration)

		if err != nil {
			span.RecordError(err)
		}

		// Health probes fire every few seconds; logging them drowns the rest.
		if svcName != "grpc.health.v1.Health" {
			log.Info("handled request",
				zap.String("service", svcName),
				zap.String("method", methodName),
				zap.Float64("duration_seconds", duration),
				zap.Error(err),
			)
		}

		return resp, err
	}
}

// StreamServerInterceptor creates a new stream server interceptor that logs stream details.
func StreamServerInterceptor(log *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		svcName, methodName := extractServiceAndMethod(info.FullMethod)

		tr := otel.Tracer("grpc.server")
		ctx, span := tr.Start(ss.Context(), info.FullMethod)
		defer span.End()

		wrapped := &wrappedStream{
			ServerStream: ss,
			ctx:          ctx,
		}

		start := time.Now()

		err := handler(srv, wrapped)

		duration := time.Since(start).Seconds()
		metrics.RequestDuration.WithLabelValues(methodName, status.Code(err).String()).Observe(duration)

		if err != nil {
			span.RecordError(err)
		}

		log.Info("gRPC stream",
			zap.String("service", svcName),
			zap.String("method", methodName),
			zap.Float64("duration_seconds", duration),
			zap.Error(err),
		)

		return err
	}
}

// wrappedStream wraps grpc.ServerStream to include tracing information.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the custom context with tracing information.
func (w *wrappedStream) Context() context.Context {
	return w.ctx
}

// extractServiceAndMethod extracts the service and method names from the full method string.
// Returns serviceName and methodName as strings.
func extractServiceAndMethod(fullMethod string) (serviceName, methodName string) {
	// fullMethod format: "/package.service/method"
	parts := strings.SplitN(fullMethod[1:], "/", 2)
	if len(parts) != 2 {
		return "unknown", "unknown"
	}
	return parts[0], parts[1]
}
