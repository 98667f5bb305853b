package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/service"
	grpcgo "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// FeedServiceName is the service name reported through the standard gRPC
// health protocol alongside the overall ("") status.
const FeedServiceName = "gofeed.Feed"

// Handler is the root gRPC transport handler.
//
// The feed API itself is served over HTTP; over gRPC the process exposes the
// standard health service whose status follows storage readiness.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health is the grpc_health_v1 implementation. It starts NOT_SERVING.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(FeedServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpcgo.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetReady switches the reported health status. It is called by the
// readiness worker after every storage probe.
func (h *Handler) SetReady(ready bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(FeedServiceName, st)
}

// Shutdown sets every status to NOT_SERVING and ignores later SetReady calls.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging returns an interceptor that writes one access log line per
// unary call.
func (h *Handler) UnaryLogging() grpcgo.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpcgo.UnaryServerInfo, next grpcgo.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		h.logger.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("grpc call served")

		return resp, err
	}
}
