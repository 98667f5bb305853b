package handler

import (
	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/handler/grpc"
	"github.com/MKhiriev/go-feed/internal/handler/http"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/workers"
)

// Handlers holds the transport handlers enabled by the server config. The
// HTTP handler serves the feed API, the gRPC one the health protocol.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// ReadinessObservers returns the handlers that report readiness on their
// own. The HTTP handler reads HealthService directly and is not one of them.
func (h *Handlers) ReadinessObservers() []workers.ReadinessObserver {
	var observers []workers.ReadinessObserver
	if h.GRPC != nil {
		observers = append(observers, h.GRPC)
	}
	return observers
}
