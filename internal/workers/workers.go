package workers

import (
	"context"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the server process. observers
// receive every readiness outcome in addition to the HealthService.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger, observers ...ReadinessObserver) *Workers {
	return &Workers{
		workers: []Worker{
			NewReadinessWorker(services.HealthService, cfg.ReadinessInterval, logger, observers...),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
