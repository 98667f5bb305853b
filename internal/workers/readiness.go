// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/service"
)

type readinessWorker struct {
	health    service.HealthService
	interval  time.Duration
	observers []ReadinessObserver

	logger *logger.Logger
}

// NewReadinessWorker returns a Worker that probes storage through health
// once on Run and then every interval until ctx is cancelled.
func NewReadinessWorker(health service.HealthService, interval time.Duration, logger *logger.Logger, observers ...ReadinessObserver) Worker {
	return &readinessWorker{
		health:    health,
		interval:  interval,
		observers: observers,
		logger:    logger,
	}
}

// Run makes the first probe synchronously so the process is ready as soon
// as storage is, then keeps probing in the background.
func (w *readinessWorker) Run(ctx context.Context) {
	w.probe(ctx)

	if w.interval <= 0 {
		w.logger.Warn().Msg("readiness interval is not positive, periodic probing disabled")
		return
	}

	go w.loop(ctx)
}

func (w *readinessWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("readiness worker stopped")
			return
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

func (w *readinessWorker) probe(ctx context.Context) {
	// HealthService logs state transitions
	ready := w.health.Probe(ctx) == nil
	for _, o := range w.observers {
		o.SetReady(ready)
	}
}
