package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/store"
)

type healthService struct {
	checker store.HealthChecker
	timeout time.Duration
	ready   atomic.Bool

	logger *logger.Logger
}

// NewHealthService returns a HealthService over checker. It reports not ready
// until the first successful Probe.
func NewHealthService(checker store.HealthChecker, timeout time.Duration, logger *logger.Logger) HealthService {
	return &healthService{
		checker: checker,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *healthService) Probe(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.checker.Ping(ctx); err != nil {
		if s.ready.Swap(false) {
			s.logger.Warn().Err(err).Str("func", "*healthService.Probe").Msg("storage became unavailable")
		}
		return fmt.Errorf("%w: %w", ErrStorageNotReady, err)
	}

	if !s.ready.Swap(true) {
		s.logger.Info().Str("func", "*healthService.Probe").Msg("storage is ready")
	}
	return nil
}

func (s *healthService) Ready() bool {
	return s.ready.Load()
}
