package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/handler"
	"github.com/MKhiriev/go-feed/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.shutdownTimeout = cfg.ShutdownTimeout
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) run(ctx context.Context) error {
	transports := s.transports()
	// check if any server was created
	if len(transports) == 0 {
		return errNoServersAreCreated
	}

	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// bind every address before serving so a taken port fails fast
	for i, t := range transports {
		if err := t.listen(); err != nil {
			return errors.Join(err, s.shutdown(transports[:i]))
		}
	}

	served := make(chan error, len(transports))
	for _, t := range transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func() {
			served <- t.serve()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested")
	case runErr = <-served:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	runErr = errors.Join(runErr, s.shutdown(transports))
	if runErr == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}

	return runErr
}

func (s *server) shutdown(transports []transport) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var err error
	// finish started servers
	for _, t := range transports {
		err = errors.Join(err, t.shutdown(ctx))
	}
	return err
}
