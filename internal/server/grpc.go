package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-feed/internal/config"
	myGRPC "github.com/MKhiriev/go-feed/internal/handler/grpc"
	"github.com/MKhiriev/go-feed/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogging()))
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) listen() error {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %q: %w", g.address, err)
	}
	g.gRPCNetListener = ln
	return nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown flips health to NOT_SERVING first so load balancers drain, then
// stops gracefully. When ctx expires first the remaining streams are cut.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	defer func() {
		// Serve closes the listener itself; this covers a listener that
		// was never served.
		if g.gRPCNetListener != nil {
			_ = g.gRPCNetListener.Close()
		}
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
