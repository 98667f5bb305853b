package server

import "context"

// Server defines the lifecycle contract of the process-level server managed
// by this package.
type Server interface {
	// RunServer starts every configured transport and blocks until ctx is
	// cancelled, a stop signal arrives or a transport fails. All transports
	// are shut down gracefully before it returns.
	RunServer(ctx context.Context) error
}

// transport is a single listener-backed server (HTTP or gRPC).
type transport interface {
	name() string
	// listen binds the configured address.
	listen() error
	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	// shutdown stops accepting connections and waits for in-flight work
	// until ctx expires.
	shutdown(ctx context.Context) error
}
