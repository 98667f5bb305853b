// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
// The HTTP server carries the feed API; the gRPC server carries the standard
// health service only.
package server
