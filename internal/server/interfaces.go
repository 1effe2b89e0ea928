package server

import "context"

// Server defines the lifecycle contract of the development API server.
//
// [RunServer] blocks until SIGINT, SIGTERM or SIGQUIT is received and then
// shuts everything down; [Run] does the same for an arbitrary context.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
