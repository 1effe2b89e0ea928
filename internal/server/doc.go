// Package server wires and runs the development API server.
//
// It owns the HTTP listener and the background workers, including startup,
// signal handling, and graceful shutdown of both.
package server
