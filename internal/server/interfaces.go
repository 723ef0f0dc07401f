package server

import "context"

// Server defines the lifecycle of the receiver's transport.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives and then
	// shuts down gracefully.
	RunServer() error

	// Run serves until ctx is done and then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx is done.
	Shutdown(ctx context.Context) error
}
