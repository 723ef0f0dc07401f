// Package server runs the webhook receiver's HTTP listener: startup, signal
// handling and graceful shutdown.
package server
