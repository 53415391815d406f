// Package server wires and runs the HTTP server of the application.
//
// It starts the background workers next to the listener, handles stop
// signals and performs a graceful shutdown bounded by the configured
// shutdown timeout.
package server
