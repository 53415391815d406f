package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown stops accepting requests and waits for in-flight ones.
type Server interface {
	RunServer()
	Shutdown()
}
