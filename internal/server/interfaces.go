package server

// Server is the lifecycle contract for the transport server returned by
// [NewServer].
//
// RunServer blocks until a stop signal arrives and the graceful shutdown
// completes; Shutdown stops accepting new requests and drains in-flight
// ones. Shutdown is safe to call from a different goroutine than RunServer.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
