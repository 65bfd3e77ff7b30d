package kv

//go:generate mockgen -source=interfaces.go -destination=connector_mock_test.go -package=kv

import "google.golang.org/grpc"

// Connector establishes the transport channel a [Client] operates on.
// The default implementation creates a grpc channel; tests substitute a
// mock to exercise construction without a transport.
type Connector interface {
	// Connect creates the channel described by cfg. It performs no
	// network I/O: connection establishment is driven by the returned
	// channel itself.
	Connect(cfg Config) (*grpc.ClientConn, error)
}
