package kv

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/resolver"
)

// Config is the validated snapshot of a [ClientBuilder] handed to client
// construction. It is produced by [ClientBuilder.Build] with its own copy
// of the endpoint list and must be treated as read-only afterwards.
type Config struct {
	// Endpoints are the server addresses in host:port form, in the order
	// they were configured.
	Endpoints []string

	// User and Password are the optional authentication credentials.
	// They are carried for the service layers built on top of the client;
	// the transport does not interpret them.
	User     []byte
	Password []byte

	// NameResolver is the optional address-discovery strategy. When set
	// it is registered on the channel in place of the static endpoint
	// list resolution.
	NameResolver resolver.Builder

	// DialOptions are opaque transport construction options appended
	// after the defaults, so they take precedence over them.
	DialOptions []grpc.DialOption

	// LazyInitialization delays connecting until the channel is first
	// used instead of starting to connect at construction.
	LazyInitialization bool
}
