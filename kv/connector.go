package kv

import (
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/resolver"
	"google.golang.org/grpc/resolver/manual"
)

const userAgent = "go-kv-client/0.1.0"

// staticScheme is the per-channel resolver scheme used when the client is
// configured with a static endpoint list instead of a name resolver.
const staticScheme = "kv"

// grpcConnector is the default Connector. It builds the channel target and
// options from a Config and creates the channel without connecting.
type grpcConnector struct{}

func (grpcConnector) Connect(cfg Config) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		// plaintext by default; a WithTransportCredentials option passed
		// through cfg.DialOptions overrides it
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(userAgent),
	}

	var target string
	switch {
	case cfg.NameResolver != nil:
		opts = append(opts, grpc.WithResolvers(cfg.NameResolver))
		target = fmt.Sprintf("%s:///%s", cfg.NameResolver.Scheme(), strings.Join(cfg.Endpoints, ","))
	default:
		rb := manual.NewBuilderWithScheme(staticScheme)
		addresses := make([]resolver.Address, 0, len(cfg.Endpoints))
		for _, endpoint := range cfg.Endpoints {
			addresses = append(addresses, resolver.Address{Addr: endpoint})
		}
		rb.InitialState(resolver.State{Addresses: addresses})

		opts = append(opts, grpc.WithResolvers(rb))
		target = staticScheme + ":///"
	}

	opts = append(opts, cfg.DialOptions...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("create transport channel: %w", err)
	}

	return conn, nil
}
