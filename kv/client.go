package kv

import (
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"

	"github.com/MKhiriev/go-kv-client/internal/logger"
)

// Client is a handle on a key-value store cluster. It owns the transport
// channel created from a [Config] and exposes it for the service stubs
// layered on top.
//
// A Client is safe for concurrent use. Call [Client.Close] to release the
// channel.
type Client struct {
	cfg  Config
	conn *grpc.ClientConn
	id   string

	logger *logger.Logger
}

func newClient(cfg Config, connector Connector) (*Client, error) {
	conn, err := connector.Connect(cfg)
	if err != nil {
		// construction errors are the connector's to classify
		return nil, err
	}

	client := &Client{
		cfg:    cfg,
		conn:   conn,
		id:     newClientID(),
		logger: logger.NewLogger("kv-client"),
	}

	client.logger.Debug().
		Str("client_id", client.id).
		Strs("endpoints", cfg.Endpoints).
		Bool("lazy_init", cfg.LazyInitialization).
		Msg("client constructed")

	if !cfg.LazyInitialization {
		// kick off connecting now; readiness is still asynchronous and
		// connectivity errors surface on first use
		client.conn.Connect()
	}

	return client, nil
}

// ID returns the unique instance identifier attached to this client's
// log entries.
func (c *Client) ID() string {
	return c.id
}

// Conn returns the underlying transport channel. Service stubs are
// created directly on it.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Endpoints returns the endpoints the client was configured with.
func (c *Client) Endpoints() []string {
	return c.cfg.Endpoints
}

// Username returns the configured authentication user name, or the empty
// string if credentials were not set.
func (c *Client) Username() string {
	return string(c.cfg.User)
}

// State reports the current connectivity state of the channel.
func (c *Client) State() connectivity.State {
	return c.conn.GetState()
}

// Close releases the transport channel. The client must not be used
// afterwards.
func (c *Client) Close() error {
	c.logger.Info().Str("client_id", c.id).Msg("closing client")
	return c.conn.Close()
}

// newClientID generates a time-ordered instance id, falling back to a
// random one if v7 generation fails.
func newClientID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
