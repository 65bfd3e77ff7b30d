package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// ── construction ──────────────────────────────────────────────────────────────

// TestClient_LazyInitialization_StaysIdle verifies that a lazily built
// client does not start connecting: the channel remains idle until first
// use.
func TestClient_LazyInitialization_StaysIdle(t *testing.T) {
	client, err := NewClientBuilder().
		WithEndpoints("localhost:2379").
		WithLazyInitialization(true).
		Build()
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, connectivity.Idle, client.State())
}

// TestClient_EagerInitialization_Constructs verifies that an eagerly built
// client is usable immediately; connecting proceeds in the background.
func TestClient_EagerInitialization_Constructs(t *testing.T) {
	client, err := NewClientBuilder().
		WithEndpoints("localhost:2379").
		Build()
	require.NoError(t, err)

	assert.NotEqual(t, connectivity.Shutdown, client.State())
	require.NoError(t, client.Close())
	assert.Equal(t, connectivity.Shutdown, client.State())
}

// ── accessors ─────────────────────────────────────────────────────────────────

// TestClient_Accessors verifies the read-only surface of a constructed
// client.
func TestClient_Accessors(t *testing.T) {
	client, err := NewClientBuilder().
		WithEndpoints("kv1:2379", "kv2:2379").
		WithUser([]byte("root")).
		WithPassword([]byte("secret")).
		WithLazyInitialization(true).
		Build()
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.NotEmpty(t, client.ID())
	assert.NotNil(t, client.Conn())
	assert.Equal(t, []string{"kv1:2379", "kv2:2379"}, client.Endpoints())
	assert.Equal(t, "root", client.Username())
}

// TestClient_Username_Unset verifies the empty representation when no
// credentials were configured.
func TestClient_Username_Unset(t *testing.T) {
	client, err := NewClientBuilder().
		WithEndpoints("localhost:2379").
		WithLazyInitialization(true).
		Build()
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Empty(t, client.Username())
}

// TestClient_UniqueIDs verifies that every constructed client gets its own
// instance id.
func TestClient_UniqueIDs(t *testing.T) {
	b := NewClientBuilder().
		WithEndpoints("localhost:2379").
		WithLazyInitialization(true)

	first, err := b.Build()
	require.NoError(t, err)
	defer func() { _ = first.Close() }()

	second, err := b.Build()
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.NotEqual(t, first.ID(), second.ID())
}

// ── default connector ─────────────────────────────────────────────────────────

// TestGrpcConnector_StaticEndpoints verifies that the default connector
// creates a channel from a static endpoint list.
func TestGrpcConnector_StaticEndpoints(t *testing.T) {
	conn, err := grpcConnector{}.Connect(Config{
		Endpoints: []string{"kv1:2379", "kv2:2379"},
	})

	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, conn.Close())
}

// TestGrpcConnector_CustomResolver verifies that a configured name resolver
// is registered on the channel and its scheme forms the target.
func TestGrpcConnector_CustomResolver(t *testing.T) {
	conn, err := grpcConnector{}.Connect(Config{
		NameResolver: newTestResolver(t),
	})

	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, conn.Close())
}

// TestGrpcConnector_DialOptionPassthrough verifies that caller-supplied
// dial options are accepted unmodified.
func TestGrpcConnector_DialOptionPassthrough(t *testing.T) {
	conn, err := grpcConnector{}.Connect(Config{
		Endpoints:   []string{"localhost:2379"},
		DialOptions: []grpc.DialOption{grpc.WithUserAgent("custom-agent")},
	})

	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, conn.Close())
}

// ── id generation ─────────────────────────────────────────────────────────────

// TestNewClientID_NonEmpty verifies the id generator always yields a value.
func TestNewClientID_NonEmpty(t *testing.T) {
	id := newClientID()
	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, newClientID())
}
