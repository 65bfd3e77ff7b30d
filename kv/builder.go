// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kv

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/resolver"
)

// ClientBuilder accumulates connection settings for a key-value store
// client. Setters are fluent and return the receiver; validation failures
// are recorded on the builder (observable via [ClientBuilder.Err]) and
// reported by [ClientBuilder.Build]. A failing setter commits no partial
// mutation.
//
// A ClientBuilder is an unsynchronized mutable object; concurrent use
// from multiple goroutines requires external synchronization.
type ClientBuilder struct {
	endpoints    []string
	user         []byte
	password     []byte
	nameResolver resolver.Builder
	dialOptions  []grpc.DialOption
	lazyInit     bool

	connector Connector
	err       error
}

// NewClientBuilder returns an empty builder: no endpoints, no credentials,
// no name resolver, no dial options, lazy initialization disabled.
// No validation occurs at construction.
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		endpoints: make([]string, 0, 4),
		connector: grpcConnector{},
	}
}

// WithEndpoints appends server endpoints to the builder. Endpoints are
// trimmed of surrounding whitespace and appended in argument order;
// repeated calls are additive and duplicates are allowed.
//
// The whole batch is rejected — nothing is appended — when it is empty
// ([ErrNoEndpoints]) or when any endpoint trims to the empty string
// ([ErrBlankEndpoint]).
func (b *ClientBuilder) WithEndpoints(endpoints ...string) *ClientBuilder {
	if len(endpoints) == 0 {
		b.err = errors.Join(b.err, ErrNoEndpoints)
		return b
	}

	trimmed := make([]string, 0, len(endpoints))
	for _, endpoint := range endpoints {
		e := strings.TrimSpace(endpoint)
		if e == "" {
			b.err = errors.Join(b.err, fmt.Errorf("%w: %q", ErrBlankEndpoint, endpoint))
			return b
		}
		trimmed = append(trimmed, e)
	}

	b.endpoints = append(b.endpoints, trimmed...)
	return b
}

// WithUser sets the authentication user name. Last write wins.
// A nil user is rejected with [ErrNilArgument].
func (b *ClientBuilder) WithUser(user []byte) *ClientBuilder {
	if user == nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: user", ErrNilArgument))
		return b
	}

	b.user = user
	return b
}

// WithPassword sets the authentication password. Last write wins.
// A nil password is rejected with [ErrNilArgument].
func (b *ClientBuilder) WithPassword(password []byte) *ClientBuilder {
	if password == nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: password", ErrNilArgument))
		return b
	}

	b.password = password
	return b
}

// WithNameResolver sets the name-resolution strategy used to discover
// server addresses instead of (or in addition to) a static endpoint list.
// The resolver is stored opaquely and handed to the transport unmodified.
// A nil resolver is rejected with [ErrNilArgument].
func (b *ClientBuilder) WithNameResolver(nameResolver resolver.Builder) *ClientBuilder {
	if nameResolver == nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: name resolver", ErrNilArgument))
		return b
	}

	b.nameResolver = nameResolver
	return b
}

// WithDialOptions replaces the transport construction options passed
// through to the underlying channel. The options are not inspected or
// validated. Calling with no arguments clears any previously set options.
func (b *ClientBuilder) WithDialOptions(opts ...grpc.DialOption) *ClientBuilder {
	b.dialOptions = opts
	return b
}

// WithLazyInitialization defines whether the client connects on
// construction or delays connecting until first use. Default is false.
func (b *ClientBuilder) WithLazyInitialization(lazy bool) *ClientBuilder {
	b.lazyInit = lazy
	return b
}

// Endpoints returns the endpoints accumulated so far. The returned slice
// is the builder's own backing storage, not a defensive copy.
func (b *ClientBuilder) Endpoints() []string {
	return b.endpoints
}

// User returns the configured user name, or nil if unset.
func (b *ClientBuilder) User() []byte {
	return b.user
}

// Password returns the configured password, or nil if unset.
func (b *ClientBuilder) Password() []byte {
	return b.password
}

// NameResolver returns the configured name resolver, or nil if unset.
func (b *ClientBuilder) NameResolver() resolver.Builder {
	return b.nameResolver
}

// DialOptions returns the configured transport options, or nil if unset.
func (b *ClientBuilder) DialOptions() []grpc.DialOption {
	return b.dialOptions
}

// IsLazyInitialization reports whether lazy initialization is enabled.
func (b *ClientBuilder) IsLazyInitialization() bool {
	return b.lazyInit
}

// Err returns the error accumulated by failed setter calls, or nil.
func (b *ClientBuilder) Err() error {
	return b.err
}

// Build validates the accumulated state and constructs a new [Client].
//
// It fails with the accumulated setter error if any call was rejected,
// and with [ErrNoEndpointSource] when neither endpoints nor a name
// resolver are configured. Errors raised by client construction itself
// propagate to the caller unchanged.
//
// Build does not consume the builder: it snapshots the current state into
// an independent [Config], so the builder may be mutated or built again
// afterwards.
func (b *ClientBuilder) Build() (*Client, error) {
	if b.err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", b.err)
	}

	if len(b.endpoints) == 0 && b.nameResolver == nil {
		return nil, ErrNoEndpointSource
	}

	cfg := Config{
		Endpoints:          append([]string(nil), b.endpoints...),
		User:               b.user,
		Password:           b.password,
		NameResolver:       b.nameResolver,
		DialOptions:        b.dialOptions,
		LazyInitialization: b.lazyInit,
	}

	return newClient(cfg, b.connector)
}

// Copy returns a new independent builder with the same settings.
//
// The endpoint list is duplicated, so mutating either builder's endpoints
// does not affect the other. Credentials, the name resolver, and the dial
// options are shared by reference: they are treated as immutable once
// handed to a builder. The lazy flag and any accumulated error are copied
// by value.
func (b *ClientBuilder) Copy() *ClientBuilder {
	duplicate := *b
	duplicate.endpoints = append(make([]string, 0, len(b.endpoints)), b.endpoints...)
	return &duplicate
}
