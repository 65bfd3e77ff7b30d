// Package kv provides the client-side entry point for a distributed
// key-value store.
//
// Connection settings are accumulated with a fluent [ClientBuilder]:
// server endpoints, optional credentials, an optional name-resolution
// strategy, and opaque transport options. [ClientBuilder.Build] validates
// the accumulated state, freezes it into a [Config] snapshot, and
// constructs a [Client] from it. [ClientBuilder.Copy] duplicates a builder
// so configuration variants can diverge without affecting each other.
//
// The main entry points are [NewClientBuilder] and [ClientBuilder.Build].
package kv
