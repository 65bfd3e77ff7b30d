package kv

import "errors"

// Validation errors recorded by [ClientBuilder] setters and returned by
// [ClientBuilder.Build]. Use errors.Is to distinguish them.
var (
	// ErrNilArgument indicates a required setter argument was nil
	// (user, password, or name resolver).
	ErrNilArgument = errors.New("required argument is nil")
	// ErrNoEndpoints indicates WithEndpoints was called with an empty
	// endpoint batch.
	ErrNoEndpoints = errors.New("at least one endpoint is required")
	// ErrBlankEndpoint indicates an endpoint was empty after trimming
	// surrounding whitespace.
	ErrBlankEndpoint = errors.New("invalid endpoint: blank after trimming")
	// ErrNoEndpointSource indicates Build was called on a builder with
	// neither endpoints nor a name resolver configured.
	ErrNoEndpointSource = errors.New("configure server endpoints or a name resolver before building")
)
