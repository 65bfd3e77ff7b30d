package config

import "errors"

// Validation errors returned by [Settings.validate] when required setting
// groups are incomplete or invalid.
var (
	// ErrNoEndpointsConfigured indicates that no server endpoint was
	// supplied by any configuration source.
	ErrNoEndpointsConfigured = errors.New("no server endpoints configured")
	// ErrBlankEndpointConfigured indicates an endpoint that is empty
	// after trimming whitespace.
	ErrBlankEndpointConfigured = errors.New("blank endpoint configured")
	// ErrIncompleteCredentials indicates a password supplied without a
	// user name.
	ErrIncompleteCredentials = errors.New("password configured without a user")
	// ErrInvalidTimeout indicates a negative dial or probe timeout.
	ErrInvalidTimeout = errors.New("timeout must not be negative")
)
