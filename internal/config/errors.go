package config

import "errors"

// Validation errors returned by [Settings.validate] when a configuration
// group is invalid.
var (
	// ErrInvalidDiscoverySettings indicates invalid discovery settings
	// (for example, a negative poll interval or timeout).
	ErrInvalidDiscoverySettings = errors.New("invalid discovery settings")
	// ErrInvalidRequestSettings indicates invalid request settings
	// (for example, an unknown transport name or a negative timeout).
	ErrInvalidRequestSettings = errors.New("invalid request settings")
)
