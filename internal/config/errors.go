package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a listen address without a port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound adapter settings
	// (for example, an empty geolocation provider URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidTransferConfigs indicates invalid secure transfer settings
	// (for example, a non-positive TTL or upload cap).
	ErrInvalidTransferConfigs = errors.New("invalid transfer configuration")
)
