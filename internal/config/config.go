// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// cyberdefender server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for outbound integrations, currently the
	// IP geolocation provider.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Transfer holds settings of the secure file transfer store.
	Transfer Transfer `envPrefix:"TRANSFER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for outbound HTTP integrations.
type Adapter struct {
	// GeoAPIBaseURL is the base URL of the IP geolocation provider.
	// Env: ADAPTER_GEO_API_URL
	GeoAPIBaseURL string `env:"GEO_API_URL"`

	// Timeout bounds every outbound request to the geolocation provider.
	// Env: ADAPTER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Transfer holds settings of the secure file transfer store.
type Transfer struct {
	// TTL is how long an uploaded file remains downloadable. Expired records
	// are evicted lazily on the next lookup.
	// Env: TRANSFER_TTL
	TTL time.Duration `env:"TTL"`

	// MaxUploadBytes caps the size of a single uploaded file. Enforced by
	// the HTTP layer before the store is involved.
	// Env: TRANSFER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Default values applied by GetStructuredConfig for fields left unset by
// every configuration source.
const (
	DefaultAppVersion     = "0.1.0"
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultGeoAPIBaseURL  = "https://ipapi.co"
	DefaultAdapterTimeout = 15 * time.Second
	DefaultTransferTTL    = 24 * time.Hour
	DefaultMaxUploadBytes = 10 << 20 // 10 MiB
)

// GetStructuredConfig loads the full server configuration. Sources are merged
// in priority order: environment variables, then command-line flags, then the
// optional JSON file named by either of the first two. Missing values fall
// back to the package defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

func (c *StructuredConfig) applyDefaults() {
	if c.App.Version == "" {
		c.App.Version = DefaultAppVersion
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Adapter.GeoAPIBaseURL == "" {
		c.Adapter.GeoAPIBaseURL = DefaultGeoAPIBaseURL
	}
	if c.Adapter.Timeout <= 0 {
		c.Adapter.Timeout = DefaultAdapterTimeout
	}
	if c.Transfer.TTL <= 0 {
		c.Transfer.TTL = DefaultTransferTTL
	}
	if c.Transfer.MaxUploadBytes <= 0 {
		c.Transfer.MaxUploadBytes = DefaultMaxUploadBytes
	}
}
