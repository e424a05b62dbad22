// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:9090"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 9090, addr.Port)

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("host:not-a-number"))
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Duration
	}{
		{name: "string form", raw: `"1h30m"`, expected: 90 * time.Minute},
		{name: "numeric nanoseconds", raw: `1000000000`, expected: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &d))
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}

	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultGeoAPIBaseURL, cfg.Adapter.GeoAPIBaseURL)
	assert.Equal(t, DefaultTransferTTL, cfg.Transfer.TTL)
	assert.EqualValues(t, DefaultMaxUploadBytes, cfg.Transfer.MaxUploadBytes)

	require.NoError(t, cfg.validate())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Server: Server{HTTPAddress: "127.0.0.1:9999", RequestTimeout: time.Minute},
	}
	cfg.applyDefaults()

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "address without port",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "localhost" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty geo url",
			mutate:  func(c *StructuredConfig) { c.Adapter.GeoAPIBaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero transfer ttl",
			mutate:  func(c *StructuredConfig) { c.Transfer.TTL = 0 },
			wantErr: ErrInvalidTransferConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"version": "1.2.3"},
		"server": {"http_address": "0.0.0.0:8081", "request_timeout": "45s"},
		"transfer": {"ttl": "12h", "max_upload_bytes": 1048576}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 12*time.Hour, cfg.Transfer.TTL)
	assert.EqualValues(t, 1<<20, cfg.Transfer.MaxUploadBytes)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:7070")
	t.Setenv("TRANSFER_TTL", "6h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 6*time.Hour, cfg.Transfer.TTL)
}
