// SPDX-License-Identifier: Apache-2.0

package adapter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dudhatpatel/cyberdefender/internal/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoLocator_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8.8.8.8/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ip": "8.8.8.8",
			"country_name": "United States",
			"city": "Mountain View",
			"region": "California",
			"org": "GOOGLE",
			"timezone": "America/Los_Angeles",
			"latitude": 37.42,
			"longitude": -122.08,
			"hosting": true
		}`))
	}))
	defer srv.Close()

	locator := adapter.NewGeoLocator(adapter.GeoConfig{BaseURL: srv.URL, Timeout: time.Second})

	info, err := locator.Lookup(context.Background(), "8.8.8.8")
	require.NoError(t, err)

	assert.Equal(t, "8.8.8.8", info.IP)
	assert.Equal(t, "United States", info.CountryName)
	assert.Equal(t, "Mountain View", info.City)
	assert.True(t, info.VPNDetection.IsVPNLikely)
	assert.Equal(t, []string{"Hosting/datacenter detected"}, info.VPNDetection.Flags)
}

func TestGeoLocator_Lookup_OwnAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip": "203.0.113.7", "country_name": "India"}`))
	}))
	defer srv.Close()

	locator := adapter.NewGeoLocator(adapter.GeoConfig{BaseURL: srv.URL, Timeout: time.Second})

	info, err := locator.Lookup(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "203.0.113.7", info.IP)
	assert.False(t, info.VPNDetection.IsVPNLikely)
	assert.Empty(t, info.VPNDetection.Flags)
}

func TestGeoLocator_Lookup_AllAnonymityFlags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip": "198.51.100.1", "proxy": true, "tor": true, "datacenter": true}`))
	}))
	defer srv.Close()

	locator := adapter.NewGeoLocator(adapter.GeoConfig{BaseURL: srv.URL, Timeout: time.Second})

	info, err := locator.Lookup(context.Background(), "198.51.100.1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Hosting/datacenter detected",
		"Proxy detected",
		"TOR exit node detected",
	}, info.VPNDetection.Flags)
}

func TestGeoLocator_Lookup_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": true, "reason": "Reserved IP Address"}`))
	}))
	defer srv.Close()

	locator := adapter.NewGeoLocator(adapter.GeoConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := locator.Lookup(context.Background(), "127.0.0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Reserved IP Address")
}

func TestGeoLocator_Lookup_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	locator := adapter.NewGeoLocator(adapter.GeoConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := locator.Lookup(context.Background(), "8.8.8.8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 429")
}
