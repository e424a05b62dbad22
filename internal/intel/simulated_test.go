// SPDX-License-Identifier: Apache-2.0

package intel_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/dudhatpatel/cyberdefender/internal/intel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSource(delay time.Duration) intel.DomainIntelligenceSource {
	return intel.NewSimulatedSource(delay, rand.New(rand.NewPCG(1, 2)))
}

func TestSimulatedSource_KnownDomainProfile(t *testing.T) {
	source := seededSource(0)
	ctx := context.Background()

	whois, err := source.Whois(ctx, "google.com")
	require.NoError(t, err)
	assert.Equal(t, "Google LLC", whois.Owner)
	assert.Equal(t, "MarkMonitor, Inc.", whois.Registrar)
	assert.False(t, whois.IsBlacklisted)

	email, err := source.EmailSecurity(ctx, "google.com")
	require.NoError(t, err)
	assert.True(t, email.HasSPF)
	assert.True(t, email.HasDMARC)
	assert.Empty(t, email.Vulnerabilities)

	// lookup is case-insensitive
	whoisUpper, err := source.Whois(ctx, "GOOGLE.com")
	require.NoError(t, err)
	assert.Equal(t, whois, whoisUpper)
}

func TestSimulatedSource_UnknownDomainSubdomains(t *testing.T) {
	source := seededSource(0)

	subdomains, err := source.Subdomains(context.Background(), "example.org")
	require.NoError(t, err)
	require.Len(t, subdomains, 4)

	assert.Equal(t, "www.example.org", subdomains[0].Name)
	assert.False(t, subdomains[0].IsSensitive)
	assert.Equal(t, "admin.example.org", subdomains[3].Name)
	assert.True(t, subdomains[3].IsSensitive)
}

func TestSimulatedSource_TLSIsSecureDerivedFromVersions(t *testing.T) {
	source := seededSource(0)

	// Independent draws; over a batch of domains IsSecure must always agree
	// with the drawn protocol support.
	for i := 0; i < 50; i++ {
		tls, err := source.TLSSecurity(context.Background(), "example.org")
		require.NoError(t, err)
		assert.Equal(t, tls.SupportsTLS12 || tls.SupportsTLS13, tls.IsSecure)
	}
}

func TestSimulatedSource_DelayHonorsCancellation(t *testing.T) {
	source := seededSource(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := source.Whois(ctx, "example.org")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestIsSensitiveSubdomain(t *testing.T) {
	tests := []struct {
		name      string
		subdomain string
		sensitive bool
	}{
		{name: "admin", subdomain: "admin.example.com", sensitive: true},
		{name: "dev", subdomain: "dev.example.com", sensitive: true},
		{name: "embedded admin", subdomain: "webadmin.example.com", sensitive: true},
		{name: "uppercase", subdomain: "ADMIN.example.com", sensitive: true},
		{name: "www", subdomain: "www.example.com", sensitive: false},
		{name: "mail", subdomain: "mail.example.com", sensitive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, intel.IsSensitiveSubdomain(tt.subdomain))
		})
	}
}
