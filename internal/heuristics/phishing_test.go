// SPDX-License-Identifier: Apache-2.0

package heuristics_test

import (
	"testing"

	"github.com/dudhatpatel/cyberdefender/internal/heuristics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPhishingLink_IPLiteralAndKeyword(t *testing.T) {
	result := heuristics.CheckPhishingLink("http://192.168.1.1/login")

	require.True(t, result.IsSuspicious)
	assert.GreaterOrEqual(t, len(result.Reasons), 2)
	assert.Contains(t, result.Reasons, "URL uses IP address instead of domain name")
	assert.Contains(t, result.Reasons, "URL contains suspicious word: login")
}

func TestCheckPhishingLink(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		suspicious bool
		reason     string
	}{
		{
			name:       "suspicious tld",
			url:        "http://freemoney.xyz",
			suspicious: true,
			reason:     "URL uses suspicious top-level domain",
		},
		{
			name:       "typosquatted brand",
			url:        "http://paypai.com/pay",
			suspicious: true,
			reason:     "Possible typosquatting of paypal",
		},
		{
			name:       "excessive subdomains",
			url:        "http://a.b.c.d.example.com",
			suspicious: true,
			reason:     "URL has an unusual number of subdomains",
		},
		{
			name:       "clean url",
			url:        "https://example.com/page",
			suspicious: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := heuristics.CheckPhishingLink(tt.url)

			assert.Equal(t, tt.suspicious, result.IsSuspicious)
			if tt.reason != "" {
				assert.Contains(t, result.Reasons, tt.reason)
			}
			if !tt.suspicious {
				assert.Empty(t, result.Reasons)
			}
		})
	}
}

func TestCheckPhishingLink_KeywordShortCircuits(t *testing.T) {
	// Multiple suspicious words present; only the first hit is reported.
	result := heuristics.CheckPhishingLink("https://example.com/secure-login-verify")

	count := 0
	for _, reason := range result.Reasons {
		if len(reason) >= 30 && reason[:30] == "URL contains suspicious word: " {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCheckPhishingLink_ExactBrandIsNotTyposquatting(t *testing.T) {
	result := heuristics.CheckPhishingLink("https://www.paypal.com/myaccount")

	for _, reason := range result.Reasons {
		assert.NotContains(t, reason, "typosquatting")
	}
}
