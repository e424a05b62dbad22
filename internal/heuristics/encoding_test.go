// SPDX-License-Identifier: Apache-2.0

package heuristics_test

import (
	"testing"

	"github.com/dudhatpatel/cyberdefender/internal/heuristics"
	"github.com/stretchr/testify/assert"
)

func TestBase64_RoundTrip(t *testing.T) {
	tests := []string{"hello world", "", "with spaces & symbols!?", "юникод 日本語"}

	for _, text := range tests {
		assert.Equal(t, text, heuristics.DecodeBase64(heuristics.EncodeBase64(text)))
	}
}

func TestDecodeBase64_Malformed(t *testing.T) {
	assert.Equal(t, "", heuristics.DecodeBase64("!!!not base64!!!"))
}

func TestURL_RoundTrip(t *testing.T) {
	tests := []string{"hello world", "a=b&c=d", "100% true?", "plain"}

	for _, text := range tests {
		assert.Equal(t, text, heuristics.DecodeURL(heuristics.EncodeURL(text)))
	}
}

func TestDecodeURL_Malformed(t *testing.T) {
	assert.Equal(t, "", heuristics.DecodeURL("%zz"))
}
