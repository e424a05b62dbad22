// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"testing"

	"github.com/dudhatpatel/cyberdefender/internal/crypto"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodecService() service.CodecService {
	return service.NewCodecService(crypto.NewCipherService(), logger.Nop())
}

func TestCodecService_Hash(t *testing.T) {
	svc := newCodecService()

	// Unknown algorithms fall back to SHA-256.
	assert.Equal(t, svc.Hash("hello", "sha256"), svc.Hash("hello", "whirlpool"))
	assert.NotEqual(t, svc.Hash("hello", "md5"), svc.Hash("hello", "sha256"))
	assert.Len(t, svc.Hash("hello", "md5"), 32)
}

func TestCodecService_EncryptDecrypt_RoundTrip(t *testing.T) {
	svc := newCodecService()

	ciphertext, err := svc.Encrypt("sensitive note", "passphrase")
	require.NoError(t, err)
	require.NotEmpty(t, ciphertext)

	plaintext, err := svc.Decrypt(ciphertext, "passphrase")
	require.NoError(t, err)
	assert.Equal(t, "sensitive note", plaintext)
}

func TestCodecService_Decrypt_WrongPassphrase(t *testing.T) {
	svc := newCodecService()

	ciphertext, err := svc.Encrypt("sensitive note", "passphrase")
	require.NoError(t, err)

	plaintext, err := svc.Decrypt(ciphertext, "not the passphrase")
	require.Error(t, err)
	assert.Empty(t, plaintext)
}

func TestCodecService_EncodeDecode(t *testing.T) {
	svc := newCodecService()

	tests := []struct {
		name    string
		scheme  string
		text    string
		encoded string
	}{
		{name: "base64", scheme: "base64", text: "hello", encoded: "aGVsbG8="},
		{name: "base64 scheme is case-insensitive", scheme: "Base64", text: "hello", encoded: "aGVsbG8="},
		{name: "url", scheme: "url", text: "a b&c", encoded: "a+b%26c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := svc.Encode(tt.text, tt.scheme)
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, encoded)

			decoded, err := svc.Decode(encoded, tt.scheme)
			require.NoError(t, err)
			assert.Equal(t, tt.text, decoded)
		})
	}
}

func TestCodecService_UnknownScheme(t *testing.T) {
	svc := newCodecService()

	_, err := svc.Encode("hello", "rot13")
	assert.ErrorIs(t, err, service.ErrUnknownScheme)

	_, err = svc.Decode("hello", "hex")
	assert.ErrorIs(t, err, service.ErrUnknownScheme)
}

func TestCodecService_Decode_InvalidInputYieldsEmpty(t *testing.T) {
	svc := newCodecService()

	decoded, err := svc.Decode("%%%not-base64%%%", "base64")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
