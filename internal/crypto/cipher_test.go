// SPDX-License-Identifier: Apache-2.0

package crypto_test

import (
	"testing"

	"github.com/dudhatpatel/cyberdefender/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherService_EncryptDecrypt_RoundTrip(t *testing.T) {
	svc := crypto.NewCipherService()

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "ascii", plaintext: "attack at dawn"},
		{name: "unicode", plaintext: "пароль 密码 🔐"},
		{name: "empty", plaintext: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := svc.EncryptString(tt.plaintext, "passphrase")
			require.NoError(t, err)
			assert.NotContains(t, blob, tt.plaintext)

			got, err := svc.DecryptString(blob, "passphrase")
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestCipherService_Decrypt_WrongPassphrase(t *testing.T) {
	svc := crypto.NewCipherService()

	blob, err := svc.EncryptString("secret", "right")
	require.NoError(t, err)

	_, err = svc.DecryptString(blob, "wrong")
	assert.Error(t, err)
}

func TestCipherService_Decrypt_MalformedBlob(t *testing.T) {
	svc := crypto.NewCipherService()

	tests := []struct {
		name string
		blob string
	}{
		{name: "not base64", blob: "%%%not-base64%%%"},
		{name: "too short", blob: "YWJj"}, // "abc"
		{name: "empty", blob: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DecryptBytes(tt.blob, "any")
			assert.Error(t, err)
		})
	}
}

func TestCipherService_Encrypt_FreshSaltPerCall(t *testing.T) {
	svc := crypto.NewCipherService()

	first, err := svc.EncryptString("same plaintext", "same passphrase")
	require.NoError(t, err)
	second, err := svc.EncryptString("same plaintext", "same passphrase")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDigest(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		expected  string
	}{
		{name: "md5", algorithm: "md5", expected: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{name: "sha1", algorithm: "sha1", expected: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{name: "sha256", algorithm: "sha256", expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{name: "sha512", algorithm: "sha512", expected: "309ecc489c12d6eb4cc40f50c902f2b4d0ed77ee511a7c7a9bcd3ca86d4cd86f989dd35bc5ff499670da34255b45b0cfd830e81f605dcf7dc5542e93ae9cd76f"},
		{name: "uppercase algorithm name", algorithm: "SHA256", expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{name: "unknown falls back to sha256", algorithm: "whirlpool", expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, crypto.Digest("hello world", tt.algorithm))
		})
	}
}
