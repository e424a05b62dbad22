// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewCipherService constructs a [CipherService] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCipherService() CipherService {
	return &cipherService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// deriveKey derives a 256-bit AES key from passphrase and salt using Argon2id
// with the parameters stored in the receiver.
func (c *cipherService) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

// EncryptBytes implements [CipherService]. It encrypts plaintext with
// AES-256-GCM under a key derived from passphrase and a fresh random salt.
// The salt and nonce are prepended to the ciphertext so DecryptBytes can
// recover them: blob = salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext.
// The blob is returned Base64 (standard encoding) encoded. Returns an error
// if the random reads or cipher creation fail.
func (c *cipherService) EncryptBytes(plaintext []byte, passphrase string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	block, err := aes.NewCipher(c.deriveKey(passphrase, salt))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptBytes implements [CipherService]. It Base64-decodes the blob
// produced by [cipherService.EncryptBytes], splits out the salt and nonce,
// re-derives the key, and decrypts the ciphertext. Returns an error if the
// blob is too short, the encoding is invalid, or the passphrase is wrong
// (authentication-tag mismatch).
func (c *cipherService) DecryptBytes(blobB64 string, passphrase string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(blobB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	if len(blob) < saltSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	block, err := aes.NewCipher(c.deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// An error here almost always means a wrong passphrase.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

// EncryptString implements [CipherService].
func (c *cipherService) EncryptString(plaintext string, passphrase string) (string, error) {
	return c.EncryptBytes([]byte(plaintext), passphrase)
}

// DecryptString implements [CipherService].
func (c *cipherService) DecryptString(blobB64 string, passphrase string) (string, error) {
	plaintext, err := c.DecryptBytes(blobB64, passphrase)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
