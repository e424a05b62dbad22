// SPDX-License-Identifier: Apache-2.0

package crypto

// CipherService provides passphrase-based symmetric encryption for the
// assistant's encryption tool and the secure file transfer store.
//
// The ciphertext format is self-describing: everything needed for decryption
// except the passphrase is embedded in the blob itself.
type CipherService interface {
	// EncryptBytes encrypts plaintext with a key derived from passphrase and
	// returns a printable Base64 blob.
	EncryptBytes(plaintext []byte, passphrase string) (string, error)

	// DecryptBytes reverses EncryptBytes. It returns an error if the blob is
	// malformed or the passphrase is wrong (authentication-tag mismatch).
	DecryptBytes(blobB64 string, passphrase string) ([]byte, error)

	// EncryptString is EncryptBytes for text payloads.
	EncryptString(plaintext string, passphrase string) (string, error)

	// DecryptString is DecryptBytes for text payloads.
	DecryptString(blobB64 string, passphrase string) (string, error)
}
