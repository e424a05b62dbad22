// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// Digest returns the hex-encoded digest of text using the named algorithm.
// Supported algorithms are md5, sha1, sha256, and sha512 (case-insensitive).
// Any unknown algorithm falls back to sha256.
//
// md5 and sha1 are offered for interoperability only; they are not suitable
// for new security designs.
func Digest(text string, algorithm string) string {
	switch strings.ToLower(algorithm) {
	case "md5":
		sum := md5.Sum([]byte(text))
		return hex.EncodeToString(sum[:])
	case "sha1":
		sum := sha1.Sum([]byte(text))
		return hex.EncodeToString(sum[:])
	case "sha512":
		sum := sha512.Sum512([]byte(text))
		return hex.EncodeToString(sum[:])
	default:
		sum := sha256.Sum256([]byte(text))
		return hex.EncodeToString(sum[:])
	}
}
