// SPDX-License-Identifier: Apache-2.0

package heuristics

import (
	"encoding/base64"
	"net/url"
)

// EncodeBase64 returns the standard Base64 encoding of text.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 reverses EncodeBase64. Malformed input yields an empty string
// rather than an error; callers treat "" as the generic decoding-failure
// sentinel.
func DecodeBase64(encoded string) string {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return string(decoded)
}

// EncodeURL percent-encodes text for safe use inside a URL component.
func EncodeURL(text string) string {
	return url.QueryEscape(text)
}

// DecodeURL reverses EncodeURL. Malformed input yields an empty string
// rather than an error.
func DecodeURL(encoded string) string {
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return ""
	}
	return decoded
}
