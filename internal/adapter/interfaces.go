// SPDX-License-Identifier: Apache-2.0

// Package adapter provides HTTP clients for the two remote surfaces the
// assistant talks to: the public geolocation provider and the assistant's own
// REST API (used by the terminal client).
//
// Both clients map transport-level failures to wrapped errors so callers can
// distinguish "the upstream said no" from "the network died" without parsing
// response bodies themselves.
package adapter

import (
	"context"

	"github.com/dudhatpatel/cyberdefender/models"
)

// GeoLocator resolves an IP address to geolocation data enriched with the
// VPN-likelihood heuristic. An empty ip resolves the caller's own address.
type GeoLocator interface {
	Lookup(ctx context.Context, ip string) (models.IPInfo, error)
}

// AssistantClient is the terminal client's view of the assistant REST API.
// One method per endpoint; all methods honor ctx cancellation.
type AssistantClient interface {
	// Chat sends a free-text message and returns the classified reply.
	Chat(ctx context.Context, message string) (models.ClassifyResult, error)

	// CheckPassword scores a password and returns feedback.
	CheckPassword(ctx context.Context, password string) (models.PasswordStrength, error)

	// GeneratePassword requests a random password with the given options.
	GeneratePassword(ctx context.Context, opts models.PasswordOptions) (string, error)

	// Hash returns the hex digest of text under the named algorithm.
	Hash(ctx context.Context, text, algorithm string) (string, error)

	// Encrypt and Decrypt round plaintext through the server's passphrase
	// cipher.
	Encrypt(ctx context.Context, text, passphrase string) (string, error)
	Decrypt(ctx context.Context, ciphertext, passphrase string) (string, error)

	// Encode and Decode apply the named scheme ("base64" or "url").
	Encode(ctx context.Context, text, scheme string) (string, error)
	Decode(ctx context.Context, text, scheme string) (string, error)

	// CheckLink runs the phishing heuristics against a URL.
	CheckLink(ctx context.Context, url string) (models.PhishingCheck, error)

	// CheckUPI validates a UPI payment identifier.
	CheckUPI(ctx context.Context, upiID string) (bool, error)

	// IPInfo resolves geolocation for ip via the server.
	IPInfo(ctx context.Context, ip string) (models.IPInfo, error)

	// AnalyzeDomain runs the full domain security analysis.
	AnalyzeDomain(ctx context.Context, domain string) (models.DomainSecurityResult, error)

	// UploadFile stores a file in the server's secure transfer vault and
	// returns the receipt with the one-time password.
	UploadFile(ctx context.Context, fileName string, content []byte) (models.SecureFileUpload, error)

	// DownloadFile retrieves a stored file by ID and password.
	DownloadFile(ctx context.Context, fileID, password string) (models.SecureFileDownload, error)

	// Laws and Frauds fetch the compliance reference catalogues.
	Laws(ctx context.Context) ([]models.LawReference, error)
	Frauds(ctx context.Context) ([]models.FraudPattern, error)
}
