// SPDX-License-Identifier: Apache-2.0

// Package service hosts the application services behind the HTTP handlers.
// Each service wraps one capability of the assistant; the [Services]
// aggregate wires them together for the transport layer.
package service

import (
	"context"

	"github.com/dudhatpatel/cyberdefender/models"
)

// ChatService classifies free-text chat messages into tool selections.
type ChatService interface {
	// Classify maps a user message to a canned response and tool. It is
	// total: unmatched input yields the fallback response with ToolNone.
	Classify(ctx context.Context, message string) models.ClassifyResult

	// InitialMessage is the bot greeting that opens every session.
	InitialMessage() string
}

// PasswordService scores and generates passwords.
type PasswordService interface {
	Check(password string) models.PasswordStrength
	Generate(opts models.PasswordOptions) string
}

// CodecService covers hashing, passphrase encryption, and text encoding.
type CodecService interface {
	// Hash returns the hex digest of text. Unknown algorithm names fall
	// back to SHA-256.
	Hash(text, algorithm string) string

	Encrypt(text, passphrase string) (string, error)

	// Decrypt returns the recovered plaintext, or an error when the blob
	// is malformed or the passphrase is wrong.
	Decrypt(ciphertext, passphrase string) (string, error)

	// Encode and Decode apply the named scheme. The only schemes are
	// "base64" and "url"; anything else yields ErrUnknownScheme. Decode
	// returns an empty string for undecodable input, mirroring Encode's
	// never-fails contract.
	Encode(text, scheme string) (string, error)
	Decode(text, scheme string) (string, error)
}

// FraudService runs the fraud heuristics.
type FraudService interface {
	CheckLink(url string) models.PhishingCheck
	ValidateUPI(upiID string) bool
}

// GeoService resolves IP geolocation with VPN detection.
type GeoService interface {
	Lookup(ctx context.Context, ip string) (models.IPInfo, error)
}

// DomainService performs the full domain security analysis.
type DomainService interface {
	// Analyze validates the domain syntax and runs the four sub-analyses.
	// Returns ErrInvalidDomain before touching any intelligence source.
	Analyze(ctx context.Context, domain string) (models.DomainSecurityResult, error)
}

// TransferService stores and retrieves password-protected files.
type TransferService interface {
	Upload(ctx context.Context, content []byte, fileName string) (models.SecureFileUpload, error)

	// Download fails with transfer.ErrFileNotFound for unknown IDs, expired
	// files, and wrong passwords alike.
	Download(ctx context.Context, fileID, password string) (models.SecureFileDownload, error)
}

// ComplianceService serves the static Indian-compliance reference data.
type ComplianceService interface {
	Laws() []models.LawReference
	Frauds() []models.FraudPattern
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
