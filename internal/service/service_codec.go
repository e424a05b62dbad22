// SPDX-License-Identifier: Apache-2.0

package service

import (
	"fmt"
	"strings"

	"github.com/dudhatpatel/cyberdefender/internal/crypto"
	"github.com/dudhatpatel/cyberdefender/internal/heuristics"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
)

type codecService struct {
	cipher crypto.CipherService

	logger *logger.Logger
}

func NewCodecService(cipher crypto.CipherService, logger *logger.Logger) CodecService {
	return &codecService{cipher: cipher, logger: logger}
}

func (s *codecService) Hash(text, algorithm string) string {
	return crypto.Digest(text, algorithm)
}

func (s *codecService) Encrypt(text, passphrase string) (string, error) {
	return s.cipher.EncryptString(text, passphrase)
}

func (s *codecService) Decrypt(ciphertext, passphrase string) (string, error) {
	plaintext, err := s.cipher.DecryptString(ciphertext, passphrase)
	if err != nil {
		s.logger.Debug().Err(err).Msg("decryption rejected")
		return "", err
	}
	return plaintext, nil
}

func (s *codecService) Encode(text, scheme string) (string, error) {
	switch strings.ToLower(scheme) {
	case "base64":
		return heuristics.EncodeBase64(text), nil
	case "url":
		return heuristics.EncodeURL(text), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

func (s *codecService) Decode(text, scheme string) (string, error) {
	switch strings.ToLower(scheme) {
	case "base64":
		return heuristics.DecodeBase64(text), nil
	case "url":
		return heuristics.DecodeURL(text), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}
