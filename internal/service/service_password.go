// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/dudhatpatel/cyberdefender/internal/heuristics"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

type passwordService struct {
	logger *logger.Logger
}

func NewPasswordService(logger *logger.Logger) PasswordService {
	return &passwordService{logger: logger}
}

func (s *passwordService) Check(password string) models.PasswordStrength {
	// The password itself never reaches the log.
	strength := heuristics.CheckPasswordStrength(password)

	s.logger.Debug().
		Int("score", strength.Score).
		Msg("password strength checked")

	return strength
}

func (s *passwordService) Generate(opts models.PasswordOptions) string {
	return heuristics.GeneratePassword(opts)
}
