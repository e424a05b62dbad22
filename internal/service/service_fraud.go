// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/dudhatpatel/cyberdefender/internal/heuristics"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

type fraudService struct {
	logger *logger.Logger
}

func NewFraudService(logger *logger.Logger) FraudService {
	return &fraudService{logger: logger}
}

func (s *fraudService) CheckLink(url string) models.PhishingCheck {
	check := heuristics.CheckPhishingLink(url)

	if check.IsSuspicious {
		s.logger.Info().
			Int("reasons", len(check.Reasons)).
			Msg("suspicious link detected")
	}

	return check
}

func (s *fraudService) ValidateUPI(upiID string) bool {
	return heuristics.ValidateUPIID(upiID)
}
