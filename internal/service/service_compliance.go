// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/dudhatpatel/cyberdefender/internal/compliance"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

type complianceService struct {
	logger *logger.Logger
}

func NewComplianceService(logger *logger.Logger) ComplianceService {
	return &complianceService{logger: logger}
}

func (s *complianceService) Laws() []models.LawReference {
	return compliance.Laws()
}

func (s *complianceService) Frauds() []models.FraudPattern {
	return compliance.Frauds()
}
