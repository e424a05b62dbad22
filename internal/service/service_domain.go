// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/dudhatpatel/cyberdefender/internal/heuristics"
	"github.com/dudhatpatel/cyberdefender/internal/intel"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

type domainService struct {
	analyzer *intel.Analyzer

	logger *logger.Logger
}

func NewDomainService(analyzer *intel.Analyzer, logger *logger.Logger) DomainService {
	return &domainService{analyzer: analyzer, logger: logger}
}

func (s *domainService) Analyze(ctx context.Context, domain string) (models.DomainSecurityResult, error) {
	if !heuristics.ValidateDomain(domain) {
		return models.DomainSecurityResult{}, fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	result, err := s.analyzer.Analyze(ctx, domain)
	if err != nil {
		return models.DomainSecurityResult{}, fmt.Errorf("analyze domain: %w", err)
	}

	s.logger.Info().
		Str("domain", result.Domain).
		Str("risk", string(result.OverallRisk)).
		Msg("domain analysis completed")

	return result, nil
}
