// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/dudhatpatel/cyberdefender/internal/adapter"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

type geoService struct {
	locator adapter.GeoLocator

	logger *logger.Logger
}

func NewGeoService(locator adapter.GeoLocator, logger *logger.Logger) GeoService {
	return &geoService{locator: locator, logger: logger}
}

func (s *geoService) Lookup(ctx context.Context, ip string) (models.IPInfo, error) {
	info, err := s.locator.Lookup(ctx, ip)
	if err != nil {
		s.logger.Warn().Err(err).Msg("geolocation lookup failed")
		return models.IPInfo{}, fmt.Errorf("lookup ip info: %w", err)
	}

	return info, nil
}
