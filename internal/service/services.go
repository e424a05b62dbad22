// SPDX-License-Identifier: Apache-2.0

package service

import (
	"time"

	"github.com/dudhatpatel/cyberdefender/internal/adapter"
	"github.com/dudhatpatel/cyberdefender/internal/config"
	"github.com/dudhatpatel/cyberdefender/internal/crypto"
	"github.com/dudhatpatel/cyberdefender/internal/intel"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/router"
	"github.com/dudhatpatel/cyberdefender/internal/transfer"
)

// Services aggregates every application service for the transport layer.
type Services struct {
	ChatService       ChatService
	PasswordService   PasswordService
	CodecService      CodecService
	FraudService      FraudService
	GeoService        GeoService
	DomainService     DomainService
	TransferService   TransferService
	ComplianceService ComplianceService
	AppInfoService    AppInfoService
}

// NewServices wires the full service graph from configuration. The simulated
// domain intelligence source self-seeds its randomness; tests construct
// individual services directly with deterministic collaborators instead.
func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	cipher := crypto.NewCipherService()
	locator := adapter.NewGeoLocator(adapter.GeoConfig{
		BaseURL: cfg.Adapter.GeoAPIBaseURL,
		Timeout: cfg.Adapter.Timeout,
	})
	analyzer := intel.NewAnalyzer(intel.NewSimulatedSource(300*time.Millisecond, nil), logger)
	store := transfer.NewStore(cipher, cfg.Transfer.TTL, logger)

	return &Services{
		ChatService:       NewChatService(router.NewRouter(logger), logger),
		PasswordService:   NewPasswordService(logger),
		CodecService:      NewCodecService(cipher, logger),
		FraudService:      NewFraudService(logger),
		GeoService:        NewGeoService(locator, logger),
		DomainService:     NewDomainService(analyzer, logger),
		TransferService:   NewTransferService(store, logger),
		ComplianceService: NewComplianceService(logger),
		AppInfoService:    appInfo,
	}, nil
}
