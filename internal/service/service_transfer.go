// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/transfer"
	"github.com/dudhatpatel/cyberdefender/models"
)

type transferService struct {
	store *transfer.Store

	logger *logger.Logger
}

func NewTransferService(store *transfer.Store, logger *logger.Logger) TransferService {
	return &transferService{store: store, logger: logger}
}

func (s *transferService) Upload(ctx context.Context, content []byte, fileName string) (models.SecureFileUpload, error) {
	receipt, err := s.store.Upload(ctx, content, fileName)
	if err != nil {
		return models.SecureFileUpload{}, fmt.Errorf("upload file: %w", err)
	}

	s.logger.Info().
		Str("file_id", receipt.FileID).
		Int("size", len(content)).
		Msg("file stored for secure transfer")

	return receipt, nil
}

func (s *transferService) Download(ctx context.Context, fileID, password string) (models.SecureFileDownload, error) {
	// transfer.ErrFileNotFound passes through unwrapped so the handler can
	// map it to the uniform not-found response.
	return s.store.Download(ctx, fileID, password)
}
