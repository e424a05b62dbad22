// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/router"
	"github.com/dudhatpatel/cyberdefender/models"
)

type chatService struct {
	router *router.Router

	logger *logger.Logger
}

func NewChatService(r *router.Router, logger *logger.Logger) ChatService {
	return &chatService{router: r, logger: logger}
}

func (s *chatService) Classify(ctx context.Context, message string) models.ClassifyResult {
	result := s.router.Classify(message)

	s.logger.Info().
		Str("tool", string(result.Tool)).
		Int("message_len", len(message)).
		Msg("chat message classified")

	return result
}

func (s *chatService) InitialMessage() string {
	return router.InitialBotMessage
}
