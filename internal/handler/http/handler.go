// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/service"
	"github.com/dudhatpatel/cyberdefender/models"
)

type Handler struct {
	services *service.Services

	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, maxUploadBytes int64, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// writeJSON serializes v with a 200 status unless status overrides it.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the uniform error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
