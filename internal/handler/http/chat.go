// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.chat").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	result := h.services.ChatService.Classify(r.Context(), req.Message)

	writeJSON(w, http.StatusOK, result)
}
