// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

func (h *Handler) checkLink(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LinkCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.checkLink").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url must not be empty")
		return
	}

	writeJSON(w, http.StatusOK, h.services.FraudService.CheckLink(req.URL))
}

func (h *Handler) checkUPI(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UPICheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.checkUPI").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	valid := h.services.FraudService.ValidateUPI(req.UPIID)

	writeJSON(w, http.StatusOK, models.UPICheckResponse{Valid: valid})
}
