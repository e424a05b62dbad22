// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

func (h *Handler) analyzeDomain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DomainAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.analyzeDomain").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	result, err := h.services.DomainService.Analyze(r.Context(), req.Domain)
	if err != nil {
		log.Err(err).Str("func", "*Handler.analyzeDomain").Msg("domain analysis failed")
		writeError(w, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
