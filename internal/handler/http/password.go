// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

// defaultPasswordLength applies when the request omits the length.
const defaultPasswordLength = 12

func (h *Handler) checkPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PasswordCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.checkPassword").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	writeJSON(w, http.StatusOK, h.services.PasswordService.Check(req.Password))
}

func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var opts models.PasswordOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		log.Err(err).Str("func", "*Handler.generatePassword").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if opts.Length <= 0 {
		opts.Length = defaultPasswordLength
	}

	password := h.services.PasswordService.Generate(opts)

	writeJSON(w, http.StatusOK, models.PasswordGenerateResponse{Password: password})
}
