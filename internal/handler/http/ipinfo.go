// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
)

func (h *Handler) ipInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// Empty ip resolves the caller's own public address at the provider.
	ip := r.URL.Query().Get("ip")

	info, err := h.services.GeoService.Lookup(r.Context(), ip)
	if err != nil {
		log.Err(err).Str("func", "*Handler.ipInfo").Msg("geolocation lookup failed")
		writeError(w, http.StatusBadGateway, "geolocation lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, info)
}
