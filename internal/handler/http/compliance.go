// SPDX-License-Identifier: Apache-2.0

package http

import "net/http"

func (h *Handler) complianceLaws(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.ComplianceService.Laws())
}

func (h *Handler) complianceFrauds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.ComplianceService.Frauds())
}
