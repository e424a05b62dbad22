// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/chat", h.chat)

	router.Post("/api/password/check", h.checkPassword)
	router.Post("/api/password/generate", h.generatePassword)

	router.Post("/api/hash", h.hash)
	router.Post("/api/encrypt", h.encrypt)
	router.Post("/api/decrypt", h.decrypt)
	router.Post("/api/encode", h.encode)
	router.Post("/api/decode", h.decode)

	router.Post("/api/fraud/link", h.checkLink)
	router.Post("/api/fraud/upi", h.checkUPI)

	router.Get("/api/ip-info", h.ipInfo)

	router.Post("/api/domain/analyze", h.analyzeDomain)

	router.Post("/api/transfer/upload", h.uploadFile)
	router.Post("/api/transfer/download", h.downloadFile)

	router.Get("/api/compliance/laws", h.complianceLaws)
	router.Get("/api/compliance/frauds", h.complianceFrauds)

	router.Get("/api/version", h.getServerVersion)

	return router
}
