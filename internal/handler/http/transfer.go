// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/internal/transfer"
	"github.com/dudhatpatel/cyberdefender/models"
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("missing or unreadable file field")
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("error reading uploaded file")
		writeError(w, http.StatusInternalServerError, "error reading uploaded file")
		return
	}

	receipt, err := h.services.TransferService.Upload(r.Context(), content, header.Filename)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadFile").Msg("error storing uploaded file")
		writeError(w, http.StatusInternalServerError, "error storing uploaded file")
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}

// isBodyTooLarge detects the MaxBytesReader limit firing inside the
// multipart parser, which may wrap the error rather than return it as is.
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr) ||
		strings.Contains(err.Error(), "request body too large")
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TransferDownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.downloadFile").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	download, err := h.services.TransferService.Download(r.Context(), req.FileID, req.Password)
	if err != nil {
		// One message for unknown IDs, expired files, and wrong passwords:
		// the response must not reveal which condition failed.
		if errors.Is(err, transfer.ErrFileNotFound) {
			writeError(w, http.StatusNotFound, "file not found or invalid password")
			return
		}
		log.Err(err).Str("func", "*Handler.downloadFile").Msg("error downloading file")
		writeError(w, http.StatusInternalServerError, "error downloading file")
		return
	}

	writeJSON(w, http.StatusOK, download)
}
