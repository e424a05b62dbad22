// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

func (h *Handler) hash(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.HashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.hash").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	digest := h.services.CodecService.Hash(req.Text, req.Algorithm)

	writeJSON(w, http.StatusOK, models.HashResponse{Digest: digest})
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	ciphertext, err := h.services.CodecService.Encrypt(req.Text, req.Passphrase)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("encryption failed")
		writeError(w, http.StatusInternalServerError, "encryption failed")
		return
	}

	writeJSON(w, http.StatusOK, models.EncryptResponse{Ciphertext: ciphertext})
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	plaintext, err := h.services.CodecService.Decrypt(req.Ciphertext, req.Passphrase)
	if err != nil {
		// Wrong passphrase and malformed input are indistinguishable by
		// construction.
		writeError(w, http.StatusBadRequest, "decryption failed")
		return
	}

	writeJSON(w, http.StatusOK, models.DecryptResponse{Plaintext: plaintext})
}

func (h *Handler) encode(w http.ResponseWriter, r *http.Request) {
	h.runCodec(w, r, "*Handler.encode", h.services.CodecService.Encode)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) {
	h.runCodec(w, r, "*Handler.decode", h.services.CodecService.Decode)
}

func (h *Handler) runCodec(w http.ResponseWriter, r *http.Request, funcName string, codec func(text, scheme string) (string, error)) {
	log := logger.FromRequest(r)

	var req models.EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	result, err := codec(req.Text, req.Scheme)
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.EncodeResponse{Result: result})
}
