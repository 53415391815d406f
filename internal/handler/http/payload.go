package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

func (h *Handler) validatePayload(w http.ResponseWriter, r *http.Request) {
	var req models.ContentRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.validatePayload")
		return
	}

	result, err := h.services.PayloadService.Validate(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.validatePayload")
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.validatePayload").Msg("failed to write response")
	}
}

func (h *Handler) buildPayload(w http.ResponseWriter, r *http.Request) {
	var req models.BuildRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.buildPayload")
		return
	}

	resp, err := h.services.PayloadService.Build(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.buildPayload")
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.buildPayload").Msg("failed to write response")
	}
}
