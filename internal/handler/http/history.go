// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

func (h *Handler) savePayload(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.savePayload")
		return
	}

	saved, err := h.services.HistoryService.Save(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.savePayload")
		return
	}

	if _, err = utils.WriteJSON(w, saved, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.savePayload").Msg("failed to write response")
	}
}

func (h *Handler) listPayloads(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePayloadFilter(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listPayloads")
		return
	}

	list, err := h.services.HistoryService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listPayloads")
		return
	}
	if list == nil {
		list = []models.SavedPayload{}
	}

	if _, err = utils.WriteJSON(w, list, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listPayloads").Msg("failed to write response")
	}
}

func (h *Handler) getPayload(w http.ResponseWriter, r *http.Request) {
	saved, err := h.services.HistoryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getPayload")
		return
	}

	if _, err = utils.WriteJSON(w, saved, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getPayload").Msg("failed to write response")
	}
}

func (h *Handler) deletePayload(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HistoryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deletePayload")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MaxListLimit is the largest limit accepted by GET /api/payloads.
const MaxListLimit = 1000

// parsePayloadFilter reads the optional type and limit query parameters.
func parsePayloadFilter(r *http.Request) (models.PayloadFilter, error) {
	var filter models.PayloadFilter
	query := r.URL.Query()

	if raw := query.Get("type"); raw != "" {
		t, err := models.ParseContentType(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: type: %w", ErrInvalidQuery, err)
		}
		filter.Type = &t
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: limit: %w", ErrInvalidQuery, err)
		}
		if limit > MaxListLimit {
			return filter, fmt.Errorf("%w: limit above %d", ErrInvalidQuery, MaxListLimit)
		}
		filter.Limit = limit
	}

	return filter, nil
}
