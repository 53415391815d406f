package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

func (h *Handler) listPresets(w http.ResponseWriter, r *http.Request) {
	presets := h.services.StyleService.Presets(r.Context())

	if _, err := utils.WriteJSON(w, presets, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listPresets").Msg("failed to write response")
	}
}

// applyPreset applies the preset from the path to the style in the body.
// An empty body stands for the default style.
func (h *Handler) applyPreset(w http.ResponseWriter, r *http.Request) {
	preset := models.Preset(chi.URLParam(r, "preset"))

	current := h.services.StyleService.Default(r.Context())
	if err := utils.ReadJSON(w, r, &current); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.applyPreset")
		return
	}

	applied, err := h.services.StyleService.ApplyPreset(r.Context(), current, preset)
	if err != nil {
		writeError(w, r, err, "*Handler.applyPreset")
		return
	}

	if _, err = utils.WriteJSON(w, applied, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.applyPreset").Msg("failed to write response")
	}
}
