package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-forge/internal/app"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/style"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrInvalidJSON:  {http.StatusBadRequest, app.MsgInvalidDataProvided},
	ErrInvalidQuery: {http.StatusBadRequest, app.MsgInvalidDataProvided},

	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidStyle:        {http.StatusBadRequest, app.MsgInvalidStyle},
	service.ErrEmptyPayloadName:    {http.StatusBadRequest, app.MsgEmptyPayloadName},
	service.ErrPayloadNameTooLong:  {http.StatusBadRequest, app.MsgPayloadNameTooLong},
	service.ErrInvalidPayloadID:    {http.StatusBadRequest, app.MsgInvalidPayloadID},
	service.ErrPayloadInvalid:      {http.StatusUnprocessableEntity, app.MsgPayloadInvalid},
	style.ErrUnknownPreset:         {http.StatusBadRequest, app.MsgUnknownPreset},

	store.ErrPayloadNameExists: {http.StatusConflict, app.MsgPayloadNameExists},
	store.ErrPayloadNotFound:   {http.StatusNotFound, app.MsgPayloadNotFound},
}

func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError classifies err and writes it as a JSON error response. A
// rejected field set also carries the validator reason.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	body := models.ErrorResponse{Error: message}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		body.Reason = validationErr.Reason
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Str("func", fn).Msg("failed to write error response")
	}
}
