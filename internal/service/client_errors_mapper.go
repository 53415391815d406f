// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-qr-forge/internal/adapter"
	"github.com/MKhiriev/go-qr-forge/internal/app"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/style"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidStyle:
			return ErrInvalidStyle
		case app.MsgUnknownPreset:
			return style.ErrUnknownPreset
		case app.MsgEmptyPayloadName:
			return ErrEmptyPayloadName
		case app.MsgPayloadNameTooLong:
			return ErrPayloadNameTooLong
		case app.MsgInvalidPayloadID:
			return ErrInvalidPayloadID
		}

	case errors.Is(err, adapter.ErrUnprocessableEntity):
		return NewValidationError(msg, nil)

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrPayloadNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrPayloadNameExists
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
