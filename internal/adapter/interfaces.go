// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-qr-forge server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnprocessableEntity] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-forge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic access to the payload history kept
// on the server.
type ServerAdapter interface {
	// SavePayload stores a named field set. The server validates and encodes
	// it again; a rejected field set yields [ErrUnprocessableEntity] carrying
	// the validator reason, a duplicate name yields [ErrConflict].
	SavePayload(ctx context.Context, req models.SaveRequest) (models.SavedPayload, error)

	// GetPayload fetches one saved payload. Returns [ErrNotFound] (wrapped)
	// when no payload has the given id.
	GetPayload(ctx context.Context, id string) (models.SavedPayload, error)

	// ListPayloads returns saved payloads, newest first, narrowed by filter.
	ListPayloads(ctx context.Context, filter models.PayloadFilter) ([]models.SavedPayload, error)

	// DeletePayload removes a saved payload. Returns [ErrNotFound] (wrapped)
	// when no payload has the given id.
	DeletePayload(ctx context.Context, id string) error

	// GetVersion returns the version string reported by the server.
	GetVersion(ctx context.Context) (string, error)
}
