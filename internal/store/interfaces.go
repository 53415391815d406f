package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-forge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payload_repository_mock.go -package=mock

// PayloadRepository stores generated payloads in the history.
type PayloadRepository interface {
	// Save stores p. An empty ID is replaced with a new UUID and a zero
	// CreatedAt with the current time. The stored payload is returned.
	Save(ctx context.Context, p models.SavedPayload) (models.SavedPayload, error)
	// Get returns the payload with the given id or [ErrPayloadNotFound].
	Get(ctx context.Context, id string) (models.SavedPayload, error)
	// List returns payloads newest first.
	List(ctx context.Context, filter models.PayloadFilter) ([]models.SavedPayload, error)
	// Delete removes a payload or returns [ErrPayloadNotFound].
	Delete(ctx context.Context, id string) error
	// DeleteOlderThan removes payloads created before the given time and
	// reports how many were removed.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
