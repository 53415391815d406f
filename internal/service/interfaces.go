package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-forge/models"
)

// PayloadService turns raw field values into encoded payloads.
type PayloadService interface {
	// Generate validates content and encodes it when valid. It never fails:
	// an invalid field set yields a payload with empty Data and the reason.
	Generate(ctx context.Context, content models.Content) models.Payload

	// Validate decodes the request fields and reports the verdict.
	// An error is returned only when the request itself cannot be decoded.
	Validate(ctx context.Context, req models.ContentRequest) (models.ValidationResult, error)

	// Build decodes, validates and encodes the request fields and pairs the
	// result with the requested style, or the default one.
	Build(ctx context.Context, req models.BuildRequest) (models.BuildResponse, error)
}

// StyleService exposes the presentation presets.
type StyleService interface {
	Default(ctx context.Context) models.Style
	Presets(ctx context.Context) []models.Preset
	ApplyPreset(ctx context.Context, s models.Style, preset models.Preset) (models.Style, error)
}

// HistoryService keeps generated payloads. Invalid field sets are never stored.
type HistoryService interface {
	Save(ctx context.Context, req models.SaveRequest) (models.SavedPayload, error)
	Get(ctx context.Context, id string) (models.SavedPayload, error)
	List(ctx context.Context, filter models.PayloadFilter) ([]models.SavedPayload, error)
	Delete(ctx context.Context, id string) error
}

// HistoryPruner removes history entries older than the retention period
// and returns how many were removed.
type HistoryPruner interface {
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
