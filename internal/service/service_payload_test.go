package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/style"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func contentRequest(t models.ContentType, fields string) models.ContentRequest {
	return models.ContentRequest{Type: t, Fields: json.RawMessage(fields)}
}

// ─────────────────────────────────────────────
// Generate
// ─────────────────────────────────────────────

func TestPayloadService_GenerateLogsVerdict(t *testing.T) {
	var buf bytes.Buffer
	svc := NewPayloadService(&logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)})
	ctx := utils.WithTraceID(context.Background(), "trace-7")

	svc.Generate(ctx, models.PhoneData{Number: "12"})
	assert.Contains(t, buf.String(), `"message":"content rejected"`)
	assert.Contains(t, buf.String(), `"reason":"Please enter a valid phone number"`)
	assert.Contains(t, buf.String(), `"trace_id":"trace-7"`)

	buf.Reset()
	svc.Generate(ctx, models.TextData{Text: "hello"})
	assert.Contains(t, buf.String(), `"message":"payload encoded"`)
	assert.Contains(t, buf.String(), `"type":"text"`)
	assert.Contains(t, buf.String(), `"length":5`)
}

func TestPayloadService_Generate(t *testing.T) {
	svc := NewPayloadService(logger.Nop())
	ctx := context.Background()

	tests := []struct {
		name       string
		content    models.Content
		wantType   models.ContentType
		wantData   string
		wantReason string
	}{
		{
			name:     "valid url",
			content:  models.URLData{URL: "example.com"},
			wantType: models.URL,
			wantData: "https://example.com",
		},
		{
			name:     "valid wifi",
			content:  models.WiFiData{SSID: "MyNet", Password: "secret1", Encryption: models.WPA},
			wantType: models.WiFi,
			wantData: "WIFI:T:WPA;S:MyNet;P:secret1;H:false;;",
		},
		{
			name:       "invalid phone has no data",
			content:    models.PhoneData{Number: "123"},
			wantType:   models.Phone,
			wantReason: validators.ErrInvalidPhone.Error(),
		},
		{
			name:       "nil content",
			content:    nil,
			wantReason: validators.ErrUnsupportedContent.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Generate(ctx, tt.content)

			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantData, got.Data)
			assert.Equal(t, tt.wantReason == "", got.Validation.Valid)
			assert.Equal(t, tt.wantReason, got.Validation.Reason)
		})
	}
}

// ─────────────────────────────────────────────
// Validate
// ─────────────────────────────────────────────

func TestPayloadService_Validate(t *testing.T) {
	svc := NewPayloadService(logger.Nop())
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		res, err := svc.Validate(ctx, contentRequest(models.Email, `{"address":"a@b.com"}`))
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("invalid with reason", func(t *testing.T) {
		res, err := svc.Validate(ctx, contentRequest(models.Location, `{"latitude":"0","longitude":"200"}`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Longitude must be between -180 and 180", res.Reason)
	})

	t.Run("missing fields are rejected as required", func(t *testing.T) {
		res, err := svc.Validate(ctx, contentRequest(models.Text, ``))
		require.NoError(t, err)
		assert.Equal(t, validators.ErrTextRequired.Error(), res.Reason)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Validate(ctx, contentRequest(models.ContentType(42), `{}`))
		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, models.ErrUnknownContentType)
	})

	t.Run("malformed fields", func(t *testing.T) {
		_, err := svc.Validate(ctx, contentRequest(models.URL, `{"url": 5}`))
		require.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, models.ErrMalformedFields)
	})
}

// ─────────────────────────────────────────────
// Build
// ─────────────────────────────────────────────

func TestPayloadService_Build(t *testing.T) {
	svc := NewPayloadService(logger.Nop())
	ctx := context.Background()

	t.Run("default style", func(t *testing.T) {
		resp, err := svc.Build(ctx, models.BuildRequest{
			ContentRequest: contentRequest(models.SMS, `{"number":"555 0100","message":"Call me!"}`),
		})
		require.NoError(t, err)

		assert.True(t, resp.Validation.Valid)
		assert.Equal(t, "sms:5550100?body=Call%20me!", resp.Data)
		assert.Equal(t, style.Default(), resp.Style)
		assert.Equal(t, "codenest-qr-sms.png", resp.FileName)
	})

	t.Run("custom style is kept", func(t *testing.T) {
		s, err := style.Apply(style.Default(), models.PresetDots)
		require.NoError(t, err)

		resp, err := svc.Build(ctx, models.BuildRequest{
			ContentRequest: contentRequest(models.Text, `{"text":"hello"}`),
			Style:          &s,
		})
		require.NoError(t, err)
		assert.Equal(t, s, resp.Style)
	})

	t.Run("invalid content still answers", func(t *testing.T) {
		resp, err := svc.Build(ctx, models.BuildRequest{
			ContentRequest: contentRequest(models.WiFi, `{"ssid":"x"}`),
		})
		require.NoError(t, err)

		assert.False(t, resp.Validation.Valid)
		assert.Equal(t, validators.ErrWiFiPasswordRequired.Error(), resp.Validation.Reason)
		assert.Empty(t, resp.Data)
		assert.Equal(t, "codenest-qr-wifi.png", resp.FileName)
	})

	t.Run("invalid style", func(t *testing.T) {
		s := style.Default()
		s.Foreground = "black"

		_, err := svc.Build(ctx, models.BuildRequest{
			ContentRequest: contentRequest(models.Text, `{"text":"hello"}`),
			Style:          &s,
		})
		require.ErrorIs(t, err, ErrInvalidStyle)
		assert.ErrorIs(t, err, validators.ErrInvalidColor)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Build(ctx, models.BuildRequest{ContentRequest: contentRequest(0, `{}`)})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

// ─────────────────────────────────────────────
// StyleService
// ─────────────────────────────────────────────

func TestStyleService(t *testing.T) {
	svc := NewStyleService(logger.Nop())
	ctx := context.Background()

	assert.Equal(t, style.Default(), svc.Default(ctx))
	assert.Equal(t, style.Presets(), svc.Presets(ctx))

	t.Run("apply", func(t *testing.T) {
		got, err := svc.ApplyPreset(ctx, style.Default(), models.PresetBrand)
		require.NoError(t, err)
		assert.Equal(t, models.PresetBrand, got.Preset)
		require.NotNil(t, got.Logo)
	})

	t.Run("unknown preset", func(t *testing.T) {
		in := style.Default()
		got, err := svc.ApplyPreset(ctx, in, "gradient")
		require.ErrorIs(t, err, style.ErrUnknownPreset)
		assert.Equal(t, in, got)
	})

	t.Run("broken input style", func(t *testing.T) {
		in := style.Default()
		in.Size = 5
		_, err := svc.ApplyPreset(ctx, in, models.PresetDots)
		require.ErrorIs(t, err, ErrInvalidStyle)
		assert.ErrorIs(t, err, validators.ErrInvalidSize)
	})

	t.Run("stale preset name does not matter", func(t *testing.T) {
		in := style.Default()
		in.Preset = "old"
		got, err := svc.ApplyPreset(ctx, in, models.PresetRounded)
		require.NoError(t, err)
		assert.Equal(t, models.PresetRounded, got.Preset)
	})
}
