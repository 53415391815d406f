package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-qr-forge/models"
)

// Field name constants used to restrict style validation to a subset of fields.
const (
	// FieldSize targets the rendered image size.
	FieldSize = "size"
	// FieldMargin targets the quiet zone width.
	FieldMargin = "margin"
	// FieldForeground targets the module color.
	FieldForeground = "foreground"
	// FieldBackground targets the background color.
	FieldBackground = "background"
	// FieldErrorCorrection targets the error correction level.
	FieldErrorCorrection = "error_correction"
	// FieldPreset targets the preset name.
	FieldPreset = "preset"
)

// Size limits of a rendered code in pixels.
const (
	MinSize = 100
	MaxSize = 1000
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var allowedErrorCorrection = []string{"L", "M", "Q", "H"}

var allowedPresets = []models.Preset{
	models.PresetClassic,
	models.PresetRounded,
	models.PresetDots,
	models.PresetBrand,
}

// StyleValidator implements Validator for models.Style.
// Both value and pointer forms are accepted.
type StyleValidator struct{}

// NewStyleValidator constructs a StyleValidator and returns it as the
// Validator interface.
func NewStyleValidator() Validator {
	return &StyleValidator{}
}

// Validate checks the named fields of a style, or all of them when no
// field is given. Returns the first encountered validation error.
func (v *StyleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Style:
		return v.validateStyle(ctx, value, fields...)
	case *models.Style:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStyle(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StyleValidator) validateStyle(_ context.Context, s models.Style, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSize, FieldMargin, FieldForeground, FieldBackground, FieldErrorCorrection, FieldPreset}
	}

	for _, f := range fields {
		switch f {
		case FieldSize:
			if s.Size < MinSize || s.Size > MaxSize {
				return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidSize, s.Size, MinSize, MaxSize)
			}
		case FieldMargin:
			if s.Margin < 0 || s.Margin*2 >= s.Size {
				return fmt.Errorf("%w: %d", ErrInvalidMargin, s.Margin)
			}
		case FieldForeground:
			if !IsHexColor(s.Foreground) {
				return fmt.Errorf("%w: foreground %q", ErrInvalidColor, s.Foreground)
			}
		case FieldBackground:
			if !IsHexColor(s.Background) {
				return fmt.Errorf("%w: background %q", ErrInvalidColor, s.Background)
			}
		case FieldErrorCorrection:
			if !contains(allowedErrorCorrection, s.ErrorCorrection) {
				return fmt.Errorf("%w: %q", ErrInvalidErrorCorrection, s.ErrorCorrection)
			}
		case FieldPreset:
			if !contains(allowedPresets, s.Preset) {
				return fmt.Errorf("%w: %q", ErrInvalidPreset, s.Preset)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsHexColor reports whether s is a #rgb or #rrggbb color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
