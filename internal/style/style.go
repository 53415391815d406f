// Package style manages the presentation configuration of a rendered code:
// defaults, presets and the few user edits the client offers. None of it
// touches the encoded payload.
package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

// Shape names understood by renderers.
const (
	ShapeSquare       = "square"
	ShapeRounded      = "rounded"
	ShapeExtraRounded = "extra-rounded"
	ShapeDots         = "dots"
	ShapeDot          = "dot"
)

// Default values of a fresh style.
const (
	DefaultSize            = 300
	DefaultMargin          = 10
	DefaultErrorCorrection = "H"
	DefaultMode            = "Byte"
	DefaultForeground      = "#000000"
	DefaultBackground      = "#ffffff"

	// BrandLogoImage references the logo shipped with the brand preset.
	BrandLogoImage = "codenest-logo"
)

var (
	// ErrUnknownPreset is returned by Apply for a name outside Presets.
	ErrUnknownPreset = errors.New("unknown style preset")
	// ErrInvalidColor is returned for colors not in #rgb or #rrggbb form.
	ErrInvalidColor = errors.New("color must be #rgb or #rrggbb")
	// ErrInvalidSize is returned for sizes outside the supported range.
	ErrInvalidSize = errors.New("size is out of range")
)

// Default returns the style a new session starts with.
func Default() models.Style {
	return models.Style{
		Preset:          models.PresetClassic,
		Size:            DefaultSize,
		Margin:          DefaultMargin,
		ErrorCorrection: DefaultErrorCorrection,
		Mode:            DefaultMode,
		Foreground:      DefaultForeground,
		Background:      DefaultBackground,
		Dots:            ShapeSquare,
		CornersSquare:   ShapeSquare,
		CornersDot:      ShapeSquare,
	}
}

// Reset discards every edit and returns the defaults.
func Reset() models.Style {
	return Default()
}

// Presets lists the preset names in display order.
func Presets() []models.Preset {
	return []models.Preset{
		models.PresetClassic,
		models.PresetRounded,
		models.PresetDots,
		models.PresetBrand,
	}
}

// Next returns the preset following p in display order, wrapping around.
// Unknown presets continue from the first one.
func Next(p models.Preset) models.Preset {
	list := Presets()
	for i, item := range list {
		if item == p {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

// Apply returns s with the named preset applied. Non-brand presets keep
// the current colors and drop the logo; brand forces black on white and
// adds the logo. On error s is returned unchanged.
func Apply(s models.Style, preset models.Preset) (models.Style, error) {
	switch preset {
	case models.PresetClassic:
		s.Dots, s.CornersSquare, s.CornersDot = ShapeSquare, ShapeSquare, ShapeSquare
		s.Logo = nil
	case models.PresetRounded:
		s.Dots, s.CornersSquare, s.CornersDot = ShapeRounded, ShapeExtraRounded, ShapeDot
		s.Logo = nil
	case models.PresetDots:
		s.Dots, s.CornersSquare, s.CornersDot = ShapeDots, ShapeDot, ShapeDot
		s.Logo = nil
	case models.PresetBrand:
		s.Dots, s.CornersSquare, s.CornersDot = ShapeRounded, ShapeExtraRounded, ShapeDot
		s.Foreground = DefaultForeground
		s.Background = DefaultBackground
		s.Logo = &models.Logo{
			Image:              BrandLogoImage,
			HideBackgroundDots: true,
			ImageSize:          0.3,
			Margin:             8,
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}

	s.Preset = preset
	return s, nil
}

// SetForeground sets the module color. The color is stored lower-case.
func SetForeground(s models.Style, color string) (models.Style, error) {
	c, err := normalizeColor(color)
	if err != nil {
		return s, err
	}
	s.Foreground = c
	return s, nil
}

// SetBackground sets the background color. The color is stored lower-case.
func SetBackground(s models.Style, color string) (models.Style, error) {
	c, err := normalizeColor(color)
	if err != nil {
		return s, err
	}
	s.Background = c
	return s, nil
}

// SetSize sets the rendered size in pixels. The margin is left alone, so a
// size that leaves no room for the code is rejected.
func SetSize(s models.Style, size int) (models.Style, error) {
	if size < validators.MinSize || size > validators.MaxSize {
		return s, fmt.Errorf("%w: %d not in %d..%d", ErrInvalidSize, size, validators.MinSize, validators.MaxSize)
	}
	if s.Margin*2 >= size {
		return s, fmt.Errorf("%w: %d leaves no room for margin %d", ErrInvalidSize, size, s.Margin)
	}
	s.Size = size
	return s, nil
}

func normalizeColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if !validators.IsHexColor(color) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return strings.ToLower(color), nil
}
