package style

import (
	"testing"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, models.PresetClassic, s.Preset)
	assert.Equal(t, 300, s.Size)
	assert.Equal(t, 10, s.Margin)
	assert.Equal(t, "H", s.ErrorCorrection)
	assert.Equal(t, "Byte", s.Mode)
	assert.Equal(t, "#000000", s.Foreground)
	assert.Equal(t, "#ffffff", s.Background)
	assert.Equal(t, ShapeSquare, s.Dots)
	assert.Nil(t, s.Logo)
}

func TestApply(t *testing.T) {
	base := Default()
	base.Foreground = "#ff0000"
	base.Background = "#00ff00"

	tests := []struct {
		name       string
		preset     models.Preset
		dots       string
		corners    string
		cornerDots string
		fg, bg     string
		withLogo   bool
	}{
		{name: "classic", preset: models.PresetClassic, dots: ShapeSquare, corners: ShapeSquare, cornerDots: ShapeSquare, fg: "#ff0000", bg: "#00ff00"},
		{name: "rounded", preset: models.PresetRounded, dots: ShapeRounded, corners: ShapeExtraRounded, cornerDots: ShapeDot, fg: "#ff0000", bg: "#00ff00"},
		{name: "dots", preset: models.PresetDots, dots: ShapeDots, corners: ShapeDot, cornerDots: ShapeDot, fg: "#ff0000", bg: "#00ff00"},
		{name: "brand", preset: models.PresetBrand, dots: ShapeRounded, corners: ShapeExtraRounded, cornerDots: ShapeDot, fg: "#000000", bg: "#ffffff", withLogo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(base, tt.preset)
			require.NoError(t, err)

			assert.Equal(t, tt.preset, got.Preset)
			assert.Equal(t, tt.dots, got.Dots)
			assert.Equal(t, tt.corners, got.CornersSquare)
			assert.Equal(t, tt.cornerDots, got.CornersDot)
			assert.Equal(t, tt.fg, got.Foreground)
			assert.Equal(t, tt.bg, got.Background)
			assert.Equal(t, base.Size, got.Size)

			if tt.withLogo {
				require.NotNil(t, got.Logo)
				assert.True(t, got.Logo.HideBackgroundDots)
				assert.InDelta(t, 0.3, got.Logo.ImageSize, 1e-9)
				assert.Equal(t, 8, got.Logo.Margin)
			} else {
				assert.Nil(t, got.Logo)
			}
		})
	}
}

func TestApply_DropsLogoAfterBrand(t *testing.T) {
	s, err := Apply(Default(), models.PresetBrand)
	require.NoError(t, err)
	require.NotNil(t, s.Logo)

	s, err = Apply(s, models.PresetDots)
	require.NoError(t, err)
	assert.Nil(t, s.Logo)
}

func TestApply_UnknownPreset(t *testing.T) {
	in := Default()
	out, err := Apply(in, "neon")

	require.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, in, out)
}

func TestSetColors(t *testing.T) {
	s, err := SetForeground(Default(), " #AbCdEf ")
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", s.Foreground)

	s, err = SetBackground(s, "#FFF")
	require.NoError(t, err)
	assert.Equal(t, "#fff", s.Background)

	_, err = SetForeground(s, "red")
	assert.ErrorIs(t, err, ErrInvalidColor)

	unchanged, err := SetBackground(s, "#12")
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, s, unchanged)
}

func TestSetSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "lower bound", size: 100},
		{name: "upper bound", size: 1000},
		{name: "too small", size: 99, wantErr: true},
		{name: "too large", size: 1001, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := SetSize(Default(), tt.size)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSize)
				assert.Equal(t, DefaultSize, s.Size)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, s.Size)
		})
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, models.PresetRounded, Next(models.PresetClassic))
	assert.Equal(t, models.PresetClassic, Next(models.PresetBrand))
	assert.Equal(t, models.PresetClassic, Next("unknown"))
}

func TestReset(t *testing.T) {
	assert.Equal(t, Default(), Reset())
}
