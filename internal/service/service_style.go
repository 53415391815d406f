package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/style"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

type styleService struct {
	validator validators.Validator

	logger *logger.Logger
}

func NewStyleService(logger *logger.Logger) StyleService {
	return &styleService{
		validator: validators.NewStyleValidator(),
		logger:    logger,
	}
}

func (s *styleService) Default(ctx context.Context) models.Style {
	return style.Default()
}

func (s *styleService) Presets(ctx context.Context) []models.Preset {
	return style.Presets()
}

// ApplyPreset validates the colors and geometry of st before applying the
// preset. The preset field itself is not checked since it is being replaced.
func (s *styleService) ApplyPreset(ctx context.Context, st models.Style, preset models.Preset) (models.Style, error) {
	err := s.validator.Validate(ctx, st,
		validators.FieldSize,
		validators.FieldMargin,
		validators.FieldForeground,
		validators.FieldBackground,
		validators.FieldErrorCorrection,
	)
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}

	return style.Apply(st, preset)
}
