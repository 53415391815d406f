package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-forge/internal/encoder"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/style"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

// imageExt is the extension of the download name returned by Build.
const imageExt = "png"

type payloadService struct {
	contentValidator validators.ContentValidator
	styleValidator   validators.Validator

	logger *logger.Logger
}

func NewPayloadService(logger *logger.Logger) PayloadService {
	return &payloadService{
		contentValidator: validators.NewContentValidator(),
		styleValidator:   validators.NewStyleValidator(),
		logger:           logger,
	}
}

func (p *payloadService) Generate(ctx context.Context, content models.Content) models.Payload {
	payload := models.Payload{Validation: p.contentValidator.Validate(content)}
	if content != nil {
		payload.Type = content.ContentType()
	}

	event := p.logger.Debug().Str("func", "payloadService.Generate").Stringer("type", payload.Type)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		event = event.Str("trace_id", traceID)
	}

	if !payload.Validation.Valid {
		event.Str("reason", payload.Validation.Reason).Msg("content rejected")
		return payload
	}

	payload.Data = encoder.Encode(content)
	event.Int("length", len(payload.Data)).Msg("payload encoded")
	return payload
}

func (p *payloadService) Validate(ctx context.Context, req models.ContentRequest) (models.ValidationResult, error) {
	content, err := decodeContent(req)
	if err != nil {
		return models.ValidationResult{}, err
	}

	return p.contentValidator.Validate(content), nil
}

func (p *payloadService) Build(ctx context.Context, req models.BuildRequest) (models.BuildResponse, error) {
	log := logger.FromContext(ctx)

	content, err := decodeContent(req.ContentRequest)
	if err != nil {
		return models.BuildResponse{}, err
	}

	s, err := p.resolveStyle(ctx, req.Style)
	if err != nil {
		log.Err(err).Str("func", "payloadService.Build").Msg("rejected style")
		return models.BuildResponse{}, err
	}

	payload := p.Generate(ctx, content)
	return models.BuildResponse{
		Payload:  payload,
		Style:    s,
		FileName: payload.FileName(imageExt),
	}, nil
}

// resolveStyle returns the default style for nil and validates anything else.
func (p *payloadService) resolveStyle(ctx context.Context, s *models.Style) (models.Style, error) {
	if s == nil {
		return style.Default(), nil
	}
	if err := p.styleValidator.Validate(ctx, s); err != nil {
		return models.Style{}, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}
	return *s, nil
}

func decodeContent(req models.ContentRequest) (models.Content, error) {
	content, err := models.DecodeContent(req.Type, req.Fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return content, nil
}
