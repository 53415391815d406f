// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-qr-forge/internal/encoder"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/style"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/internal/validators"
	"github.com/MKhiriev/go-qr-forge/models"
)

// MaxPayloadNameLength matches the width of the name column.
const MaxPayloadNameLength = 255

type historyService struct {
	payloadRepository store.PayloadRepository

	contentValidator validators.ContentValidator
	styleValidator   validators.Validator
	ids              *utils.UUIDGenerator
	now              func() time.Time

	logger *logger.Logger
}

func newHistoryService(payloadRepository store.PayloadRepository, logger *logger.Logger) *historyService {
	return &historyService{
		payloadRepository: payloadRepository,
		contentValidator:  validators.NewContentValidator(),
		styleValidator:    validators.NewStyleValidator(),
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// NewHistoryService builds a history backed by payloadRepository.
func NewHistoryService(payloadRepository store.PayloadRepository, logger *logger.Logger) HistoryService {
	return newHistoryService(payloadRepository, logger)
}

// NewHistoryPruner returns the retention side of the same history.
func NewHistoryPruner(payloadRepository store.PayloadRepository, logger *logger.Logger) HistoryPruner {
	return newHistoryService(payloadRepository, logger)
}

// Save re-validates and re-encodes the field set so that the stored data
// always matches the stored fields. Fields are persisted in normalized form.
func (h *historyService) Save(ctx context.Context, req models.SaveRequest) (models.SavedPayload, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.SavedPayload{}, ErrEmptyPayloadName
	}
	if utf8.RuneCountInString(name) > MaxPayloadNameLength {
		return models.SavedPayload{}, fmt.Errorf("%w: max %d characters", ErrPayloadNameTooLong, MaxPayloadNameLength)
	}

	content, err := decodeContent(req.ContentRequest)
	if err != nil {
		return models.SavedPayload{}, err
	}

	if result := h.contentValidator.Validate(content); !result.Valid {
		return models.SavedPayload{}, NewValidationError(result.Reason, result.Err())
	}

	s := style.Default()
	if req.Style != nil {
		if err = h.styleValidator.Validate(ctx, req.Style); err != nil {
			return models.SavedPayload{}, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
		}
		s = *req.Style
	}

	fields, err := models.EncodeFields(content)
	if err != nil {
		log.Err(err).Str("func", "historyService.Save").Msg("failed to encode fields")
		return models.SavedPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := h.payloadRepository.Save(ctx, models.SavedPayload{
		ID:     h.ids.Generate(),
		Name:   name,
		Type:   content.ContentType(),
		Fields: fields,
		Data:   encoder.Encode(content),
		Style:  s,
	})
	if err != nil {
		log.Err(err).Str("func", "historyService.Save").Str("name", name).Msg("failed to save payload")
		return models.SavedPayload{}, err
	}

	log.Debug().Str("id", saved.ID).Str("type", saved.Type.String()).Msg("payload saved")
	return saved, nil
}

func (h *historyService) Get(ctx context.Context, id string) (models.SavedPayload, error) {
	if !utils.IsUUID(id) {
		return models.SavedPayload{}, fmt.Errorf("%w: %q", ErrInvalidPayloadID, id)
	}
	return h.payloadRepository.Get(ctx, id)
}

func (h *historyService) List(ctx context.Context, filter models.PayloadFilter) ([]models.SavedPayload, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, models.ErrUnknownContentType)
	}
	return h.payloadRepository.List(ctx, filter)
}

func (h *historyService) Delete(ctx context.Context, id string) error {
	if !utils.IsUUID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidPayloadID, id)
	}
	return h.payloadRepository.Delete(ctx, id)
}

func (h *historyService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	before := h.now().UTC().Add(-retention)
	removed, err := h.payloadRepository.DeleteOlderThan(ctx, before)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "historyService.Prune").Msg("failed to prune history")
		return 0, err
	}

	return removed, nil
}
