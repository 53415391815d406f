// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

const maxRetries = 3

var retryDelay = 50 * time.Millisecond

// payloadRepository is the SQL implementation of [PayloadRepository]. The
// same code serves SQLite and PostgreSQL; the embedded [*DB] supplies the
// placeholder format and the driver error classification.
type payloadRepository struct {
	*DB
	logger *logger.Logger
}

// NewPayloadRepository constructs a [PayloadRepository] backed by db.
func NewPayloadRepository(db *DB, logger *logger.Logger) PayloadRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating payload repository")
	return &payloadRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *payloadRepository) Save(ctx context.Context, payload models.SavedPayload) (models.SavedPayload, error) {
	log := logger.FromContext(ctx)

	if payload.ID == "" {
		payload.ID = uuid.NewString()
	}
	if payload.CreatedAt.IsZero() {
		payload.CreatedAt = time.Now().UTC()
	}

	row, err := toRow(payload)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.Save").Str("id", payload.ID).Msg("failed to encode payload")
		return models.SavedPayload{}, err
	}

	query, args, err := p.buildInsertPayloadQuery(row)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.Save").Msg("failed to create query")
		return models.SavedPayload{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = p.withRetry(ctx, func() error {
		var execErr error
		result, execErr = p.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if p.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "payloadRepository.Save").Str("name", payload.Name).Msg("payload name already exists")
			return models.SavedPayload{}, ErrPayloadNameExists
		}
		log.Err(err).Str("func", "payloadRepository.Save").Str("id", payload.ID).Msg("failed to insert payload")
		return models.SavedPayload{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Error().Str("func", "payloadRepository.Save").Str("id", payload.ID).Msg("no rows inserted")
		return models.SavedPayload{}, ErrPayloadNotSaved
	}

	return payload, nil
}

func (p *payloadRepository) Get(ctx context.Context, id string) (models.SavedPayload, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildSelectPayloadQuery(id)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.Get").Msg("failed to create query")
		return models.SavedPayload{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row payloadRow
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(
		&row.ID,
		&row.Name,
		&row.Type,
		&row.Fields,
		&row.Data,
		&row.Style,
		&row.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedPayload{}, ErrPayloadNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.Get").Str("id", id).Msg("failed to scan payload row")
		return models.SavedPayload{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return fromRow(row)
}

func (p *payloadRepository) List(ctx context.Context, filter models.PayloadFilter) ([]models.SavedPayload, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildListPayloadsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.List").Msg("failed to execute query for listing payloads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SavedPayload, 0, 16)
	for rows.Next() {
		var row payloadRow
		if scanErr := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Type,
			&row.Fields,
			&row.Data,
			&row.Style,
			&row.CreatedAt,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "payloadRepository.List").Msg("failed to scan payload row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item, convErr := fromRow(row)
		if convErr != nil {
			log.Err(convErr).Str("func", "payloadRepository.List").Str("id", row.ID).Msg("failed to decode payload row")
			return nil, convErr
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "payloadRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (p *payloadRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := p.buildDeletePayloadQuery(id)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.Delete").Str("id", id).Msg("failed to delete payload")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPayloadNotFound
	}

	return nil
}

func (p *payloadRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildDeleteOlderThanQuery(before)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.DeleteOlderThan").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "payloadRepository.DeleteOlderThan").Time("before", before).Msg("failed to prune payloads")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// withRetry runs fn again while it fails with a retryable driver error.
func (p *payloadRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = fn()
		if err == nil || p.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying statement")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay * time.Duration(attempt)):
		}
	}
	return err
}

func toRow(p models.SavedPayload) (payloadRow, error) {
	style, err := json.Marshal(p.Style)
	if err != nil {
		return payloadRow{}, fmt.Errorf("%w: style: %w", ErrEncodingColumn, err)
	}

	fields := string(p.Fields)
	if fields == "" {
		fields = "{}"
	}

	return payloadRow{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type.String(),
		Fields:    fields,
		Data:      p.Data,
		Style:     string(style),
		CreatedAt: p.CreatedAt,
	}, nil
}

func fromRow(row payloadRow) (models.SavedPayload, error) {
	contentType, err := models.ParseContentType(row.Type)
	if err != nil {
		return models.SavedPayload{}, fmt.Errorf("%w: type: %w", ErrEncodingColumn, err)
	}

	var style models.Style
	if err = json.Unmarshal([]byte(row.Style), &style); err != nil {
		return models.SavedPayload{}, fmt.Errorf("%w: style: %w", ErrEncodingColumn, err)
	}

	return models.SavedPayload{
		ID:        row.ID,
		Name:      row.Name,
		Type:      contentType,
		Fields:    json.RawMessage(row.Fields),
		Data:      row.Data,
		Style:     style,
		CreatedAt: row.CreatedAt,
	}, nil
}
