// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/migrations"
	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryDB(dialect string) *DB {
	return newDB(nil, dialect, NewSQLiteErrorClassifier(), logger.Nop())
}

func Test_buildInsertPayloadQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	row := payloadRow{ID: "id-1", Name: "n", Type: "url", Fields: "{}", Data: "https://x.io", Style: "{}", CreatedAt: now}

	tests := []struct {
		name        string
		dialect     string
		placeholder string
	}{
		{name: "postgres uses dollar placeholders", dialect: migrations.DialectPostgres, placeholder: "$7"},
		{name: "sqlite uses question marks", dialect: migrations.DialectSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueryDB(tt.dialect).buildInsertPayloadQuery(row)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "INSERT INTO payloads"))
			for _, col := range payloadColumns {
				assert.Contains(t, query, col)
			}
			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{"id-1", "n", "url", "{}", "https://x.io", "{}", now}, args)
		})
	}
}

func Test_buildSelectPayloadQuery(t *testing.T) {
	query, args, err := newQueryDB(migrations.DialectPostgres).buildSelectPayloadQuery("abc")
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, type, fields, data, style, created_at FROM payloads WHERE id = $1", query)
	assert.Equal(t, []any{"abc"}, args)
}

func Test_buildListPayloadsQuery(t *testing.T) {
	wifi := models.WiFi

	tests := []struct {
		name      string
		dialect   string
		filter    models.PayloadFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			dialect:   migrations.DialectPostgres,
			wantQuery: "SELECT id, name, type, fields, data, style, created_at FROM payloads ORDER BY created_at DESC, id",
		},
		{
			name:      "type and limit on postgres",
			dialect:   migrations.DialectPostgres,
			filter:    models.PayloadFilter{Type: &wifi, Limit: 5},
			wantQuery: "SELECT id, name, type, fields, data, style, created_at FROM payloads WHERE type = $1 ORDER BY created_at DESC, id LIMIT 5",
			wantArgs:  []any{"wifi"},
		},
		{
			name:      "type on sqlite",
			dialect:   migrations.DialectSQLite,
			filter:    models.PayloadFilter{Type: &wifi},
			wantQuery: "SELECT id, name, type, fields, data, style, created_at FROM payloads WHERE type = ? ORDER BY created_at DESC, id",
			wantArgs:  []any{"wifi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueryDB(tt.dialect).buildListPayloadsQuery(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildDeleteQueries(t *testing.T) {
	db := newQueryDB(migrations.DialectPostgres)

	query, args, err := db.buildDeletePayloadQuery("abc")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM payloads WHERE id = $1", query)
	assert.Equal(t, []any{"abc"}, args)

	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args, err = db.buildDeleteOlderThanQuery(before)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM payloads WHERE created_at < $1", query)
	assert.Equal(t, []any{before}, args)
}
