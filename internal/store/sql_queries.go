package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qr-forge/models"
)

const payloadsTable = "payloads"

var payloadColumns = []string{
	"id",
	"name",
	"type",
	"fields",
	"data",
	"style",
	"created_at",
}

// payloadRow is the column form of a saved payload: the content type is
// stored by name and the JSON columns as text.
type payloadRow struct {
	ID        string
	Name      string
	Type      string
	Fields    string
	Data      string
	Style     string
	CreatedAt time.Time
}

func (db *DB) buildInsertPayloadQuery(row payloadRow) (string, []any, error) {
	return db.builder.
		Insert(payloadsTable).
		Columns(payloadColumns...).
		Values(row.ID, row.Name, row.Type, row.Fields, row.Data, row.Style, row.CreatedAt).
		ToSql()
}

func (db *DB) buildSelectPayloadQuery(id string) (string, []any, error) {
	return db.builder.
		Select(payloadColumns...).
		From(payloadsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildListPayloadsQuery(filter models.PayloadFilter) (string, []any, error) {
	query := db.builder.
		Select(payloadColumns...).
		From(payloadsTable).
		OrderBy("created_at DESC", "id")

	if filter.Type != nil {
		query = query.Where(sq.Eq{"type": filter.Type.String()})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func (db *DB) buildDeletePayloadQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(payloadsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildDeleteOlderThanQuery(before time.Time) (string, []any, error) {
	return db.builder.
		Delete(payloadsTable).
		Where(sq.Lt{"created_at": before}).
		ToSql()
}
