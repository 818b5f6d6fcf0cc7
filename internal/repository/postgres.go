// internal/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "internship-matcher/internal/common/errors"
)

// EnsureSchema creates the record tables when they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, kind := range []string{candidateKind, internshipKind} {
		if _, err := db.ExecContext(ctx, createTableQuery(tableName(kind))); err != nil {
			return fmt.Errorf("create %s table: %w", tableName(kind), err)
		}
	}
	return nil
}

func tableName(kind string) string {
	return kind + "s"
}

func createTableQuery(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	seq BIGSERIAL,
	id TEXT PRIMARY KEY,
	data JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, table)
}

// postgresRepository stores each record as a JSONB document keyed by id.
type postgresRepository[T any] struct {
	db          *sql.DB
	kind        string
	idOf        func(T) string
	selectOne   string
	selectAll   string
	upsertQuery string
}

func NewPostgres[T any](db *sql.DB, kind string, idOf func(T) string) Repository[T] {
	table := tableName(kind)
	return &postgresRepository[T]{
		db:          db,
		kind:        kind,
		idOf:        idOf,
		selectOne:   fmt.Sprintf("SELECT data FROM %s WHERE id = $1", table),
		selectAll:   fmt.Sprintf("SELECT data FROM %s ORDER BY seq", table),
		upsertQuery: fmt.Sprintf("INSERT INTO %s (id, data) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data", table),
	}
}

func (r *postgresRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	var raw []byte

	err := r.db.QueryRowContext(ctx, r.selectOne, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return record, ErrNotFound
	}
	if err != nil {
		return record, apperrors.NewStorageReadFailedError(r.kind, err)
	}

	if err := json.Unmarshal(raw, &record); err != nil {
		return record, apperrors.NewStorageReadFailedError(r.kind, err)
	}
	return record, nil
}

func (r *postgresRepository[T]) Put(ctx context.Context, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return apperrors.NewStorageWriteFailedError(r.kind, err)
	}

	if _, err := r.db.ExecContext(ctx, r.upsertQuery, r.idOf(record), payload); err != nil {
		return apperrors.NewStorageWriteFailedError(r.kind, err)
	}
	return nil
}

func (r *postgresRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.selectAll)
	if err != nil {
		return nil, apperrors.NewStorageReadFailedError(r.kind, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, apperrors.NewStorageReadFailedError(r.kind, err)
		}
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, apperrors.NewStorageReadFailedError(r.kind, err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageReadFailedError(r.kind, err)
	}
	return out, nil
}
