package storage

import (
	"context"
	"database/sql"
	"errors"

	"weather-dashboard/internal/domain/model"
)

type SQLCStorageGateway struct {
	DB *sql.DB
}

var _ StorageGateway = (*SQLCStorageGateway)(nil)

func NewSQLCStorageGateway(db *sql.DB) *SQLCStorageGateway {
	return &SQLCStorageGateway{DB: db}
}

// EnsureSchema creates the storage table when it does not exist yet
func (gateway *SQLCStorageGateway) EnsureSchema(ctx context.Context) error {
	_, err := gateway.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS dashboard_storage (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (gateway *SQLCStorageGateway) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT value
		FROM dashboard_storage
		WHERE key = $1`, key).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (gateway *SQLCStorageGateway) Set(ctx context.Context, key string, value string) error {
	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO dashboard_storage (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()`, key, value)
	return err
}

func (gateway *SQLCStorageGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := gateway.DB.PingContext(ctx); err != nil {
		return downStatus("postgres", err)
	}
	return upStatus("postgres")
}
