package sqlc

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"weather-dashboard/internal/infra/database"
)

// Open opens a lib/pq pool and verifies it with a ping
func Open(ctx context.Context, cfg database.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
