package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"valuation/config"
	"valuation/models"
	"valuation/utils"
)

// InitDB opens the postgres pool used for the field-change audit log.
func InitDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings optimized for light server load
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	ctx, cancel := utils.GetQueryContext(context.Background(), utils.PingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

const createChangeTable = `CREATE TABLE IF NOT EXISTS valuation_changes (
	id BIGSERIAL PRIMARY KEY,
	session_id TEXT NOT NULL,
	section TEXT NOT NULL,
	action TEXT NOT NULL,
	field TEXT NOT NULL,
	row_key INTEGER,
	new_value TEXT NOT NULL,
	changed_at TIMESTAMPTZ NOT NULL
)`

// ChangeLog records every accepted field event.
type ChangeLog struct {
	db *sql.DB
}

// NewChangeLog makes sure the audit table exists.
func NewChangeLog(ctx context.Context, db *sql.DB) (*ChangeLog, error) {
	ctx, cancel := utils.GetQueryContext(ctx, utils.WriteTimeout)
	defer cancel()
	if _, err := db.ExecContext(ctx, createChangeTable); err != nil {
		return nil, fmt.Errorf("create valuation_changes: %w", err)
	}
	return &ChangeLog{db: db}, nil
}

func (l *ChangeLog) LogChange(ctx context.Context, change models.FieldChange) error {
	ctx, cancel := utils.GetQueryContext(ctx, utils.WriteTimeout)
	defer cancel()
	var rowKey sql.NullInt64
	if change.RowKey != nil {
		rowKey = sql.NullInt64{Int64: int64(*change.RowKey), Valid: true}
	}
	query := `INSERT INTO valuation_changes (session_id, section, action, field, row_key, new_value, changed_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := l.db.ExecContext(ctx, query, change.SessionID, change.Section, change.Action, change.Field, rowKey, change.NewValue, change.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to log change: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := utils.GetQueryContext(ctx, utils.PingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
