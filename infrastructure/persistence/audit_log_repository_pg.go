package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/omkar342/youtube-dashboard-server/domain/model"
	"github.com/omkar342/youtube-dashboard-server/domain/repository"
)

// PostgresAuditLogRepository appends audit events to an append-only table.
// Alternative backend to Mongo, selected via the audit.backend configuration.
type PostgresAuditLogRepository struct {
	db *sql.DB
}

func NewPostgresAuditLogRepository(db *sql.DB) repository.IAuditLog {
	return &PostgresAuditLogRepository{db: db}
}

// EnsureAuditLogSchema creates the audit_log table when missing.
func EnsureAuditLogSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS audit_log (
		id BIGSERIAL PRIMARY KEY,
		event TEXT NOT NULL,
		details JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`)
	return err
}

// Append inserts one event row. The typed detail struct is serialized to
// JSONB keyed by the event tag.
func (r *PostgresAuditLogRepository) Append(ctx context.Context, event model.AuditEvent) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	statement, err := r.db.PrepareContext(ctx,
		`INSERT INTO audit_log (event, details, created_at) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("failed to prepare audit insert: %w", err)
	}
	defer statement.Close()

	if _, err := statement.ExecContext(ctx, string(event.Event), details, event.Timestamp); err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	return nil
}
