// Package store persists experiment runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the run store. The full run record is
// kept as JSON alongside the columns queried for listing and filtering.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    num_rows INTEGER NOT NULL,
    seed TEXT,                 -- decimal uint64; NULL for entropy-seeded runs
    analytic_total REAL NOT NULL,
    fitted_total REAL NOT NULL,
    fitted_direct REAL NOT NULL,
    payload TEXT NOT NULL      -- JSON of the full experiment.Run
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER PRIMARY KEY
);
`

// InitSchema creates the schema if it doesn't exist and records the version.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		"INSERT OR IGNORE INTO schema_info (version) VALUES (?)", SchemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}
