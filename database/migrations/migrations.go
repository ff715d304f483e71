// Package migrations contains the registry's relational schema.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	// Migration 1: modules table, the system of record for registrations.
	`CREATE TABLE IF NOT EXISTS modules (
		service_id VARCHAR(512) PRIMARY KEY,
		service_name VARCHAR(255) NOT NULL,
		host VARCHAR(255) NOT NULL,
		port INTEGER NOT NULL,
		version VARCHAR(100),
		config_schema_id VARCHAR(512),
		metadata JSONB,
		registered_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		last_heartbeat TIMESTAMP WITH TIME ZONE,
		status VARCHAR(50) NOT NULL DEFAULT 'ACTIVE'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_modules_service_name ON modules(service_name)`,
	`CREATE INDEX IF NOT EXISTS idx_modules_status ON modules(status)`,

	// Migration 2: config_schemas table. One row per (service_name,
	// schema_version); the registry upserts the content on re-registration.
	`CREATE TABLE IF NOT EXISTS config_schemas (
		schema_id VARCHAR(512) PRIMARY KEY,
		service_name VARCHAR(255) NOT NULL,
		schema_version VARCHAR(100) NOT NULL,
		json_schema JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		created_by VARCHAR(255),
		archive_artifact_id VARCHAR(512),
		archive_global_id BIGINT,
		sync_status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
		last_sync_attempt TIMESTAMP WITH TIME ZONE,
		sync_error TEXT,
		UNIQUE (service_name, schema_version)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_config_schemas_service_name ON config_schemas(service_name)`,
	`CREATE INDEX IF NOT EXISTS idx_config_schemas_sync_status ON config_schemas(sync_status)`,
}

// Apply runs all migrations in order. Every statement is idempotent so
// Apply is safe to run on each boot.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
