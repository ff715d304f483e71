// Package repository persists module registrations and their config
// schemas in Postgres.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pipestream-ai/platform-registry/pkg/ids"
	"go.uber.org/zap"
)

// Module status values.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Schema sync status values.
const (
	SyncPending = "PENDING"
	SyncSynced  = "SYNCED"
	SyncFailed  = "FAILED"
)

// heartbeatWindow is how recent a heartbeat must be for the relational
// view to consider a module healthy.
const heartbeatWindow = 30 * time.Second

// Module is a row in the modules table.
type Module struct {
	ServiceID      string
	ServiceName    string
	Host           string
	Port           int
	Version        string
	ConfigSchemaID string
	Metadata       json.RawMessage
	RegisteredAt   time.Time
	LastHeartbeat  sql.NullTime
	Status         string
}

// Healthy reports whether the module heartbeated recently.
func (m *Module) Healthy() bool {
	return m.LastHeartbeat.Valid && time.Since(m.LastHeartbeat.Time) < heartbeatWindow
}

// ConfigSchema is a row in the config_schemas table.
type ConfigSchema struct {
	SchemaID          string
	ServiceName       string
	SchemaVersion     string
	JSONSchema        string
	CreatedAt         time.Time
	CreatedBy         string
	ArchiveArtifactID string
	ArchiveGlobalID   sql.NullInt64
	SyncStatus        string
	LastSyncAttempt   sql.NullTime
	SyncError         string
}

// ModuleRepository handles operations on the modules and config_schemas
// tables.
type ModuleRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewModuleRepository creates a new module repository instance.
func NewModuleRepository(db *sql.DB, log *zap.Logger) *ModuleRepository {
	return &ModuleRepository{db: db, log: log}
}

// WithTransaction runs fn inside a transaction, rolling back on error or
// panic and committing otherwise.
func WithTransaction(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (from: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}

// RegisterModule upserts the module row and its config schema row in one
// transaction. The schema row starts in PENDING until the archive sync
// settles it. Returns the stored module.
func (r *ModuleRepository) RegisterModule(ctx context.Context, mod *Module, schemaJSON, createdBy string) (*Module, error) {
	schemaID := ids.SchemaID(mod.ServiceName, mod.Version)
	if len(mod.Metadata) == 0 {
		mod.Metadata = json.RawMessage("{}")
	}

	err := WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO modules (
				service_id, service_name, host, port, version,
				config_schema_id, metadata, last_heartbeat, status
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, NOW(), $8
			)
			ON CONFLICT (service_id) DO UPDATE SET
				service_name = EXCLUDED.service_name,
				host = EXCLUDED.host,
				port = EXCLUDED.port,
				version = EXCLUDED.version,
				config_schema_id = EXCLUDED.config_schema_id,
				metadata = EXCLUDED.metadata,
				last_heartbeat = NOW(),
				status = EXCLUDED.status
			RETURNING registered_at, last_heartbeat`,
			mod.ServiceID, mod.ServiceName, mod.Host, mod.Port, mod.Version,
			schemaID, mod.Metadata, StatusActive,
		).Scan(&mod.RegisteredAt, &mod.LastHeartbeat)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO config_schemas (
				schema_id, service_name, schema_version, json_schema,
				created_by, sync_status
			) VALUES (
				$1, $2, $3, $4, $5, $6
			)
			ON CONFLICT (service_name, schema_version) DO UPDATE SET
				json_schema = EXCLUDED.json_schema,
				sync_status = EXCLUDED.sync_status,
				sync_error = NULL`,
			schemaID, mod.ServiceName, mod.Version, schemaJSON, createdBy, SyncPending,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	mod.ConfigSchemaID = schemaID
	mod.Status = StatusActive
	return mod, nil
}

// DeleteModule removes a module row. Used by registration rollback.
func (r *ModuleRepository) DeleteModule(ctx context.Context, serviceID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM modules WHERE service_id = $1`, serviceID)
	return err
}

// FindModuleByID retrieves a module by its service id.
func (r *ModuleRepository) FindModuleByID(ctx context.Context, serviceID string) (*Module, error) {
	return r.findModule(ctx,
		`SELECT service_id, service_name, host, port,
			COALESCE(version, ''), COALESCE(config_schema_id, ''),
			COALESCE(metadata, '{}'::jsonb), registered_at, last_heartbeat, status
		FROM modules
		WHERE service_id = $1`,
		serviceID)
}

// FindModuleByName retrieves the most recently registered module instance
// for a name.
func (r *ModuleRepository) FindModuleByName(ctx context.Context, serviceName string) (*Module, error) {
	return r.findModule(ctx,
		`SELECT service_id, service_name, host, port,
			COALESCE(version, ''), COALESCE(config_schema_id, ''),
			COALESCE(metadata, '{}'::jsonb), registered_at, last_heartbeat, status
		FROM modules
		WHERE service_name = $1
		ORDER BY registered_at DESC
		LIMIT 1`,
		serviceName)
}

func (r *ModuleRepository) findModule(ctx context.Context, query, arg string) (*Module, error) {
	mod := &Module{}
	var meta []byte
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&mod.ServiceID, &mod.ServiceName, &mod.Host, &mod.Port,
		&mod.Version, &mod.ConfigSchemaID, &meta,
		&mod.RegisteredAt, &mod.LastHeartbeat, &mod.Status,
	)
	if err != nil {
		return nil, err
	}
	mod.Metadata = meta
	return mod, nil
}

// UpdateHeartbeat stamps a module's last_heartbeat. Returns sql.ErrNoRows
// when the module is unknown.
func (r *ModuleRepository) UpdateHeartbeat(ctx context.Context, serviceID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE modules SET last_heartbeat = NOW(), status = $2 WHERE service_id = $1`,
		serviceID, StatusActive)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkStaleInactive flags ACTIVE modules whose heartbeat is older than the
// cutoff. Returns the number of rows changed.
func (r *ModuleRepository) MarkStaleInactive(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE modules SET status = $1
		WHERE status = $2 AND (last_heartbeat IS NULL OR last_heartbeat < $3)`,
		StatusInactive, StatusActive, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// FindSchemaByID retrieves one schema row by its id.
func (r *ModuleRepository) FindSchemaByID(ctx context.Context, schemaID string) (*ConfigSchema, error) {
	return r.findSchema(ctx,
		`SELECT schema_id, service_name, schema_version, json_schema::text,
			created_at, COALESCE(created_by, ''), COALESCE(archive_artifact_id, ''),
			archive_global_id, sync_status, last_sync_attempt, COALESCE(sync_error, '')
		FROM config_schemas
		WHERE schema_id = $1`,
		schemaID)
}

// FindLatestSchemaByName retrieves the newest schema row for a module
// name. Newest = highest created_at, ties broken by schema_version
// descending.
func (r *ModuleRepository) FindLatestSchemaByName(ctx context.Context, serviceName string) (*ConfigSchema, error) {
	return r.findSchema(ctx,
		`SELECT schema_id, service_name, schema_version, json_schema::text,
			created_at, COALESCE(created_by, ''), COALESCE(archive_artifact_id, ''),
			archive_global_id, sync_status, last_sync_attempt, COALESCE(sync_error, '')
		FROM config_schemas
		WHERE service_name = $1
		ORDER BY created_at DESC, schema_version DESC
		LIMIT 1`,
		serviceName)
}

func (r *ModuleRepository) findSchema(ctx context.Context, query, arg string) (*ConfigSchema, error) {
	s := &ConfigSchema{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&s.SchemaID, &s.ServiceName, &s.SchemaVersion, &s.JSONSchema,
		&s.CreatedAt, &s.CreatedBy, &s.ArchiveArtifactID,
		&s.ArchiveGlobalID, &s.SyncStatus, &s.LastSyncAttempt, &s.SyncError,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSchemaVersions returns all known schema versions for a module name,
// newest first.
func (r *ModuleRepository) ListSchemaVersions(ctx context.Context, serviceName string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT schema_version
		FROM config_schemas
		WHERE service_name = $1
		ORDER BY created_at DESC, schema_version DESC`,
		serviceName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// MarkSchemaSynced records a successful archive sync.
func (r *ModuleRepository) MarkSchemaSynced(ctx context.Context, schemaID, artifactID string, globalID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE config_schemas SET
			sync_status = $2,
			archive_artifact_id = $3,
			archive_global_id = $4,
			last_sync_attempt = NOW(),
			sync_error = NULL
		WHERE schema_id = $1`,
		schemaID, SyncSynced, artifactID, globalID)
	return err
}

// MarkSchemaFailed records a failed archive sync attempt.
func (r *ModuleRepository) MarkSchemaFailed(ctx context.Context, schemaID, syncError string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE config_schemas SET
			sync_status = $2,
			last_sync_attempt = NOW(),
			sync_error = $3
		WHERE schema_id = $1`,
		schemaID, SyncFailed, syncError)
	return err
}
