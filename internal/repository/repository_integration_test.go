//go:build integration

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/pipestream-ai/platform-registry/database/migrations"
)

func setupDatabase(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("registry"),
		postgrescontainer.WithUsername("platform"),
		postgrescontainer.WithPassword("platform"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err)

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, migrations.Apply(ctx, db))
	return db
}

func TestRegisterModuleDualWrite(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	repo := NewModuleRepository(db, zap.NewNop())

	mod := &Module{
		ServiceID:   "pdf-extract-10.0.0.1-9090",
		ServiceName: "pdf-extract",
		Host:        "10.0.0.1",
		Port:        9090,
		Version:     "2.1.0",
		Metadata:    json.RawMessage(`{"owner":"data-team"}`),
	}

	stored, err := repo.RegisterModule(ctx, mod, `{"x":1}`, "registration-service")
	require.NoError(t, err)
	require.Equal(t, "pdf-extract-2_1_0", stored.ConfigSchemaID)
	require.Equal(t, StatusActive, stored.Status)
	require.True(t, stored.LastHeartbeat.Valid)

	schema, err := repo.FindSchemaByID(ctx, "pdf-extract-2_1_0")
	require.NoError(t, err)
	require.Equal(t, "pdf-extract", schema.ServiceName)
	require.Equal(t, "2.1.0", schema.SchemaVersion)
	require.JSONEq(t, `{"x":1}`, schema.JSONSchema)
	require.Equal(t, SyncPending, schema.SyncStatus)
	require.Equal(t, "registration-service", schema.CreatedBy)
}

func TestRegisterModuleIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	repo := NewModuleRepository(db, zap.NewNop())

	mod := &Module{
		ServiceID:   "echo-localhost-8080",
		ServiceName: "echo",
		Host:        "localhost",
		Port:        8080,
		Version:     "1.0.0",
	}

	_, err := repo.RegisterModule(ctx, mod, `{"a":true}`, "registration-service")
	require.NoError(t, err)
	_, err = repo.RegisterModule(ctx, mod, `{"a":false}`, "registration-service")
	require.NoError(t, err)

	var moduleCount, schemaCount int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM modules WHERE service_id = $1`, mod.ServiceID).Scan(&moduleCount))
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM config_schemas WHERE service_name = 'echo' AND schema_version = '1.0.0'`).Scan(&schemaCount))
	require.Equal(t, 1, moduleCount)
	require.Equal(t, 1, schemaCount)

	schema, err := repo.FindLatestSchemaByName(ctx, "echo")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":false}`, schema.JSONSchema)
}

func TestSyncStatusTransitions(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	repo := NewModuleRepository(db, zap.NewNop())

	mod := &Module{
		ServiceID:   "parser-localhost-7070",
		ServiceName: "parser",
		Host:        "localhost",
		Port:        7070,
		Version:     "3.0.0",
	}
	_, err := repo.RegisterModule(ctx, mod, `{}`, "registration-service")
	require.NoError(t, err)

	require.NoError(t, repo.MarkSchemaSynced(ctx, "parser-3_0_0", "parser-config-v3_0_0", 42))
	schema, err := repo.FindSchemaByID(ctx, "parser-3_0_0")
	require.NoError(t, err)
	require.Equal(t, SyncSynced, schema.SyncStatus)
	require.Equal(t, "parser-config-v3_0_0", schema.ArchiveArtifactID)
	require.Equal(t, int64(42), schema.ArchiveGlobalID.Int64)
	require.True(t, schema.LastSyncAttempt.Valid)

	require.NoError(t, repo.MarkSchemaFailed(ctx, "parser-3_0_0", "registry unreachable"))
	schema, err = repo.FindSchemaByID(ctx, "parser-3_0_0")
	require.NoError(t, err)
	require.Equal(t, SyncFailed, schema.SyncStatus)
	require.Equal(t, "registry unreachable", schema.SyncError)
}

func TestDeleteModule(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	repo := NewModuleRepository(db, zap.NewNop())

	mod := &Module{
		ServiceID:   "tmp-localhost-1234",
		ServiceName: "tmp",
		Host:        "localhost",
		Port:        1234,
		Version:     "0.1.0",
	}
	_, err := repo.RegisterModule(ctx, mod, `{}`, "registration-service")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteModule(ctx, mod.ServiceID))
	_, err = repo.FindModuleByID(ctx, mod.ServiceID)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestHeartbeatAndStaleness(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	repo := NewModuleRepository(db, zap.NewNop())

	mod := &Module{
		ServiceID:   "beat-localhost-5555",
		ServiceName: "beat",
		Host:        "localhost",
		Port:        5555,
		Version:     "1.0.0",
	}
	_, err := repo.RegisterModule(ctx, mod, `{}`, "registration-service")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateHeartbeat(ctx, mod.ServiceID))
	require.ErrorIs(t, repo.UpdateHeartbeat(ctx, "missing-localhost-1"), sql.ErrNoRows)

	fresh, err := repo.FindModuleByID(ctx, mod.ServiceID)
	require.NoError(t, err)
	require.True(t, fresh.Healthy())

	_, err = db.ExecContext(ctx,
		`UPDATE modules SET last_heartbeat = NOW() - INTERVAL '1 minute' WHERE service_id = $1`,
		mod.ServiceID)
	require.NoError(t, err)

	stale, err := repo.FindModuleByID(ctx, mod.ServiceID)
	require.NoError(t, err)
	require.False(t, stale.Healthy())

	n, err := repo.MarkStaleInactive(ctx, time.Now().Add(-30*time.Second))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	stored, err := repo.FindModuleByID(ctx, mod.ServiceID)
	require.NoError(t, err)
	require.Equal(t, StatusInactive, stored.Status)
}

func TestFindModuleByName(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	repo := NewModuleRepository(db, zap.NewNop())

	first := &Module{
		ServiceID:   "chunker-10.0.0.1-9090",
		ServiceName: "chunker",
		Host:        "10.0.0.1",
		Port:        9090,
		Version:     "1.0.0",
	}
	_, err := repo.RegisterModule(ctx, first, `{}`, "registration-service")
	require.NoError(t, err)

	second := &Module{
		ServiceID:   "chunker-10.0.0.2-9090",
		ServiceName: "chunker",
		Host:        "10.0.0.2",
		Port:        9090,
		Version:     "1.1.0",
	}
	_, err = repo.RegisterModule(ctx, second, `{}`, "registration-service")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`UPDATE modules SET registered_at = NOW() - INTERVAL '1 hour' WHERE service_id = $1`,
		first.ServiceID)
	require.NoError(t, err)

	found, err := repo.FindModuleByName(ctx, "chunker")
	require.NoError(t, err)
	require.Equal(t, second.ServiceID, found.ServiceID)
	require.Equal(t, "1.1.0", found.Version)

	_, err = repo.FindModuleByName(ctx, "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListSchemaVersions(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	repo := NewModuleRepository(db, zap.NewNop())

	for _, v := range []string{"1.0.0", "1.1.0", "2.0.0"} {
		mod := &Module{
			ServiceID:   "multi-localhost-8000",
			ServiceName: "multi",
			Host:        "localhost",
			Port:        8000,
			Version:     v,
		}
		_, err := repo.RegisterModule(ctx, mod, `{}`, "registration-service")
		require.NoError(t, err)
	}

	versions, err := repo.ListSchemaVersions(ctx, "multi")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	require.Contains(t, versions, "1.0.0")
	require.Contains(t, versions, "1.1.0")
	require.Contains(t, versions, "2.0.0")
}
