// Package schema resolves module config schemas through a tiered lookup:
// the Postgres system of record first, the schema registry second, and a
// live callback to the module itself as a last resort.
package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	modulev1 "github.com/pipestream-ai/platform-registry/api/protos/module/v1"
	registrationv1 "github.com/pipestream-ai/platform-registry/api/protos/registration/v1"
	"github.com/pipestream-ai/platform-registry/internal/apicurio"
	"github.com/pipestream-ai/platform-registry/internal/repository"
	"github.com/pipestream-ai/platform-registry/pkg/ids"
)

// defaultSchemaTemplate is the fallback config schema for modules that do
// not self-describe one: an OpenAPI 3.1 document accepting arbitrary
// string-valued configuration keys.
const defaultSchemaTemplate = `{
  "openapi": "3.1.0",
  "info": { "title": "%s Configuration", "version": "1.0.0" },
  "components": {
    "schemas": {
      "Config": {
        "type": "object",
        "additionalProperties": { "type": "string" },
        "description": "Key-value configuration for %s"
      }
    }
  }
}`

// Synthesize renders the default config schema for a module.
func Synthesize(moduleName string) string {
	return fmt.Sprintf(defaultSchemaTemplate, moduleName, moduleName)
}

// Store is the slice of the module repository the cascade reads.
type Store interface {
	FindSchemaByID(ctx context.Context, schemaID string) (*repository.ConfigSchema, error)
	FindLatestSchemaByName(ctx context.Context, serviceName string) (*repository.ConfigSchema, error)
	ListSchemaVersions(ctx context.Context, serviceName string) ([]string, error)
}

// Archive reads schemas and artifact metadata back from the registry.
type Archive interface {
	GetSchema(ctx context.Context, serviceName, version string) (string, error)
	GetArtifactMetadata(ctx context.Context, serviceName string) (*apicurio.ArtifactMetadata, error)
}

// MetadataFetcher calls a module back for its self-description.
type MetadataFetcher interface {
	FetchModuleMetadata(ctx context.Context, moduleName string) (*modulev1.GetServiceRegistrationResponse, error)
}

// Service answers schema queries against the store, the archive and,
// failing both, the module itself.
type Service struct {
	store   Store
	archive Archive
	fetcher MetadataFetcher
	log     *zap.Logger
}

// NewService builds the schema query service.
func NewService(store Store, archive Archive, fetcher MetadataFetcher, log *zap.Logger) *Service {
	return &Service{store: store, archive: archive, fetcher: fetcher, log: log}
}

// GetModuleSchema walks the lookup tiers in order. A database hit wins
// outright; a database miss falls through to the archive; any archive
// failure falls through to a live module callback. Only when the callback
// also fails does the call return NotFound. Database errors other than a
// miss abort the cascade.
func (s *Service) GetModuleSchema(ctx context.Context, req *registrationv1.GetModuleSchemaRequest) (*registrationv1.GetModuleSchemaResponse, error) {
	moduleName := req.GetModuleName()
	version := req.GetVersion()

	fetchVersion := version
	if fetchVersion == "" {
		fetchVersion = "latest"
	}
	s.log.Info("Retrieving module schema",
		zap.String("module", moduleName),
		zap.String("version", fetchVersion))

	row, err := s.lookupRow(ctx, moduleName, version)
	switch {
	case err == nil:
		return schemaFromRow(row), nil
	case errors.Is(err, sql.ErrNoRows):
		s.log.Debug("Schema not in database, trying archive",
			zap.String("module", moduleName),
			zap.String("version", fetchVersion))
	default:
		return nil, fmt.Errorf("failed to read schema for %s from database: %w", moduleName, err)
	}

	resp, archiveErr := s.fromArchive(ctx, moduleName, fetchVersion)
	if archiveErr == nil {
		return resp, nil
	}
	s.log.Warn("Archive lookup failed, falling back to module",
		zap.String("module", moduleName),
		zap.String("version", fetchVersion),
		zap.Error(archiveErr))

	return s.fromModule(ctx, moduleName)
}

// GetModuleSchemaVersions lists every stored schema version for a module,
// newest first. Unknown modules yield an empty list rather than an error.
func (s *Service) GetModuleSchemaVersions(ctx context.Context, req *registrationv1.GetModuleSchemaVersionsRequest) (*registrationv1.GetModuleSchemaVersionsResponse, error) {
	moduleName := req.GetModuleName()
	s.log.Info("Listing schema versions", zap.String("module", moduleName))

	versions, err := s.store.ListSchemaVersions(ctx, moduleName)
	if err != nil {
		return nil, fmt.Errorf("failed to list schema versions for %s: %w", moduleName, err)
	}
	return &registrationv1.GetModuleSchemaVersionsResponse{
		ModuleName: moduleName,
		Versions:   versions,
	}, nil
}

func (s *Service) lookupRow(ctx context.Context, moduleName, version string) (*repository.ConfigSchema, error) {
	if version == "" {
		return s.store.FindLatestSchemaByName(ctx, moduleName)
	}
	return s.store.FindSchemaByID(ctx, ids.SchemaID(moduleName, version))
}

func schemaFromRow(row *repository.ConfigSchema) *registrationv1.GetModuleSchemaResponse {
	resp := &registrationv1.GetModuleSchemaResponse{
		ModuleName:    row.ServiceName,
		SchemaVersion: row.SchemaVersion,
		SchemaJson:    row.JSONSchema,
		ArtifactId:    row.ArchiveArtifactID,
		Metadata:      map[string]string{"sync_status": row.SyncStatus},
	}
	if row.CreatedBy != "" {
		resp.Metadata["created_by"] = row.CreatedBy
	}
	if !row.CreatedAt.IsZero() {
		resp.UpdatedAt = timestamppb.New(row.CreatedAt)
	}
	return resp
}

func (s *Service) fromArchive(ctx context.Context, moduleName, fetchVersion string) (*registrationv1.GetModuleSchemaResponse, error) {
	content, err := s.archive.GetSchema(ctx, moduleName, fetchVersion)
	if err != nil {
		return nil, err
	}
	resp := &registrationv1.GetModuleSchemaResponse{
		ModuleName:    moduleName,
		SchemaVersion: fetchVersion,
		SchemaJson:    content,
		Metadata:      map[string]string{},
	}

	// Metadata is best-effort. The schema content already in hand is never
	// discarded over a metadata failure.
	meta, err := s.archive.GetArtifactMetadata(ctx, moduleName)
	if err != nil {
		s.log.Debug("Artifact metadata unavailable, returning schema without it",
			zap.String("module", moduleName), zap.Error(err))
		return resp, nil
	}
	if meta == nil {
		return resp, nil
	}
	resp.ArtifactId = meta.ArtifactID
	if meta.Owner != "" {
		resp.Metadata["owner"] = meta.Owner
	}
	if meta.Name != "" {
		resp.Metadata["name"] = meta.Name
	}
	if meta.Description != "" {
		resp.Metadata["description"] = meta.Description
	}
	if !meta.ModifiedOn.IsZero() {
		resp.UpdatedAt = timestamppb.New(meta.ModifiedOn)
	}
	return resp, nil
}

func (s *Service) fromModule(ctx context.Context, moduleName string) (*registrationv1.GetModuleSchemaResponse, error) {
	s.log.Info("Falling back to direct module call for schema",
		zap.String("module", moduleName))

	meta, err := s.fetcher.FetchModuleMetadata(ctx, moduleName)
	if err != nil {
		s.log.Error("Failed to get schema from module",
			zap.String("module", moduleName), zap.Error(err))
		if status.Code(err) == codes.NotFound {
			return nil, err
		}
		return nil, status.Errorf(codes.NotFound,
			"Module schema not found: %s. Module may not be running or registered.", moduleName)
	}

	resp := &registrationv1.GetModuleSchemaResponse{
		ModuleName: moduleName,
		Metadata:   map[string]string{"source": "module-direct"},
		UpdatedAt:  timestamppb.Now(),
	}
	if schemaJSON := meta.GetJsonConfigSchema(); strings.TrimSpace(schemaJSON) != "" {
		resp.SchemaJson = schemaJSON
	} else {
		resp.SchemaJson = Synthesize(moduleName)
	}
	if v := meta.GetVersion(); v != "" {
		resp.SchemaVersion = v
	} else {
		resp.SchemaVersion = "unknown"
	}
	if v := meta.GetDisplayName(); v != "" {
		resp.Metadata["display_name"] = v
	}
	if v := meta.GetDescription(); v != "" {
		resp.Metadata["description"] = v
	}
	if v := meta.GetOwner(); v != "" {
		resp.Metadata["owner"] = v
	}
	return resp, nil
}
