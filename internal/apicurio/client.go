// Package apicurio talks to an Apicurio-compatible schema registry over its
// v3 REST API. Config schemas are stored one artifact per (name, version)
// pair under a single group; the artifact id embeds the version so repeated
// registrations of the same pair converge on the same artifact.
package apicurio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	cb "github.com/sony/gobreaker"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SchemaRef identifies a stored artifact version in the registry.
type SchemaRef struct {
	ArtifactID string
	GlobalID   int64
	Version    string
}

// ArtifactMetadata is the registry's editable metadata for an artifact.
type ArtifactMetadata struct {
	ArtifactID  string
	Name        string
	Description string
	Owner       string
	ModifiedOn  time.Time
}

// Client is a thin REST client for the registry. All operations except
// IsHealthy run through a circuit breaker so a dead registry fails fast
// instead of stalling registration pipelines.
type Client struct {
	baseURL string
	group   string
	hc      *http.Client
	breaker *cb.CircuitBreaker
	log     *zap.Logger
}

// NewClient builds a client for the registry at baseURL, storing artifacts
// under the given group.
func NewClient(baseURL, group string, log *zap.Logger) *Client {
	settings := cb.Settings{
		Name:        "apicurio-registry",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts cb.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from cb.State, to cb.State) {
			log.Warn("Circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		group:   group,
		hc:      &http.Client{Timeout: 10 * time.Second},
		breaker: cb.NewCircuitBreaker(settings),
		log:     log,
	}
}

// VersionedArtifactID derives the artifact id for a schema base and version.
// A blank version maps to "v1"; dots in the version become underscores, so
// "pdf-extract" at "2.1.0" stores as "pdf-extract-config-v2_1_0".
func VersionedArtifactID(base, version string) string {
	safe := "v1"
	if version != "" {
		safe = "v" + strings.ReplaceAll(version, ".", "_")
	}
	return base + "-config-" + safe
}

// CreateOrUpdate registers a config schema for a service, deriving the
// artifact id from the service name and version.
func (c *Client) CreateOrUpdate(ctx context.Context, serviceName, version, jsonSchema string) (*SchemaRef, error) {
	artifactID := VersionedArtifactID(serviceName, version)
	return c.createArtifact(ctx, serviceName, artifactID, version, jsonSchema)
}

// CreateOrUpdateWithArtifactBase registers a schema under an explicit artifact
// base instead of the service name. The HTTP-schema path uses "{name}-http".
func (c *Client) CreateOrUpdateWithArtifactBase(ctx context.Context, artifactBase, version, jsonSchema string) (*SchemaRef, error) {
	artifactID := VersionedArtifactID(artifactBase, version)
	return c.createArtifact(ctx, "", artifactID, version, jsonSchema)
}

// CreateOrUpdateWithArtifactID registers a schema under a caller-owned
// artifact id, bypassing derivation entirely.
func (c *Client) CreateOrUpdateWithArtifactID(ctx context.Context, artifactID, version, jsonSchema string) (*SchemaRef, error) {
	return c.createArtifact(ctx, "", artifactID, version, jsonSchema)
}

type createArtifactRequest struct {
	ArtifactID   string                `json:"artifactId"`
	ArtifactType string                `json:"artifactType"`
	FirstVersion *createVersionRequest `json:"firstVersion,omitempty"`
}

type createVersionRequest struct {
	Version string        `json:"version,omitempty"`
	Content createContent `json:"content"`
}

type createContent struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

type createArtifactResponse struct {
	Artifact struct {
		ArtifactID string `json:"artifactId"`
	} `json:"artifact"`
	Version struct {
		GlobalID int64  `json:"globalId"`
		Version  string `json:"version"`
	} `json:"version"`
}

func (c *Client) createArtifact(ctx context.Context, serviceName, artifactID, version, jsonSchema string) (*SchemaRef, error) {
	body := createArtifactRequest{
		ArtifactID:   artifactID,
		ArtifactType: "JSON",
		FirstVersion: &createVersionRequest{
			Version: version,
			Content: createContent{Content: jsonSchema, ContentType: "application/json"},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &ArchiveError{ServiceName: serviceName, ArtifactID: artifactID, Message: "failed to encode artifact request", Err: err}
	}

	endpoint := fmt.Sprintf("%s/apis/registry/v3/groups/%s/artifacts?ifExists=FIND_OR_CREATE_VERSION",
		c.baseURL, url.PathEscape(c.group))

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("registry returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		var out createArtifactResponse
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode create response: %w", err)
		}
		return &out, nil
	})
	if err != nil {
		return nil, &ArchiveError{ServiceName: serviceName, ArtifactID: artifactID, Message: "failed to register schema", Err: err}
	}

	out := result.(*createArtifactResponse)
	ref := &SchemaRef{ArtifactID: out.Artifact.ArtifactID, GlobalID: out.Version.GlobalID, Version: out.Version.Version}
	if ref.ArtifactID == "" {
		ref.ArtifactID = artifactID
	}
	c.log.Info("Schema stored in registry",
		zap.String("artifact_id", ref.ArtifactID),
		zap.Int64("global_id", ref.GlobalID),
		zap.String("version", ref.Version))
	return ref, nil
}

// GetSchema fetches schema content by service name, resolving the artifact id
// through the same derivation used on write. A blank version means "latest".
func (c *Client) GetSchema(ctx context.Context, serviceName, version string) (string, error) {
	if version == "" {
		version = "latest"
	}
	artifactID := VersionedArtifactID(serviceName, version)
	content, err := c.getContent(ctx, artifactID, version)
	if err != nil {
		return "", &ArchiveError{ServiceName: serviceName, ArtifactID: artifactID, Message: "failed to fetch schema", Err: err}
	}
	return content, nil
}

// GetSchemaByArtifactID fetches schema content for a caller-owned artifact id.
func (c *Client) GetSchemaByArtifactID(ctx context.Context, artifactID, version string) (string, error) {
	content, err := c.getContent(ctx, artifactID, version)
	if err != nil {
		return "", &ArchiveError{ArtifactID: artifactID, Message: "failed to fetch schema", Err: err}
	}
	return content, nil
}

func (c *Client) getContent(ctx context.Context, artifactID, version string) (string, error) {
	expr := version
	if expr == "" || expr == "latest" {
		expr = "branch=latest"
	}
	endpoint := fmt.Sprintf("%s/apis/registry/v3/groups/%s/artifacts/%s/versions/%s/content",
		c.baseURL, url.PathEscape(c.group), url.PathEscape(artifactID), url.PathEscape(expr))

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("registry returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return string(data), nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// GetArtifactMetadata fetches registry metadata for a service's default
// artifact. Returns (nil, nil) when the artifact does not exist; callers
// treat any error here as non-fatal.
func (c *Client) GetArtifactMetadata(ctx context.Context, serviceName string) (*ArtifactMetadata, error) {
	artifactID := VersionedArtifactID(serviceName, "")
	endpoint := fmt.Sprintf("%s/apis/registry/v3/groups/%s/artifacts/%s",
		c.baseURL, url.PathEscape(c.group), url.PathEscape(artifactID))

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusNotFound {
			return (*ArtifactMetadata)(nil), nil
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("registry returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		var raw struct {
			ArtifactID  string `json:"artifactId"`
			Name        string `json:"name"`
			Description string `json:"description"`
			Owner       string `json:"owner"`
			ModifiedOn  string `json:"modifiedOn"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode metadata response: %w", err)
		}
		meta := &ArtifactMetadata{
			ArtifactID:  raw.ArtifactID,
			Name:        raw.Name,
			Description: raw.Description,
			Owner:       raw.Owner,
		}
		if raw.ModifiedOn != "" {
			if ts, err := time.Parse(time.RFC3339, raw.ModifiedOn); err == nil {
				meta.ModifiedOn = ts
			}
		}
		return meta, nil
	})
	if err != nil {
		return nil, &ArchiveError{ServiceName: serviceName, ArtifactID: artifactID, Message: "failed to fetch artifact metadata", Err: err}
	}
	return result.(*ArtifactMetadata), nil
}

// IsHealthy probes the registry's system info endpoint. The probe skips the
// circuit breaker; health reports the registry, not breaker state.
func (c *Client) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/apis/registry/v3/system/info", nil)
	if err != nil {
		return false
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}
