package netutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHostServiceSpecific(t *testing.T) {
	t.Setenv("PDF_EXTRACT_HOST", "10.0.0.5")
	t.Setenv("SERVICE_HOST", "10.0.0.6")
	t.Setenv("HOSTNAME", "node-1")

	assert.Equal(t, "10.0.0.5", ResolveHost("pdf-extract"))
}

func TestResolveHostFallsBackToServiceHost(t *testing.T) {
	t.Setenv("PDF_EXTRACT_HOST", "")
	t.Setenv("SERVICE_HOST", "10.0.0.6")
	t.Setenv("HOSTNAME", "node-1")

	assert.Equal(t, "10.0.0.6", ResolveHost("pdf-extract"))
}

func TestResolveHostFallsBackToHostname(t *testing.T) {
	t.Setenv("PDF_EXTRACT_HOST", "")
	t.Setenv("SERVICE_HOST", "")
	t.Setenv("HOSTNAME", "node-1")

	assert.Equal(t, "node-1", ResolveHost("pdf-extract"))
}

func TestResolveHostDefaultsToLocalhost(t *testing.T) {
	t.Setenv("PDF_EXTRACT_HOST", "")
	t.Setenv("SERVICE_HOST", "")
	t.Setenv("HOSTNAME", "")

	assert.Equal(t, "localhost", ResolveHost("pdf-extract"))
}

func TestResolveHostEmptyName(t *testing.T) {
	t.Setenv("SERVICE_HOST", "")
	t.Setenv("HOSTNAME", "")

	assert.Equal(t, "localhost", ResolveHost(""))
}
