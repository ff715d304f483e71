package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	modulev1 "github.com/pipestream-ai/platform-registry/api/protos/module/v1"
)

func TestBuildModuleMetadata(t *testing.T) {
	meta := buildModuleMetadata(&modulev1.GetServiceRegistrationResponse{
		ModuleName:       "pdf-extract",
		DisplayName:      "PDF Extractor",
		Description:      "Extracts text from PDF documents",
		Owner:            "platform-team",
		DocumentationUrl: "https://docs.example.com/pdf-extract",
		Tags:             []string{"document", "extraction"},
		Dependencies:     []string{"tika"},
		Metadata: map[string]string{
			"input-format":  "application/pdf",
			"output-format": "text/plain",
		},
	})

	assert.Equal(t, "application/pdf", meta["input-format"])
	assert.Equal(t, "text/plain", meta["output-format"])
	assert.Equal(t, "PDF Extractor", meta["display_name"])
	assert.Equal(t, "Extracts text from PDF documents", meta["description"])
	assert.Equal(t, "platform-team", meta["owner"])
	assert.Equal(t, "https://docs.example.com/pdf-extract", meta["documentation_url"])
	assert.Equal(t, []string{"document", "extraction"}, meta["tags"])
	assert.Equal(t, []string{"tika"}, meta["dependencies"])
}

func TestBuildModuleMetadataOmitsUnsetFields(t *testing.T) {
	meta := buildModuleMetadata(&modulev1.GetServiceRegistrationResponse{
		ModuleName: "pdf-extract",
	})
	assert.Empty(t, meta)
}
