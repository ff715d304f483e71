package registration

import (
	modulev1 "github.com/pipestream-ai/platform-registry/api/protos/module/v1"
)

// buildModuleMetadata flattens the callback response into the map persisted
// on the module row. Descriptive fields are only written when the module set
// them, so the stored document stays minimal.
func buildModuleMetadata(metadata *modulev1.GetServiceRegistrationResponse) map[string]interface{} {
	out := make(map[string]interface{}, len(metadata.GetMetadata())+6)
	for k, v := range metadata.GetMetadata() {
		out[k] = v
	}
	if v := metadata.GetDisplayName(); v != "" {
		out["display_name"] = v
	}
	if v := metadata.GetDescription(); v != "" {
		out["description"] = v
	}
	if v := metadata.GetOwner(); v != "" {
		out["owner"] = v
	}
	if v := metadata.GetDocumentationUrl(); v != "" {
		out["documentation_url"] = v
	}
	if tags := metadata.GetTags(); len(tags) > 0 {
		out["tags"] = tags
	}
	if deps := metadata.GetDependencies(); len(deps) > 0 {
		out["dependencies"] = deps
	}
	return out
}
