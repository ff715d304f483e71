// Package ids holds the identity derivation rules shared by the
// registration and discovery paths. The same inputs must always produce
// the same ids so that retries converge on one record.
package ids

import (
	"fmt"
	"strings"
)

// ServiceID returns the instance id for an advertised (name, host, port)
// triple.
func ServiceID(name, host string, port int) string {
	return fmt.Sprintf("%s-%s-%d", name, host, port)
}

// SchemaID returns the config-schema row id for a module name and version.
// Dots in the version are replaced with underscores so the id stays a
// single token.
func SchemaID(serviceName, version string) string {
	return serviceName + "-" + strings.ReplaceAll(version, ".", "_")
}

// ServiceNameFromID recovers the service name from an instance id by
// peeling the trailing host and port tokens. Hostnames containing dashes
// defeat this; callers should prefer the record's own name field when one
// is available.
func ServiceNameFromID(serviceID string) (string, bool) {
	i := strings.LastIndex(serviceID, "-")
	if i <= 0 {
		return "", false
	}
	j := strings.LastIndex(serviceID[:i], "-")
	if j <= 0 {
		return "", false
	}
	return serviceID[:j], true
}
