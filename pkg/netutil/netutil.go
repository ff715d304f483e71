// Package netutil resolves the host a registering process should advertise.
package netutil

import (
	"os"
	"strings"
)

// ResolveHost returns the host to advertise for the named service. Lookup
// order: {NAME}_HOST with the service name upper-cased and dashes replaced
// by underscores, then SERVICE_HOST, then HOSTNAME, then "localhost".
func ResolveHost(serviceName string) string {
	if serviceName != "" {
		key := strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_")) + "_HOST"
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	if v := os.Getenv("SERVICE_HOST"); v != "" {
		return v
	}
	if v := os.Getenv("HOSTNAME"); v != "" {
		return v
	}
	return "localhost"
}
