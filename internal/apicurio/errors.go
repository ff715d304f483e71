package apicurio

import (
	"errors"
	"strings"
)

// ArchiveError wraps every failure raised while talking to the schema
// registry so callers can tell registry trouble apart from unrelated errors.
// ServiceName and ArtifactID carry whatever context the failing operation had.
type ArchiveError struct {
	ServiceName string
	ArtifactID  string
	Message     string
	Err         error
}

func (e *ArchiveError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.ServiceName != "" {
		b.WriteString(" service=")
		b.WriteString(e.ServiceName)
	}
	if e.ArtifactID != "" {
		b.WriteString(" artifact=")
		b.WriteString(e.ArtifactID)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// IsArchiveError reports whether err or anything it wraps is an ArchiveError.
func IsArchiveError(err error) bool {
	var ae *ArchiveError
	return errors.As(err, &ae)
}
