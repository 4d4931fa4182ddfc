package athena

import (
	"fmt"
	"regexp"
)

// maxIdentifierLen matches the Glue catalog limit on table names.
const maxIdentifierLen = 255

// identifierPattern allow-lists table names before they are interpolated
// into statement text. Athena has no server-side parameter binding for DDL
// and metadata statements, so interpolation is validated rather than raw.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateTableName rejects anything that is not a plain identifier.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name is required")
	}
	if len(name) > maxIdentifierLen {
		return fmt.Errorf("table name exceeds %d characters", maxIdentifierLen)
	}
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q: only letters, digits, and underscores are allowed", name)
	}
	return nil
}

// validateSampleLimit bounds the caller-supplied row limit.
func validateSampleLimit(limit, maxLimit int) error {
	if limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	if limit > maxLimit {
		return fmt.Errorf("limit exceeds maximum of %d", maxLimit)
	}
	return nil
}
