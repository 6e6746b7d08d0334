package pagemark

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered during extraction.
// Warnings never stop processing; the affected page or annotation is
// skipped and extraction continues.
type Warning struct {
	// Page is the 1-based page number the warning refers to, or 0 for
	// document-level warnings.
	Page int

	// Message describes what went wrong.
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single semicolon-separated string
// for logging. Returns "" for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
