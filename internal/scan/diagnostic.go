// SPDX-License-Identifier: MPL-2.0

package scan

const (
	// SeverityWarning indicates a recoverable scan warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal scan error diagnostic.
	SeverityError Severity = "error"
)

type (
	// Severity represents scan diagnostic severity.
	Severity string

	// Diagnostic is a structured, non-fatal scan finding that is returned
	// to callers (rather than written to stderr) for consistent rendering
	// policy by the CLI layer.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "scan_dir_missing").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the directory or file associated with this diagnostic.
		Path string
		// Cause is the underlying error (optional, for programmatic
		// inspection).
		Cause error
	}
)
