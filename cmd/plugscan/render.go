// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"plugscan-cli/internal/issue"
	"plugscan-cli/internal/scan"
)

// formatErrorForDisplay renders an error for stderr, using the richer
// ActionableError formatting when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// renderDiagnostics writes per-source scan diagnostics to stderr. Warnings
// only show in verbose mode; error-level diagnostics always show.
func renderDiagnostics(diagnostics []scan.Diagnostic) {
	for _, d := range diagnostics {
		switch d.Severity {
		case scan.SeverityError:
			fmt.Fprintf(os.Stderr, "%s %s: %s\n", ErrorStyle.Render("✗"), d.Path, d.Message)
		default:
			if verbose {
				fmt.Fprintf(os.Stderr, "%s %s: %s\n", WarningStyle.Render("!"), d.Path, d.Message)
			}
		}
	}
}

// renderIssue prints a markdown help card for a well-known failure
// situation.
func renderIssue(id issue.Id) {
	if rendered, err := issue.Get(id).Render("dark"); err == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}
