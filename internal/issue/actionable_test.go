// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := &ActionableError{
		Operation: "load catalog",
		Resource:  "/data/catalog.yaml",
		Cause:     cause,
	}

	want := "failed to load catalog: /data/catalog.yaml: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should see the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("disk full")
	err := &ActionableError{
		Operation:   "save inventory snapshot",
		Suggestions: []string{"Free up disk space", "Change store_dir in the config"},
		Cause:       fmt.Errorf("write failed: %w", inner),
	}

	concise := err.Format(false)
	if !strings.Contains(concise, "• Free up disk space") {
		t.Errorf("Format(false) missing suggestions:\n%s", concise)
	}
	if strings.Contains(concise, "Error chain") {
		t.Errorf("Format(false) should not include the error chain:\n%s", concise)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "disk full") {
		t.Errorf("Format(true) missing the unwrapped chain:\n%s", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("extract project").
		WithResource("/music/song.als").
		WithSuggestion("Check the file is a real project file").
		WithSuggestions("Re-run with --verbose", "Skip the file").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil despite an operation being set")
	}
	if err.Operation != "extract project" || err.Resource != "/music/song.als" {
		t.Errorf("built error = %+v", err)
	}
	if len(err.Suggestions) != 3 {
		t.Errorf("Suggestions = %v, want 3 accumulated", err.Suggestions)
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("built error should wrap the cause")
	}
}

func TestErrorContext_RequiresOperation(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without an operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without an operation should return nil")
	}
}

func TestWrapHelpers(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "noop") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	if WrapWithContext(nil, "noop", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}

	cause := errors.New("boom")
	err := WrapWithContext(cause, "save snapshot", "/store")
	if err.Operation != "save snapshot" || err.Resource != "/store" || !errors.Is(err, cause) {
		t.Errorf("WrapWithContext() = %+v", err)
	}
}
