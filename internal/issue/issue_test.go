// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	ids := []Id{
		NoPluginsFoundId,
		CatalogNotFoundId,
		CatalogParseErrorId,
		ProjectParseErrorId,
		StoreCorruptId,
		ConfigLoadFailedId,
	}
	for _, id := range ids {
		issue := Get(id)
		if issue == nil {
			t.Fatalf("Get(%d) = nil", id)
		}
		if issue.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, issue.Id())
		}
		if strings.TrimSpace(string(issue.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no markdown card", id)
		}
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != 6 {
		t.Errorf("Values() = %d issues, want 6", len(values))
	}
}

func TestRender(t *testing.T) {
	oldRender := render
	render = func(in, stylePath string) (string, error) {
		return "rendered:" + stylePath + ":" + in, nil
	}
	defer func() { render = oldRender }()

	out, err := Get(StoreCorruptId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(out, "rendered:dark:") {
		t.Errorf("Render() did not pass the style path through: %q", out[:30])
	}
	if !strings.Contains(out, "checksum") {
		t.Errorf("Render() output missing the card body:\n%s", out)
	}
}
