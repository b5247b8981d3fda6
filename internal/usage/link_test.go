// SPDX-License-Identifier: MPL-2.0

package usage

import (
	"testing"
	"time"

	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/project"
)

func testInventory() []*inventory.ConsolidatedPlugin {
	return []*inventory.ConsolidatedPlugin{
		{DisplayName: "Serum", Formats: []inventory.FormatInstallation{{Format: inventory.FormatVST3, Path: "/a"}}},
		{DisplayName: "Pro-Q 3", Formats: []inventory.FormatInstallation{{Format: inventory.FormatVST3, Path: "/b"}}},
	}
}

func testProjects() []project.ExtractedProject {
	return []project.ExtractedProject{
		{
			Name:           "My Song",
			FilePath:       "/music/my song.als",
			LastModifiedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			PluginNames:    []string{"serum", "Unknown Plugin"},
		},
		{
			Name:        "B-Side",
			FilePath:    "/music/b-side.als",
			PluginNames: []string{"SERUM", "Pro-Q 3"},
		},
	}
}

func TestLink(t *testing.T) {
	t.Parallel()

	linked := Link(testProjects(), testInventory())

	byName := map[string]*inventory.ConsolidatedPlugin{}
	for _, p := range linked {
		byName[p.DisplayName] = p
	}

	serum := byName["Serum"]
	if len(serum.ProjectUsage) != 2 {
		t.Fatalf("Serum usage = %d entries, want 2 (case-insensitive join)", len(serum.ProjectUsage))
	}
	if serum.ProjectUsage[0].ProjectName != "My Song" || serum.ProjectUsage[0].ProjectFile != "/music/my song.als" {
		t.Errorf("usage entry = %+v, want project name and file carried over", serum.ProjectUsage[0])
	}

	proq := byName["Pro-Q 3"]
	if len(proq.ProjectUsage) != 1 || proq.ProjectUsage[0].ProjectName != "B-Side" {
		t.Errorf("Pro-Q 3 usage = %+v, want one entry from B-Side", proq.ProjectUsage)
	}
}

func TestLink_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	inv := testInventory()
	Link(testProjects(), inv)

	for _, p := range inv {
		if len(p.ProjectUsage) != 0 {
			t.Errorf("input inventory mutated: %q has %d usage entries", p.DisplayName, len(p.ProjectUsage))
		}
	}
}

func TestLink_RepeatedLinksDoNotAccumulate(t *testing.T) {
	t.Parallel()

	projects := testProjects()
	inv := testInventory()

	once := Link(projects, inv)
	twice := Link(projects, once)

	for i := range once {
		if len(once[i].ProjectUsage) != len(twice[i].ProjectUsage) {
			t.Errorf("%q: usage grew from %d to %d across link passes",
				once[i].DisplayName, len(once[i].ProjectUsage), len(twice[i].ProjectUsage))
		}
	}
}

func TestLink_UnmatchedNamesDropped(t *testing.T) {
	t.Parallel()

	linked := Link([]project.ExtractedProject{
		{Name: "Solo", PluginNames: []string{"Not Installed"}},
	}, testInventory())

	for _, p := range linked {
		if len(p.ProjectUsage) != 0 {
			t.Errorf("%q gained usage from an unmatched name", p.DisplayName)
		}
	}
}

func TestLink_EmptyInputs(t *testing.T) {
	t.Parallel()

	if got := Link(nil, nil); len(got) != 0 {
		t.Errorf("Link(nil, nil) = %d entities, want 0", len(got))
	}
	linked := Link(nil, testInventory())
	if len(linked) != 2 {
		t.Fatalf("Link(nil, inv) = %d entities, want inventory preserved", len(linked))
	}
}
