// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"testing"

	"plugscan-cli/internal/inventory"
)

func TestSearchDirsFor_Windows(t *testing.T) {
	t.Parallel()

	dirs := searchDirsFor(Windows, `C:\Users\me`, `C:\Program Files`)
	if len(dirs) != 3 {
		t.Fatalf("searchDirsFor(windows) = %d dirs, want 3", len(dirs))
	}
	want := filepath.Join(`C:\Program Files`, "Common Files", "VST3")
	found := false
	for _, d := range dirs {
		if d.Dir == want {
			found = true
			if d.Format != inventory.FormatVST3 {
				t.Errorf("VST3 dir tagged %s, want VST3", d.Format)
			}
		}
	}
	if !found {
		t.Errorf("searchDirsFor(windows) = %v, missing %s", dirs, want)
	}
}

func TestSearchDirsFor_WindowsFallbackProgramFiles(t *testing.T) {
	t.Parallel()

	dirs := searchDirsFor(Windows, `C:\Users\me`, "")
	for _, d := range dirs {
		if d.Dir == "" {
			t.Fatalf("searchDirsFor(windows) produced an empty dir: %v", dirs)
		}
	}
}

func TestSearchDirsFor_Darwin(t *testing.T) {
	t.Parallel()

	dirs := searchDirsFor(Darwin, "/Users/me", "")
	if len(dirs) != 6 {
		t.Fatalf("searchDirsFor(darwin) = %d dirs, want 3 system + 3 user", len(dirs))
	}

	formats := map[inventory.WireFormat]int{}
	for _, d := range dirs {
		formats[d.Format]++
	}
	if formats[inventory.FormatAU] != 2 {
		t.Errorf("AU dirs = %d, want system and user Components", formats[inventory.FormatAU])
	}

	// Without a home dir only the system locations remain.
	if got := searchDirsFor(Darwin, "", ""); len(got) != 3 {
		t.Errorf("searchDirsFor(darwin, no home) = %d dirs, want 3", len(got))
	}
}

func TestSearchDirsFor_Linux(t *testing.T) {
	t.Parallel()

	dirs := searchDirsFor(Linux, "/home/me", "")
	if len(dirs) != 6 {
		t.Fatalf("searchDirsFor(linux) = %d dirs, want 6", len(dirs))
	}
	for _, d := range dirs {
		if d.Format == inventory.FormatAU {
			t.Errorf("linux table contains an AU dir: %v", d)
		}
	}
}

func TestDefaultSearchDirs(t *testing.T) {
	t.Parallel()

	// Whatever the host OS, the table must be non-empty and fully formed.
	for _, d := range DefaultSearchDirs("linux") {
		if d.Dir == "" || d.Format == "" {
			t.Errorf("DefaultSearchDirs produced an incomplete entry: %+v", d)
		}
	}
}
