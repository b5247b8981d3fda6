// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"path/filepath"

	"plugscan-cli/internal/inventory"
)

// SearchDir associates one plugin directory with the wire format
// conventionally installed there.
type SearchDir struct {
	Format inventory.WireFormat
	Dir    string
}

// DefaultSearchDirs returns the conventional plugin installation directories
// for the given GOOS. Directories that do not exist are included; the
// scanner reports them as per-source warnings rather than erroring.
func DefaultSearchDirs(goos string) []SearchDir {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return searchDirsFor(goos, home, os.Getenv("ProgramFiles"))
}

// searchDirsFor is the pure table behind DefaultSearchDirs, split out so
// tests can pin home and ProgramFiles.
func searchDirsFor(goos, home, programFiles string) []SearchDir {
	switch goos {
	case Windows:
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		return []SearchDir{
			{inventory.FormatVST2, filepath.Join(programFiles, "Steinberg", "VstPlugins")},
			{inventory.FormatVST2, filepath.Join(programFiles, "VstPlugins")},
			{inventory.FormatVST3, filepath.Join(programFiles, "Common Files", "VST3")},
		}
	case Darwin:
		dirs := []SearchDir{
			{inventory.FormatVST2, "/Library/Audio/Plug-Ins/VST"},
			{inventory.FormatVST3, "/Library/Audio/Plug-Ins/VST3"},
			{inventory.FormatAU, "/Library/Audio/Plug-Ins/Components"},
		}
		if home != "" {
			dirs = append(dirs,
				SearchDir{inventory.FormatVST2, filepath.Join(home, "Library", "Audio", "Plug-Ins", "VST")},
				SearchDir{inventory.FormatVST3, filepath.Join(home, "Library", "Audio", "Plug-Ins", "VST3")},
				SearchDir{inventory.FormatAU, filepath.Join(home, "Library", "Audio", "Plug-Ins", "Components")},
			)
		}
		return dirs
	default: // Linux and others
		dirs := []SearchDir{
			{inventory.FormatVST2, "/usr/lib/vst"},
			{inventory.FormatVST2, "/usr/local/lib/vst"},
			{inventory.FormatVST3, "/usr/lib/vst3"},
			{inventory.FormatVST3, "/usr/local/lib/vst3"},
		}
		if home != "" {
			dirs = append(dirs,
				SearchDir{inventory.FormatVST2, filepath.Join(home, ".vst")},
				SearchDir{inventory.FormatVST3, filepath.Join(home, ".vst3")},
			)
		}
		return dirs
	}
}
