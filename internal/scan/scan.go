// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/platform"
)

// formatByExtension maps plugin binary extensions to their wire format.
// Extensions decide the format, not the directory the artifact sits in, so a
// stray .vst3 inside a VST2 directory is still recorded correctly.
var formatByExtension = map[string]inventory.WireFormat{
	".dll":       inventory.FormatVST2,
	".vst":       inventory.FormatVST2,
	".vst3":      inventory.FormatVST3,
	".component": inventory.FormatAU,
}

// bundleExtensions are the extensions that ship as directory-style packages
// on macOS. A matching directory is recorded as one bundle installation and
// never descended into.
var bundleExtensions = map[string]bool{
	".vst":       true,
	".vst3":      true,
	".component": true,
}

// Scanner collects raw plugin installations from a set of search
// directories.
type Scanner struct {
	dirs []platform.SearchDir
}

// New creates a Scanner over the given search directories. Callers usually
// combine platform.DefaultSearchDirs with directories from config.
func New(dirs []platform.SearchDir) *Scanner {
	return &Scanner{dirs: dirs}
}

// Collect walks every search directory and returns the raw installations
// found, plus diagnostics for directories that could not be read. A missing
// or unreadable directory never fails the scan. Paths seen through more than
// one search directory are recorded once.
func (s *Scanner) Collect() ([]inventory.RawInstallation, []Diagnostic) {
	var (
		raws        []inventory.RawInstallation
		diagnostics []Diagnostic
		seen        = make(map[string]bool)
	)

	for _, source := range s.dirs {
		info, err := os.Stat(source.Dir)
		switch {
		case os.IsNotExist(err):
			diagnostics = append(diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     "scan_dir_missing",
				Message:  "plugin directory does not exist",
				Path:     source.Dir,
				Cause:    err,
			})
			continue
		case err != nil:
			diagnostics = append(diagnostics, Diagnostic{
				Severity: SeverityError,
				Code:     "scan_dir_unreadable",
				Message:  fmt.Sprintf("cannot stat plugin directory: %v", err),
				Path:     source.Dir,
				Cause:    err,
			})
			continue
		case !info.IsDir():
			diagnostics = append(diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     "scan_dir_not_dir",
				Message:  "configured plugin path is not a directory",
				Path:     source.Dir,
			})
			continue
		}

		dirRaws, dirDiags := s.walkDir(source, seen)
		raws = append(raws, dirRaws...)
		diagnostics = append(diagnostics, dirDiags...)
	}

	return raws, diagnostics
}

// walkDir walks one search directory, recording matched artifacts and
// converting walk errors into diagnostics so the remaining tree is still
// visited.
func (s *Scanner) walkDir(source platform.SearchDir, seen map[string]bool) ([]inventory.RawInstallation, []Diagnostic) {
	var (
		raws        []inventory.RawInstallation
		diagnostics []Diagnostic
	)

	walkErr := filepath.WalkDir(source.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     "scan_entry_unreadable",
				Message:  fmt.Sprintf("skipped unreadable entry: %v", err),
				Path:     path,
				Cause:    err,
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == source.Dir {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		format, matched := formatByExtension[ext]

		if d.IsDir() {
			if !matched || !bundleExtensions[ext] {
				return nil // keep descending into vendor folders
			}
			if raw, ok := rawFor(path, source.Dir, d, format, true); ok && !seen[path] {
				seen[path] = true
				raws = append(raws, raw)
			}
			return filepath.SkipDir
		}

		if !matched {
			return nil
		}
		if raw, ok := rawFor(path, source.Dir, d, format, false); ok && !seen[path] {
			seen[path] = true
			raws = append(raws, raw)
		}
		return nil
	})
	if walkErr != nil {
		diagnostics = append(diagnostics, Diagnostic{
			Severity: SeverityError,
			Code:     "scan_dir_walk_failed",
			Message:  fmt.Sprintf("walk aborted: %v", walkErr),
			Path:     source.Dir,
			Cause:    walkErr,
		})
	}
	return raws, diagnostics
}

// rawFor builds the raw installation record for one matched artifact.
func rawFor(path, rootDir string, d fs.DirEntry, format inventory.WireFormat, isBundle bool) (inventory.RawInstallation, bool) {
	info, err := d.Info()
	if err != nil {
		return inventory.RawInstallation{}, false
	}

	base := d.Name()
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	raw := inventory.RawInstallation{
		Path:           path,
		Format:         format,
		DisplayNameRaw: stem,
		VendorGuess:    vendorGuess(path, rootDir),
		ModifiedAt:     info.ModTime(),
		IsBundle:       isBundle,
	}
	if !isBundle {
		raw.SizeBytes = info.Size()
	}
	return raw, true
}

// vendorGuess infers the vendor from the artifact's parent directory: plugin
// installers conventionally nest their products one vendor folder below the
// root plugin directory. Artifacts sitting directly in the root get no
// guess.
func vendorGuess(path, rootDir string) string {
	parent := filepath.Dir(path)
	if filepath.Clean(parent) == filepath.Clean(rootDir) {
		return ""
	}
	return filepath.Base(parent)
}
