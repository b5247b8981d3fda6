// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/platform"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidScanDir is returned when a configured scan directory is whitespace-only.
	ErrInvalidScanDir = errors.New("invalid scan directory")
	// ErrInvalidProjectExtension is returned when a project extension does not start with a dot.
	ErrInvalidProjectExtension = errors.New("invalid project extension")
)

type (
	// ColorScheme selects the terminal rendering theme.
	ColorScheme string

	// ScanConfig lists extra plugin directories per wire format.
	ScanConfig struct {
		VST2Dirs []string `mapstructure:"vst2_dirs"`
		VST3Dirs []string `mapstructure:"vst3_dirs"`
		AUDirs   []string `mapstructure:"au_dirs"`
		// IncludeDefaults controls whether the platform default
		// directories are scanned in addition to the lists above.
		IncludeDefaults bool `mapstructure:"include_defaults"`
	}

	// ProjectsConfig configures project file discovery.
	ProjectsConfig struct {
		Dirs       []string `mapstructure:"dirs"`
		Extensions []string `mapstructure:"extensions"`
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// Config is the root configuration.
	Config struct {
		CatalogPath string         `mapstructure:"catalog_path"`
		StoreDir    string         `mapstructure:"store_dir"`
		Scan        ScanConfig     `mapstructure:"scan"`
		Projects    ProjectsConfig `mapstructure:"projects"`
		UI          UIConfig       `mapstructure:"ui"`
	}
)

// Validate checks the constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	switch c.UI.ColorScheme {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorScheme, c.UI.ColorScheme)
	}
	for _, dirs := range [][]string{c.Scan.VST2Dirs, c.Scan.VST3Dirs, c.Scan.AUDirs} {
		for _, dir := range dirs {
			if strings.TrimSpace(dir) == "" {
				return fmt.Errorf("%w: empty path", ErrInvalidScanDir)
			}
		}
	}
	for _, ext := range c.Projects.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q must start with a dot", ErrInvalidProjectExtension, ext)
		}
	}
	return nil
}

// SearchDirs resolves the full ordered list of plugin directories to scan:
// platform defaults first (unless disabled), then the configured extras per
// format.
func (c *Config) SearchDirs() []platform.SearchDir {
	var dirs []platform.SearchDir
	if c.Scan.IncludeDefaults {
		dirs = platform.DefaultSearchDirs(currentGOOS())
	}
	for _, d := range c.Scan.VST2Dirs {
		dirs = append(dirs, platform.SearchDir{Format: inventory.FormatVST2, Dir: d})
	}
	for _, d := range c.Scan.VST3Dirs {
		dirs = append(dirs, platform.SearchDir{Format: inventory.FormatVST3, Dir: d})
	}
	for _, d := range c.Scan.AUDirs {
		dirs = append(dirs, platform.SearchDir{Format: inventory.FormatAU, Dir: d})
	}
	return dirs
}
