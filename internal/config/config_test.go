// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Scan.IncludeDefaults {
		t.Error("expected platform default directories to be scanned by default")
	}
	if len(cfg.Projects.Extensions) != 1 || cfg.Projects.Extensions[0] != ".als" {
		t.Errorf("expected default project extensions [.als], got %v", cfg.Projects.Extensions)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if cfg.CatalogPath != "" {
		t.Errorf("expected no default catalog path, got %q", cfg.CatalogPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad color scheme",
			mutate:  func(c *Config) { c.UI.ColorScheme = "neon" },
			wantErr: ErrInvalidColorScheme,
		},
		{
			name:    "whitespace scan dir",
			mutate:  func(c *Config) { c.Scan.VST3Dirs = []string{"  "} },
			wantErr: ErrInvalidScanDir,
		},
		{
			name:    "extension without dot",
			mutate:  func(c *Config) { c.Projects.Extensions = []string{"als"} },
			wantErr: ErrInvalidProjectExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSearchDirs(t *testing.T) {
	originalGOOS := currentGOOS
	currentGOOS = func() string { return "linux" }
	defer func() { currentGOOS = originalGOOS }()

	cfg := DefaultConfig()
	cfg.Scan.VST3Dirs = []string{"/opt/plugins/vst3"}

	dirs := cfg.SearchDirs()
	if len(dirs) == 0 {
		t.Fatal("SearchDirs() = empty, want platform defaults plus extras")
	}
	last := dirs[len(dirs)-1]
	if last.Dir != "/opt/plugins/vst3" || last.Format != inventory.FormatVST3 {
		t.Errorf("extras not appended: last = %+v", last)
	}

	cfg.Scan.IncludeDefaults = false
	dirs = cfg.SearchDirs()
	if len(dirs) != 1 {
		t.Errorf("SearchDirs() with include_defaults=false = %d dirs, want only the extra", len(dirs))
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	defer func() {
		SetConfigDirOverride("")
		Reset()
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without a config file: %v", err)
	}
	if !cfg.Scan.IncludeDefaults {
		t.Error("Load() without a config file should return defaults")
	}
	if LoadedFrom() != "" {
		t.Errorf("LoadedFrom() = %q, want empty when running on defaults", LoadedFrom())
	}
	if cfg.StoreDir == "" {
		t.Error("Load() left StoreDir empty; it should default under the config dir")
	}
}

func TestLoad_CUEFile(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte(`
catalog_path: "/data/catalog.yaml"
scan: {
	vst3_dirs: ["/opt/plugins/vst3"]
	include_defaults: false
}
ui: {
	color_scheme: "dark"
	verbose:      true
}
`))

	SetConfigDirOverride(dir)
	defer func() {
		SetConfigDirOverride("")
		Reset()
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CatalogPath != "/data/catalog.yaml" {
		t.Errorf("CatalogPath = %q, want value from config file", cfg.CatalogPath)
	}
	if cfg.Scan.IncludeDefaults {
		t.Error("include_defaults not taken from config file")
	}
	if len(cfg.Scan.VST3Dirs) != 1 || cfg.Scan.VST3Dirs[0] != "/opt/plugins/vst3" {
		t.Errorf("VST3Dirs = %v, want value from config file", cfg.Scan.VST3Dirs)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("UI = %+v, want dark/verbose from config file", cfg.UI)
	}
	if cfg.Projects.Extensions[0] != ".als" {
		t.Errorf("unset fields should keep defaults, got extensions %v", cfg.Projects.Extensions)
	}
	if LoadedFrom() != filepath.Join(dir, "config.cue") {
		t.Errorf("LoadedFrom() = %q, want the config file path", LoadedFrom())
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte(`
ui: {
	color_scheme: "neon"
}
`))

	SetConfigDirOverride(dir)
	defer func() {
		SetConfigDirOverride("")
		Reset()
	}()

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted a value the schema forbids")
	}
}

func TestLoad_InvalidCUESyntax(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), []byte(`scan: { unbalanced`))

	SetConfigDirOverride(dir)
	defer func() {
		SetConfigDirOverride("")
		Reset()
	}()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted invalid CUE syntax")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("error should name the file, got: %v", err)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))
	defer func() {
		SetConfigFilePathOverride("")
		Reset()
	}()

	if _, err := Load(); err == nil {
		t.Fatal("Load() with a missing --config path should fail instead of silently using defaults")
	}
}
