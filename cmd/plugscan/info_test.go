// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"plugscan-cli/internal/config"
	"plugscan-cli/internal/inventory"
)

func TestFindPlugin(t *testing.T) {
	t.Parallel()

	inv := []*inventory.ConsolidatedPlugin{
		{DisplayName: "Serum X64"},
		{DisplayName: "Pro-Q 3"},
	}

	tests := []struct {
		query string
		want  string
	}{
		{"Pro-Q 3", "Pro-Q 3"},
		{"pro-q 3", "Pro-Q 3"},
		{"Serum X64", "Serum X64"},
		// Normalized fallback: variants of the same product resolve too.
		{"serum", "Serum X64"},
		{"Serum (VST3)", "Serum X64"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			got := findPlugin(inv, tt.query)
			if got == nil {
				t.Fatalf("findPlugin(%q) = nil, want %q", tt.query, tt.want)
			}
			if got.DisplayName != tt.want {
				t.Errorf("findPlugin(%q) = %q, want %q", tt.query, got.DisplayName, tt.want)
			}
		})
	}

	if findPlugin(inv, "Unknown") != nil {
		t.Error("findPlugin() matched a name not in the inventory")
	}
}

func TestGlamourTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme config.ColorScheme
		want   string
	}{
		{config.ColorSchemeDark, "dark"},
		{config.ColorSchemeLight, "light"},
		{config.ColorSchemeAuto, "auto"},
		{"", "auto"},
	}
	for _, tt := range tests {
		if got := glamourTheme(tt.scheme); got != tt.want {
			t.Errorf("glamourTheme(%q) = %q, want %q", string(tt.scheme), got, tt.want)
		}
	}
}
