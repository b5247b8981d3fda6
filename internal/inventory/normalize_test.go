// SPDX-License-Identifier: MPL-2.0

package inventory

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain lowercase", "serum", "serum"},
		{"casing folded", "Serum", "serum"},
		{"bitness suffix dropped", "Serum_x64", "serum"},
		{"packaging annotation dropped", "Serum (VST3)", "serum"},
		{"bracketed annotation dropped", "Kontakt [Bundle]", "kontakt"},
		{"unknown annotation kept", "Pro-Q 3 (Deluxe)", "pro-q 3 deluxe"},
		{"vendor prefix stripped", "FabFilter Pro-Q 3", "pro-q 3"},
		{"vendor prefix stripped twice", "Arturia Arturia Piano V3", "piano v3"},
		{"vendor prefix behind punctuation", "Waves! Gold", "gold"},
		{"vendor prefix behind comma", "u-he, Diva", "diva"},
		{"vendor name alone survives", "Waves", "waves"},
		{"underscores fold to spaces", "Valhalla_Vintage_Verb", "valhalla vintage verb"},
		{"punctuation dropped", "Ozone 11 Advanced!", "ozone 11 advanced"},
		{"whitespace trimmed", "  Diva  ", "diva"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize is not idempotent: Normalize(%q) = %q", got, again)
			}
		})
	}
}

func TestNormalize_VariantsCollide(t *testing.T) {
	t.Parallel()

	variants := []string{"Serum_x64", "Serum (VST3)", "serum", "SERUM", "Xfer Records Serum"}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q (same key as %q)", v, got, want, variants[0])
		}
	}
}

func TestCleanDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Serum_x64", "Serum X64"},
		{"serum", "Serum"},
		{"FabFilter Pro-Q 3", "FabFilter Pro-Q 3"},
		{"LABS", "LABS"},
		{"valhalla_vintage_verb", "Valhalla Vintage Verb"},
		{"  spaced   out ", "Spaced Out"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := CleanDisplayName(tt.in); got != tt.want {
				t.Errorf("CleanDisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
