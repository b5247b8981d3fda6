// SPDX-License-Identifier: MPL-2.0

package inventory

import "testing"

func TestWireFormatString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format WireFormat
		want   string
	}{
		{FormatVST2, "VST2"},
		{FormatVST3, "VST3"},
		{FormatAU, "AU"},
		{"weird", "weird"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("WireFormat(%q).String() = %q, want %q", string(tt.format), got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	original := &ConsolidatedPlugin{
		DisplayName: "Serum",
		Tags:        []string{"synth"},
		Formats:     []FormatInstallation{{Format: FormatVST3, Path: "/a"}},
		ProjectUsage: []ProjectUsage{
			{ProjectName: "My Song"},
		},
	}

	clone := original.Clone()
	clone.Tags[0] = "changed"
	clone.Formats[0].Path = "/changed"
	clone.ProjectUsage[0].ProjectName = "Changed"

	if original.Tags[0] != "synth" {
		t.Error("Clone() shares the Tags slice with the original")
	}
	if original.Formats[0].Path != "/a" {
		t.Error("Clone() shares the Formats slice with the original")
	}
	if original.ProjectUsage[0].ProjectName != "My Song" {
		t.Error("Clone() shares the ProjectUsage slice with the original")
	}
}
