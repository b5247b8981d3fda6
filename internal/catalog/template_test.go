// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"plugscan-cli/internal/inventory"
)

func TestTemplateRecords(t *testing.T) {
	t.Parallel()

	inv := []*inventory.ConsolidatedPlugin{
		{DisplayName: "Serum", Vendor: "Xfer Records", HasMetadata: true},
		{
			DisplayName: "Mystery Reverb",
			Vendor:      "Somebody",
			Category:    "Effect",
			Subcategory: "Reverb",
			Description: "Mystery Reverb is a reverb by Somebody.",
			Tags:        []string{"effect"},
		},
	}

	records := TemplateRecords(inv)
	if len(records) != 1 {
		t.Fatalf("TemplateRecords() = %d records, want 1 (curated entities excluded)", len(records))
	}

	r := records[0]
	if r.Name != "Mystery Reverb" || r.Category != "Effect" || r.Subcategory != "Reverb" {
		t.Errorf("record not prefilled from heuristics: %+v", r)
	}
	if !r.NeedsReview {
		t.Error("NeedsReview = false, want true")
	}
	if r.Price != "unknown" || r.Popularity != 0 || r.Website != nil {
		t.Errorf("placeholder fields wrong: %+v", r)
	}
}

func TestMarshalTemplates(t *testing.T) {
	t.Parallel()

	doc, err := MarshalTemplates([]TemplateRecord{
		{Name: "Mystery Reverb (VST3)", Vendor: "Somebody", Price: "unknown", NeedsReview: true},
	})
	if err != nil {
		t.Fatalf("MarshalTemplates() error: %v", err)
	}

	var parsed map[string]TemplateRecord
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		t.Fatalf("rendered document is not valid YAML: %v", err)
	}
	record, ok := parsed["mystery reverb"]
	if !ok {
		t.Fatalf("document keys = %v, want normalized plugin name", keysOf(parsed))
	}
	if record.Vendor != "Somebody" {
		t.Errorf("Vendor = %q, want %q", record.Vendor, "Somebody")
	}
	if !strings.Contains(string(doc), "website: null") {
		t.Errorf("rendered document should show an explicit null website:\n%s", doc)
	}
}

func keysOf(m map[string]TemplateRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
