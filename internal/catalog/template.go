// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"gopkg.in/yaml.v3"

	"plugscan-cli/internal/inventory"
)

// TemplateRecord is the curation template rendered for an inventory entity
// that matched no catalog entry. The external curation workflow fills in the
// blanks and merges the record back into the catalog document.
type TemplateRecord struct {
	Name        string   `yaml:"name"`
	Vendor      string   `yaml:"vendor"`
	Category    string   `yaml:"category"`
	Subcategory string   `yaml:"subcategory"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	// Website is nil so the rendered document shows an explicit null.
	Website     *string `yaml:"website"`
	Price       string  `yaml:"price"`
	Popularity  int     `yaml:"popularity"`
	NeedsReview bool    `yaml:"needsReview"`
}

// TemplateRecords renders every entity with HasMetadata == false as a
// curation template, in inventory order.
func TemplateRecords(inv []*inventory.ConsolidatedPlugin) []TemplateRecord {
	var records []TemplateRecord
	for _, plugin := range inv {
		if plugin.HasMetadata {
			continue
		}
		records = append(records, TemplateRecord{
			Name:        plugin.DisplayName,
			Vendor:      plugin.Vendor,
			Category:    plugin.Category,
			Subcategory: plugin.Subcategory,
			Description: plugin.Description,
			Tags:        append([]string(nil), plugin.Tags...),
			Website:     nil,
			Price:       "unknown",
			Popularity:  0,
			NeedsReview: true,
		})
	}
	return records
}

// MarshalTemplates serializes template records as a YAML document keyed by
// normalized plugin name, mirroring the catalog document layout.
func MarshalTemplates(records []TemplateRecord) ([]byte, error) {
	doc := make(map[string]TemplateRecord, len(records))
	for _, record := range records {
		doc[inventory.Normalize(record.Name)] = record
	}
	return yaml.Marshal(doc)
}
