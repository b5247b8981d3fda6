// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"plugscan-cli/internal/inventory"
)

type (
	// Entry is one curated catalog record. Entries are read-only to this
	// core; curation happens in an external workflow.
	Entry struct {
		Name        string   `yaml:"name"`
		Vendor      string   `yaml:"vendor"`
		Description string   `yaml:"description"`
		Category    string   `yaml:"category"`
		Subcategory string   `yaml:"subcategory"`
		Tags        []string `yaml:"tags"`
		Website     string   `yaml:"website"`
		Price       string   `yaml:"price"`
		Popularity  int      `yaml:"popularity"`
		ReleaseYear int      `yaml:"releaseYear"`
	}

	// Snapshot is an immutable view of the catalog document, keyed by
	// normalized plugin name. Keys are kept sorted so the fuzzy and
	// vendor-scoped strategies iterate deterministically.
	Snapshot struct {
		entries map[string]Entry
		keys    []string
	}
)

// NewSnapshot builds a snapshot from an already-parsed catalog mapping.
// Keys are re-normalized defensively; normalization is idempotent, so
// well-formed documents pass through unchanged.
func NewSnapshot(entries map[string]Entry) *Snapshot {
	normalized := make(map[string]Entry, len(entries))
	for key, entry := range entries {
		normalized[inventory.Normalize(key)] = entry
	}
	keys := make([]string, 0, len(normalized))
	for key := range normalized {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Snapshot{entries: normalized, keys: keys}
}

// Load reads and parses the catalog document at path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var entries map[string]Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return NewSnapshot(entries), nil
}

// Len returns the number of catalog entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Get returns the entry stored under the given normalized key.
func (s *Snapshot) Get(key string) (Entry, bool) {
	entry, ok := s.entries[key]
	return entry, ok
}
