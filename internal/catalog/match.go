// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"log/slog"
	"strings"

	"plugscan-cli/internal/classify"
	"plugscan-cli/internal/inventory"
)

// fuzzyPrefixLen is how many leading characters of the normalized names the
// fuzzy strategy compares (shorter names compare their full length).
const fuzzyPrefixLen = 6

// vendorScopedPrefixLen is how many leading characters of a catalog key must
// appear in the plugin's normalized name for the vendor-scoped strategy.
const vendorScopedPrefixLen = 4

// Match looks up the catalog entry for a consolidated plugin. Strategy
// order, first hit wins:
//
//  1. Exact match of the plugin's normalized name against a catalog key.
//  2. Prefix-fuzzy match over every catalog key. Intentionally permissive:
//     short or generic names risk false positives, which is an accepted
//     limitation of this strategy, surfaced to curators via HasMetadata
//     rather than silently tightened here.
//  3. Vendor-scoped match: catalog entries whose vendor contains the
//     plugin's vendor and whose key's first characters appear in the
//     plugin's normalized name.
func Match(plugin *inventory.ConsolidatedPlugin, snap *Snapshot) (Entry, bool) {
	key := inventory.Normalize(plugin.DisplayName)
	if key == "" {
		return Entry{}, false
	}

	if entry, ok := snap.entries[key]; ok {
		return entry, true
	}

	for _, candidate := range snap.keys {
		n := fuzzyPrefixLen
		if len(key) < n {
			n = len(key)
		}
		if len(candidate) < n {
			n = len(candidate)
		}
		if n > 0 && key[:n] == candidate[:n] {
			return snap.entries[candidate], true
		}
	}

	if vendor := strings.ToLower(strings.TrimSpace(plugin.Vendor)); vendor != "" {
		for _, candidate := range snap.keys {
			entry := snap.entries[candidate]
			if !strings.Contains(strings.ToLower(entry.Vendor), vendor) {
				continue
			}
			n := vendorScopedPrefixLen
			if len(candidate) < n {
				n = len(candidate)
			}
			if n > 0 && strings.Contains(key, candidate[:n]) {
				return entry, true
			}
		}
	}

	return Entry{}, false
}

// Apply overwrites the entity's descriptive fields from a matched catalog
// entry and marks it curated. The heuristically guessed category and
// subcategory survive only when the entry carries no category of its own.
func Apply(plugin *inventory.ConsolidatedPlugin, entry Entry) {
	plugin.Description = entry.Description
	if entry.Category != "" {
		plugin.Category = entry.Category
		plugin.Subcategory = entry.Subcategory
	}
	plugin.Tags = append([]string(nil), entry.Tags...)
	plugin.Website = entry.Website
	plugin.Price = entry.Price
	plugin.Popularity = entry.Popularity
	plugin.ReleaseYear = entry.ReleaseYear
	if plugin.Vendor == "" {
		plugin.Vendor = entry.Vendor
	}
	plugin.HasMetadata = true
}

// Enrich runs the matcher over a whole inventory snapshot. Entities without
// a catalog hit fall through to the heuristic classifier for description and
// tags and keep HasMetadata false so curation workflows can pick them up.
func Enrich(inv []*inventory.ConsolidatedPlugin, snap *Snapshot) {
	for _, plugin := range inv {
		if entry, ok := Match(plugin, snap); ok {
			Apply(plugin, entry)
			continue
		}
		plugin.HasMetadata = false
		plugin.Description = classify.Describe(plugin.DisplayName, plugin.Vendor, plugin.Category, plugin.Subcategory)
		plugin.Tags = classify.Tags(plugin.DisplayName, plugin.Category)
		slog.Debug("no catalog entry for plugin", "plugin", plugin.DisplayName)
	}
}
