// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"plugscan-cli/internal/classify"
)

// Consolidate folds raw per-file installations into one ConsolidatedPlugin
// per normalization key. The first-seen installation seeds the entity's
// display name, vendor, and heuristic category; later installations that
// collide on the key only contribute a Formats entry and are otherwise
// silently absorbed, even when their vendor guess disagrees. Output is
// sorted lexicographically by display name.
//
// Pure transform: no I/O, never rejects input. Unreadable paths are expected
// to have been filtered out by the scanner.
func Consolidate(raws []RawInstallation) []*ConsolidatedPlugin {
	byKey := make(map[string]*ConsolidatedPlugin, len(raws))

	for _, raw := range raws {
		key := Normalize(raw.DisplayNameRaw)
		entity, ok := byKey[key]
		if !ok {
			display := CleanDisplayName(raw.DisplayNameRaw)
			category, subcategory := classify.Classify(display)
			entity = &ConsolidatedPlugin{
				ID:          installationID(raw.Path),
				DisplayName: display,
				Vendor:      raw.VendorGuess,
				Category:    category,
				Subcategory: subcategory,
			}
			byKey[key] = entity
		}
		entity.Formats = append(entity.Formats, FormatInstallation{
			Format:     raw.Format,
			Path:       raw.Path,
			SizeBytes:  raw.SizeBytes,
			ModifiedAt: raw.ModifiedAt,
			IsBundle:   raw.IsBundle,
		})
		if raw.ModifiedAt.After(entity.ModifiedAt) {
			entity.ModifiedAt = raw.ModifiedAt
		}
		// Any demo-looking installation marks the whole entity.
		if classify.IsDemo(raw.Path, entity.DisplayName) {
			entity.IsDemo = true
		}
	}

	out := make([]*ConsolidatedPlugin, 0, len(byKey))
	for _, entity := range byKey {
		out = append(out, entity)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayName < out[j].DisplayName
	})
	return out
}

// installationID derives the stable entity ID from the first qualifying
// installation's path.
func installationID(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])[:12]
}
