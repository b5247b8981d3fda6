// SPDX-License-Identifier: MPL-2.0

// Package classify derives coarse descriptive metadata (category,
// subcategory, description, tags) and a demo/trial flag from nothing but a
// plugin's display name, vendor, and path. It is the fallback used for every
// inventory entity the curated catalog does not know about.
//
// All heuristics are ordered rule lists evaluated top to bottom, so the
// priority between overlapping keywords is explicit and testable. Every
// function in this package is deterministic and free of side effects.
package classify
