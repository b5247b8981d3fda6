// SPDX-License-Identifier: MPL-2.0

package inventory

import "time"

const (
	// FormatVST2 is the legacy single-file plugin packaging (.dll/.vst).
	FormatVST2 WireFormat = "vst2"
	// FormatVST3 is the bundle-or-file VST3 packaging (.vst3).
	FormatVST3 WireFormat = "vst3"
	// FormatAU is the macOS Audio Unit component packaging (.component).
	FormatAU WireFormat = "au"
)

type (
	// WireFormat identifies one of the three mutually exclusive binary
	// packaging conventions a plugin artifact can ship as.
	WireFormat string

	// RawInstallation is one physical plugin artifact found on disk.
	// Records are created by the scanner and consumed exactly once by
	// Consolidate; they are never mutated after creation.
	RawInstallation struct {
		// Path is the absolute path of the file or bundle directory.
		Path string
		// Format is the detected binary packaging convention.
		Format WireFormat
		// DisplayNameRaw is the name derived from the filename, before
		// any cosmetic cleanup.
		DisplayNameRaw string
		// VendorGuess is the vendor inferred from the parent directory
		// name ("" when the artifact sits directly in a root plugin dir).
		VendorGuess string
		// SizeBytes is the artifact size (0 for bundle directories).
		SizeBytes int64
		// ModifiedAt is the filesystem modification time.
		ModifiedAt time.Time
		// IsBundle reports whether the artifact is a directory-style
		// package rather than a single file.
		IsBundle bool
	}

	// FormatInstallation is one physically distinct installation merged
	// into a ConsolidatedPlugin, preserved per wire format.
	FormatInstallation struct {
		Format     WireFormat `json:"format"`
		Path       string     `json:"path"`
		SizeBytes  int64      `json:"sizeBytes"`
		ModifiedAt time.Time  `json:"modifiedAt"`
		IsBundle   bool       `json:"isBundle"`
	}

	// ProjectUsage records one project that loads the plugin. Populated
	// by the usage linker on a pass that runs after consolidation.
	ProjectUsage struct {
		ProjectName    string    `json:"projectName"`
		ProjectFile    string    `json:"projectFile"`
		LastModifiedAt time.Time `json:"lastModifiedAt"`
	}

	// ConsolidatedPlugin is the logical, user-facing entity representing
	// one plugin product across all of its installed packaging variants.
	//
	// Within one inventory no two entities share a normalized display
	// name, and Formats is never empty.
	ConsolidatedPlugin struct {
		// ID is a stable hash of the first qualifying installation's path.
		ID          string   `json:"id"`
		DisplayName string   `json:"displayName"`
		Vendor      string   `json:"vendor"`
		Category    string   `json:"category"`
		Subcategory string   `json:"subcategory"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
		IsDemo      bool     `json:"isDemo"`
		// Formats lists every physically distinct installation merged into
		// this entity, in the order the installations were seen.
		Formats []FormatInstallation `json:"formats"`
		// HasMetadata reports whether curated catalog fields were applied.
		// False means every descriptive field below was guessed
		// heuristically and the entity is a candidate for curation.
		HasMetadata bool   `json:"hasMetadata"`
		Website     string `json:"website,omitempty"`
		Price       string `json:"price,omitempty"`
		Popularity  int    `json:"popularity,omitempty"`
		ReleaseYear int    `json:"releaseYear,omitempty"`
		// ModifiedAt is the latest modification time across Formats.
		ModifiedAt time.Time `json:"modifiedAt"`
		// ProjectUsage lists the projects that load this plugin. Empty
		// until the usage linker runs.
		ProjectUsage []ProjectUsage `json:"projectUsage,omitempty"`
	}
)

// String returns the conventional display spelling of the format.
func (f WireFormat) String() string {
	switch f {
	case FormatVST2:
		return "VST2"
	case FormatVST3:
		return "VST3"
	case FormatAU:
		return "AU"
	default:
		return string(f)
	}
}

// Clone returns a deep copy of the entity. The usage linker clones the
// inventory before populating ProjectUsage so repeated link passes over the
// same snapshot never accumulate.
func (p *ConsolidatedPlugin) Clone() *ConsolidatedPlugin {
	cp := *p
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Formats = append([]FormatInstallation(nil), p.Formats...)
	cp.ProjectUsage = append([]ProjectUsage(nil), p.ProjectUsage...)
	return &cp
}
