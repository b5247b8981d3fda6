// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plugscan-cli/internal/catalog"
	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/issue"
	"plugscan-cli/internal/scan"
	"plugscan-cli/internal/store"
	"plugscan-cli/internal/usage"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan plugin directories and rebuild the inventory snapshot",
	Long: `Walks the platform's plugin directories (plus any configured extras),
consolidates every packaging variant of a product into one inventory entry,
enriches entries from the curated metadata catalog, and atomically replaces
the persisted snapshot.

Previously extracted project usage is re-linked onto the fresh snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustConfig()

		scanner := scan.New(cfg.SearchDirs())
		raws, diagnostics := scanner.Collect()
		renderDiagnostics(diagnostics)
		logger.Debug("collected raw installations", "count", len(raws))

		inv := inventory.Consolidate(raws)
		if len(inv) == 0 {
			renderIssue(issue.NoPluginsFoundId)
			return nil
		}

		snap := loadCatalog(cfg.CatalogPath)
		catalog.Enrich(inv, snap)

		st := store.New(cfg.StoreDir)

		// Keep usage links from the last project pass across re-scans.
		if projects, err := st.LoadProjects(); err == nil && len(projects) > 0 {
			inv = usage.Link(projects, inv)
		}

		if err := st.SaveInventory(inv); err != nil {
			return issue.WrapWithContext(err, "save inventory snapshot", cfg.StoreDir)
		}

		curated := 0
		for _, p := range inv {
			if p.HasMetadata {
				curated++
			}
		}
		fmt.Printf("%s %d plugins (%d curated, %d need review)\n",
			SuccessStyle.Render("Inventoried"), len(inv), curated, len(inv)-curated)
		return nil
	},
}

// loadCatalog loads the curated catalog, degrading to an empty snapshot when
// none is configured or it cannot be read. Scanning must work without one.
func loadCatalog(path string) *catalog.Snapshot {
	if path == "" {
		logger.Debug("no catalog configured; classification is heuristic only")
		return catalog.NewSnapshot(nil)
	}
	snap, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			renderIssue(issue.CatalogNotFoundId)
		} else {
			renderIssue(issue.CatalogParseErrorId)
			fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		}
		return catalog.NewSnapshot(nil)
	}
	logger.Debug("catalog loaded", "entries", snap.Len(), "path", path)
	return snap
}
