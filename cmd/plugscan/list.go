// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/issue"
	"plugscan-cli/internal/store"
)

var (
	listDemoOnly    bool
	listUnusedOnly  bool
	listMissingOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the inventoried plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := loadInventory()
		if err != nil {
			return err
		}

		shown := 0
		for _, p := range inv {
			if listDemoOnly && !p.IsDemo {
				continue
			}
			if listUnusedOnly && len(p.ProjectUsage) > 0 {
				continue
			}
			if listMissingOnly && p.HasMetadata {
				continue
			}
			printPluginLine(p)
			shown++
		}

		fmt.Println()
		fmt.Println(SubtitleStyle.Render(fmt.Sprintf("%d of %d plugins shown", shown, len(inv))))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listDemoOnly, "demo", false, "only demo/trial installations")
	listCmd.Flags().BoolVar(&listUnusedOnly, "unused", false, "only plugins not used in any project")
	listCmd.Flags().BoolVar(&listMissingOnly, "missing", false, "only plugins without curated metadata")
}

// printPluginLine renders one inventory row:
//
//	Serum  Xfer Records  Synthesizer/Wavetable  [VST2 VST3]  3 projects
func printPluginLine(p *inventory.ConsolidatedPlugin) {
	formats := make([]string, 0, len(p.Formats))
	seen := map[string]bool{}
	for _, f := range p.Formats {
		name := f.Format.String()
		if !seen[name] {
			seen[name] = true
			formats = append(formats, name)
		}
	}

	line := NameStyle.Render(p.DisplayName)
	if p.Vendor != "" {
		line += "  " + SubtitleStyle.Render(p.Vendor)
	}
	category := p.Category
	if p.Subcategory != "" {
		category += "/" + p.Subcategory
	}
	line += "  " + VerboseStyle.Render(category)
	line += "  " + VerboseStyle.Render("["+strings.Join(formats, " ")+"]")
	if p.IsDemo {
		line += "  " + WarningStyle.Render("demo")
	}
	if n := len(p.ProjectUsage); n == 1 {
		line += "  " + SuccessStyle.Render("1 project")
	} else if n > 1 {
		line += "  " + SuccessStyle.Render(fmt.Sprintf("%d projects", n))
	}
	fmt.Println(line)
}

// loadInventory reads the persisted snapshot, converting a missing store
// into a "scan first" hint.
func loadInventory() ([]*inventory.ConsolidatedPlugin, error) {
	cfg := mustConfig()
	inv, err := store.New(cfg.StoreDir).LoadInventory()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, issue.NewErrorContext().
				WithOperation("load inventory snapshot").
				WithSuggestion("Run 'plugscan scan' first to build the inventory").
				Wrap(err).
				BuildError()
		}
		if errors.Is(err, store.ErrCorrupt) {
			renderIssue(issue.StoreCorruptId)
		}
		return nil, issue.WrapWithOperation(err, "load inventory snapshot")
	}
	return inv, nil
}
