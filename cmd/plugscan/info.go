// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plugscan-cli/internal/config"
	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/issue"
	"plugscan-cli/internal/tui"
)

var infoCmd = &cobra.Command{
	Use:   "info <plugin>",
	Short: "Show one inventoried plugin in detail",
	Long: `Looks a plugin up by name (case and packaging variants do not matter:
'serum', 'Serum_x64' and 'Serum (VST3)' all resolve to the same entry)
and renders its full inventory record.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		inv, err := loadInventory()
		if err != nil {
			return err
		}

		plugin := findPlugin(inv, query)
		if plugin == nil {
			return issue.NewErrorContext().
				WithOperation("look up plugin").
				WithResource(query).
				WithSuggestion("Run 'plugscan list' to see the inventoried names").
				WithSuggestion("Run 'plugscan scan' if the plugin was installed recently").
				BuildError()
		}

		rendered, err := tui.FormatMarkdown(tui.FormatOptions{
			Content:      tui.PluginCard(plugin),
			GlamourTheme: glamourTheme(mustConfig().UI.ColorScheme),
			Width:        100,
		})
		if err != nil {
			return issue.WrapWithOperation(err, "render plugin card")
		}
		fmt.Print(rendered)
		return nil
	},
}

// findPlugin resolves a user-supplied name against the inventory: exact
// display name first, then the normalized form.
func findPlugin(inv []*inventory.ConsolidatedPlugin, query string) *inventory.ConsolidatedPlugin {
	for _, p := range inv {
		if strings.EqualFold(p.DisplayName, query) {
			return p
		}
	}
	normalized := inventory.Normalize(query)
	for _, p := range inv {
		if inventory.Normalize(p.DisplayName) == normalized {
			return p
		}
	}
	return nil
}

// glamourTheme maps the configured color scheme onto a glamour style name.
func glamourTheme(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
