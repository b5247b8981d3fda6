// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"plugscan-cli/internal/config"
	"plugscan-cli/internal/issue"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the plugscan configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustConfig()

		source := config.LoadedFrom()
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Println(TitleStyle.Render("Configuration") + " " + SubtitleStyle.Render("("+source+")"))
		fmt.Println()
		printConfigLine("catalog_path", cfg.CatalogPath)
		printConfigLine("store_dir", cfg.StoreDir)
		printConfigLine("scan.vst2_dirs", strings.Join(cfg.Scan.VST2Dirs, ", "))
		printConfigLine("scan.vst3_dirs", strings.Join(cfg.Scan.VST3Dirs, ", "))
		printConfigLine("scan.au_dirs", strings.Join(cfg.Scan.AUDirs, ", "))
		printConfigLine("scan.include_defaults", fmt.Sprintf("%t", cfg.Scan.IncludeDefaults))
		printConfigLine("projects.dirs", strings.Join(cfg.Projects.Dirs, ", "))
		printConfigLine("projects.extensions", strings.Join(cfg.Projects.Extensions, ", "))
		printConfigLine("ui.color_scheme", string(cfg.UI.ColorScheme))
		printConfigLine("ui.verbose", fmt.Sprintf("%t", cfg.UI.Verbose))

		if verbose {
			fmt.Println()
			fmt.Println(SubtitleStyle.Render("Resolved scan directories:"))
			for _, d := range cfg.SearchDirs() {
				fmt.Printf("  %s  %s\n", VerboseStyle.Render(d.Format.String()), d.Dir)
			}
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgDir, err := config.ConfigDir()
		if err != nil {
			return issue.WrapWithOperation(err, "resolve config directory")
		}
		path := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)

		if _, err := os.Stat(path); err == nil {
			return issue.NewErrorContext().
				WithOperation("initialize configuration").
				WithResource(path).
				WithSuggestion("Edit the existing file instead").
				WithSuggestion("Or delete it first to start over").
				Wrap(fmt.Errorf("config file already exists")).
				BuildError()
		}

		if err := os.MkdirAll(cfgDir, 0o755); err != nil {
			return issue.WrapWithContext(err, "create config directory", cfgDir)
		}
		if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
			return issue.WrapWithContext(err, "write config file", path)
		}
		fmt.Printf("%s %s\n", SuccessStyle.Render("Created"), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func printConfigLine(key, value string) {
	if value == "" {
		value = SubtitleStyle.Render("(unset)")
	}
	fmt.Printf("  %s %s\n", NameStyle.Render(key+":"), value)
}

// starterConfig is the commented template written by 'plugscan config init'.
// Every field is optional; unset fields fall back to the built-in defaults.
const starterConfig = `// plugscan configuration.
// All fields are optional.

// catalog_path: "/path/to/catalog.yaml"
// store_dir:    "/path/to/store"

scan: {
	// Extra directories scanned in addition to the platform defaults.
	// vst2_dirs: ["/opt/plugins/vst"]
	// vst3_dirs: ["/opt/plugins/vst3"]
	// au_dirs:   []

	include_defaults: true
}

projects: {
	// dirs: ["~/Music/Projects"]
	extensions: [".als"]
}

ui: {
	color_scheme: "auto" // "auto" | "dark" | "light"
	verbose:      false
}
`
