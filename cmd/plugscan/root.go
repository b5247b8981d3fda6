// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for plugscan.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"plugscan-cli/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// logger is the CLI-level logger; level follows --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "plugscan",
		Short: "An audio plugin inventory scanner",
		Long: TitleStyle.Render("plugscan") + SubtitleStyle.Render(" - An audio plugin inventory scanner") + `

plugscan walks the plugin directories of your OS (VST2/VST3/AU),
consolidates every packaging variant of a product into one inventory
entry, enriches entries from a curated metadata catalog, and
cross-references your project files to show which plugins you
actually use.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'plugscan scan' to build the inventory
  2. Run 'plugscan projects <dir>' to link project usage
  3. Run 'plugscan list' to browse the result

` + SubtitleStyle.Render("Examples:") + `
  plugscan scan                Build a fresh inventory snapshot
  plugscan list --demo         List demo/trial installations
  plugscan info "Pro-Q 3"      Show one plugin in detail
  plugscan projects ~/Music    Extract and link project usage
  plugscan missing             Export curation templates`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/plugscan/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(missingCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads the config file and wires logging before any
// subcommand runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Config errors never block a run; surface them and continue on
		// defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	// Route library-level slog output through the CLI logger.
	slog.SetDefault(slog.New(logger))
}

// mustConfig returns the effective configuration, falling back to defaults
// when loading failed.
func mustConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil || cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}
