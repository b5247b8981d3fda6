// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"plugscan-cli/internal/issue"
	"plugscan-cli/internal/project"
	"plugscan-cli/internal/store"
	"plugscan-cli/internal/usage"
)

var projectsCmd = &cobra.Command{
	Use:   "projects [dir|file...]",
	Short: "Extract plugin usage from project files and link it to the inventory",
	Long: `Parses project files (arguments, or the configured project directories when
none are given), recovers the set of plugins actually loaded as devices in
each project, and attaches that usage to the persisted inventory.

Unreadable project files are skipped with a warning; the batch always
completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustConfig()

		roots := args
		if len(roots) == 0 {
			roots = cfg.Projects.Dirs
		}
		if len(roots) == 0 {
			return issue.NewErrorContext().
				WithOperation("find project files").
				WithSuggestion("Pass directories or files as arguments").
				WithSuggestion("Or set projects.dirs in the config file").
				BuildError()
		}

		files := collectProjectFiles(roots, cfg.Projects.Extensions)
		if len(files) == 0 {
			fmt.Println(SubtitleStyle.Render("No project files found."))
			return nil
		}

		var (
			projects []project.ExtractedProject
			skipped  int
		)
		for _, file := range files {
			proj, err := project.Extract(file)
			if err != nil {
				skipped++
				logger.Warn("skipped project file", "path", file, "err", err)
				continue
			}
			projects = append(projects, *proj)
			logger.Debug("extracted project", "project", proj.Name, "plugins", len(proj.PluginNames))
		}
		if skipped > 0 {
			renderIssue(issue.ProjectParseErrorId)
		}

		st := store.New(cfg.StoreDir)
		if err := st.SaveProjects(projects); err != nil {
			return issue.WrapWithContext(err, "save project records", cfg.StoreDir)
		}

		inv, err := st.LoadInventory()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return issue.NewErrorContext().
					WithOperation("link project usage").
					WithSuggestion("Run 'plugscan scan' first to build the inventory").
					Wrap(err).
					BuildError()
			}
			return issue.WrapWithOperation(err, "load inventory snapshot")
		}

		linked := usage.Link(projects, inv)
		if err := st.SaveInventory(linked); err != nil {
			return issue.WrapWithContext(err, "save inventory snapshot", cfg.StoreDir)
		}

		used := 0
		for _, p := range linked {
			if len(p.ProjectUsage) > 0 {
				used++
			}
		}
		fmt.Printf("%s %d projects (%d skipped); %d of %d plugins in use\n",
			SuccessStyle.Render("Linked"), len(projects), skipped, used, len(linked))
		return nil
	},
}

// collectProjectFiles expands the given roots into project file paths: files
// are taken as-is, directories are walked for matching extensions.
func collectProjectFiles(roots, extensions []string) []string {
	match := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, want := range extensions {
			if ext == strings.ToLower(want) {
				return true
			}
		}
		return false
	}

	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			logger.Warn("skipped project source", "path", root, "err", err)
			continue
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debug("skipped unreadable entry", "path", path, "err", err)
				return nil
			}
			if !d.IsDir() && match(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
	}
	return files
}
