// SPDX-License-Identifier: MPL-2.0

// Package usage joins per-project plugin usage onto the consolidated
// inventory.
package usage

import (
	"log/slog"
	"strings"

	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/project"
)

// Link returns a new inventory snapshot with ProjectUsage populated from the
// extracted projects. For every (project, plugin name) pair the entity whose
// display name matches case-insensitively gets a usage entry appended; a
// plugin name with no inventory match is logged and dropped. Pure join over
// its inputs: the passed-in inventory is never mutated, and linking the same
// pair of inputs twice yields identical results.
func Link(projects []project.ExtractedProject, inv []*inventory.ConsolidatedPlugin) []*inventory.ConsolidatedPlugin {
	linked := make([]*inventory.ConsolidatedPlugin, len(inv))
	byName := make(map[string]*inventory.ConsolidatedPlugin, len(inv))
	for i, plugin := range inv {
		clone := plugin.Clone()
		clone.ProjectUsage = nil
		linked[i] = clone
		byName[strings.ToLower(clone.DisplayName)] = clone
	}

	for _, proj := range projects {
		for _, name := range proj.PluginNames {
			plugin, ok := byName[strings.ToLower(name)]
			if !ok {
				slog.Debug("extracted plugin not in inventory",
					"plugin", name, "project", proj.Name)
				continue
			}
			plugin.ProjectUsage = append(plugin.ProjectUsage, inventory.ProjectUsage{
				ProjectName:    proj.Name,
				ProjectFile:    proj.FilePath,
				LastModifiedAt: proj.LastModifiedAt,
			})
		}
	}
	return linked
}
