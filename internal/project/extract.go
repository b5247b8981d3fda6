// SPDX-License-Identifier: MPL-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// pluginInfoFields maps each plugin-info element shape to the fields that
// carry the plugin's name, in preference order. Different plugin categories
// are serialized with different shapes: the legacy shape surfaces PlugName,
// the newer shapes surface Name, and all of them may fall back to the
// binary's FileName.
var pluginInfoFields = map[string][]string{
	"VstPluginInfo":  {"PlugName", "FileName"},
	"Vst3PluginInfo": {"Name", "FileName"},
	"AuPluginInfo":   {"Name", "FileName"},
}

// isDeviceWrapper reports whether an element is an instantiated-device
// wrapper. Plugin-info blocks are only trusted inside one of these; the
// same info vocabulary also appears under browser-history elements, which
// never use a device wrapper.
func isDeviceWrapper(name string) bool {
	return name == "PluginDevice" || strings.HasSuffix(name, "PluginDevice")
}

// ExtractLoadedPlugins returns the sorted, de-duplicated set of third-party
// plugin names instantiated as devices in the document. A document that does
// not parse as the expected markup yields an error; callers skip that
// project and continue the batch.
func ExtractLoadedPlugins(doc []byte) ([]string, error) {
	root, err := parseTree(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project document: %w", err)
	}
	return loadedPlugins(root), nil
}

// loadedPlugins walks the tree and collects plugin names from device-scoped
// plugin-info blocks only.
func loadedPlugins(root *node) []string {
	var wrappers []*node
	root.findAll(isDeviceWrapper, &wrappers)

	seen := make(map[string]bool)
	for _, wrapper := range wrappers {
		desc := wrapper.findFirst("PluginDesc")
		if desc == nil {
			continue
		}
		for infoName, fields := range pluginInfoFields {
			info := desc.findFirst(infoName)
			if info == nil {
				continue
			}
			for _, field := range fields {
				fieldNode := info.findFirst(field)
				if fieldNode == nil {
					continue
				}
				raw, ok := fieldNode.value()
				if !ok || strings.TrimSpace(raw) == "" {
					continue
				}
				if name, ok := cleanPluginName(raw); ok {
					seen[name] = true
					break
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extract parses one project file end to end: container decode, structural
// plugin extraction, and project naming.
func Extract(path string) (*ExtractedProject, error) {
	doc, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	root, err := parseTree(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project document %s: %w", path, err)
	}

	name := projectName(root, path)
	proj := &ExtractedProject{
		Name:        name,
		FilePath:    path,
		FileName:    filepath.Base(path),
		PluginNames: loadedPlugins(root),
	}
	if info, err := os.Stat(path); err == nil {
		proj.LastModifiedAt = info.ModTime()
	}
	return proj, nil
}

// projectName prefers an explicit title attribute on the document root and
// falls back to the source file's base name.
func projectName(root *node, path string) string {
	if title, ok := root.attr("Title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if title, ok := root.attr("Name"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
