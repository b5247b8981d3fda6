// SPDX-License-Identifier: MPL-2.0

// Package tui renders inventory entities for terminal display: markdown
// detail cards through glamour and styled list lines through lipgloss.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"plugscan-cli/internal/inventory"
)

// FormatOptions configures markdown rendering.
type FormatOptions struct {
	// Content is the markdown to render.
	Content string
	// GlamourTheme is the glamour style ("auto" when empty).
	GlamourTheme string
	// Width is the word wrap width (0 for no wrap).
	Width int
}

// FormatMarkdown renders markdown content for the terminal.
func FormatMarkdown(opts FormatOptions) (string, error) {
	theme := opts.GlamourTheme
	if theme == "" {
		theme = "auto"
	}
	renderOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(theme),
	}
	if opts.Width > 0 {
		renderOpts = append(renderOpts, glamour.WithWordWrap(opts.Width))
	}
	r, err := glamour.NewTermRenderer(renderOpts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(opts.Content)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// PluginCard builds the markdown detail card for one inventory entity.
func PluginCard(p *inventory.ConsolidatedPlugin) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\n", p.DisplayName)
	if p.Vendor != "" {
		fmt.Fprintf(&md, "by **%s**\n\n", p.Vendor)
	}
	if p.Description != "" {
		fmt.Fprintf(&md, "%s\n\n", p.Description)
	}

	fmt.Fprintf(&md, "- Category: %s", p.Category)
	if p.Subcategory != "" {
		fmt.Fprintf(&md, " / %s", p.Subcategory)
	}
	md.WriteString("\n")
	if len(p.Tags) > 0 {
		fmt.Fprintf(&md, "- Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if p.Website != "" {
		fmt.Fprintf(&md, "- Website: %s\n", p.Website)
	}
	if p.Price != "" {
		fmt.Fprintf(&md, "- Price: %s\n", p.Price)
	}
	if p.ReleaseYear != 0 {
		fmt.Fprintf(&md, "- Released: %d\n", p.ReleaseYear)
	}
	if p.IsDemo {
		md.WriteString("- **Demo/trial build**\n")
	}
	if !p.HasMetadata {
		md.WriteString("- _No curated metadata; fields above are heuristic guesses_\n")
	}

	md.WriteString("\n## Installed formats\n\n")
	for _, f := range p.Formats {
		fmt.Fprintf(&md, "- `%s` — %s\n", f.Format, f.Path)
	}

	if len(p.ProjectUsage) > 0 {
		md.WriteString("\n## Used in projects\n\n")
		for _, u := range p.ProjectUsage {
			fmt.Fprintf(&md, "- %s (`%s`)\n", u.ProjectName, u.ProjectFile)
		}
	}

	return md.String()
}
