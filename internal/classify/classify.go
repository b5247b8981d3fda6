// SPDX-License-Identifier: MPL-2.0

package classify

import (
	"fmt"
	"sort"
	"strings"
)

// Classify derives a coarse category and subcategory from a plugin's display
// name. The first matching rule in the cascade wins; a name no rule matches
// yields CategoryOther with an empty subcategory. Identical inputs always
// produce identical outputs.
func Classify(displayName string) (category, subcategory string) {
	name := strings.ToLower(displayName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category, rule.subcategory
			}
		}
	}
	return CategoryOther, ""
}

// Describe renders a one-line description for a plugin without curated
// metadata. Subcategories with a template get the specific sentence;
// everything else falls back to "<category> by <vendor>".
func Describe(displayName, vendor, category, subcategory string) string {
	if vendor == "" {
		vendor = "an unknown vendor"
	}
	if tmpl, ok := descriptionTemplates[subcategory]; ok {
		return fmt.Sprintf(tmpl, displayName, vendor)
	}
	return fmt.Sprintf("%s by %s", category, vendor)
}

// Tags returns the sorted tag set for a plugin: the category's baseline tags
// plus content tags detected from the display name.
func Tags(displayName, category string) []string {
	seen := map[string]bool{}
	for _, t := range categoryTags[category] {
		seen[t] = true
	}
	name := strings.ToLower(displayName)
	for _, rule := range contentTagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				for _, t := range rule.tags {
					seen[t] = true
				}
				break
			}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
