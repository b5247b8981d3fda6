// SPDX-License-Identifier: MPL-2.0

package project

import (
	"regexp"
	"strings"
)

// binaryExtensions are the plugin binary/bundle suffixes stripped from
// recovered filename fields.
var binaryExtensions = []string{
	".vst3",
	".component",
	".dll",
	".vst",
	".au",
	".aaxplugin",
}

// builtinDevices are native device names that must never be reported as
// third-party plugins, matched case-insensitively after cleanup. The list
// also carries the bare track labels the document uses for unnamed tracks.
var builtinDevices = map[string]bool{
	"operator":          true,
	"wavetable":         true,
	"analog":            true,
	"collision":         true,
	"electric":          true,
	"tension":           true,
	"drift":             true,
	"meld":              true,
	"simpler":           true,
	"sampler":           true,
	"impulse":           true,
	"drum rack":         true,
	"instrument rack":   true,
	"audio effect rack": true,
	"midi effect rack":  true,
	"eq eight":          true,
	"eq three":          true,
	"compressor":        true,
	"glue compressor":   true,
	"gate":              true,
	"auto filter":       true,
	"auto pan":          true,
	"chorus-ensemble":   true,
	"phaser-flanger":    true,
	"reverb":            true,
	"delay":             true,
	"echo":              true,
	"saturator":         true,
	"overdrive":         true,
	"pedal":             true,
	"amp":               true,
	"cabinet":           true,
	"utility":           true,
	"limiter":           true,
	"tuner":             true,
	"spectrum":          true,
	"audio":             true,
	"midi":              true,
	"master":            true,
	"return":            true,
}

// junkPatterns reject generic non-plugin strings that leak into name fields.
// Ordered for readability only; rejection is rejection.
var junkPatterns = []*regexp.Regexp{
	// Track label prefixes ("3 - Audio").
	regexp.MustCompile(`^\d+\s*-\s`),
	// Bare numbers.
	regexp.MustCompile(`^\d+$`),
	// Date stamps.
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	// GUID-shaped tokens.
	regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`),
}

// cleanPluginName normalizes a raw name or filename field into a plugin
// display name, reporting false when the string cannot be a third-party
// plugin: too short, a built-in device, or a generic non-plugin pattern.
func cleanPluginName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	lower := strings.ToLower(name)
	for _, ext := range binaryExtensions {
		if strings.HasSuffix(lower, ext) {
			name = strings.TrimSpace(name[:len(name)-len(ext)])
			lower = strings.ToLower(name)
			break
		}
	}
	if len(name) < 2 {
		return "", false
	}
	if builtinDevices[lower] {
		return "", false
	}
	for _, pattern := range junkPatterns {
		if pattern.MatchString(name) {
			return "", false
		}
	}
	return name, true
}
