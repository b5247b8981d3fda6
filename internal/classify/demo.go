// SPDX-License-Identifier: MPL-2.0

package classify

import (
	"strings"
)

// demoKeywords flag an installation as a demo/trial/limited build when they
// appear anywhere in the lower-cased filename or a path segment.
var demoKeywords = []string{
	"demo",
	"trial",
	"lite",
	"limited",
	"beta",
	"preview",
}

// demoProductNames are known free-player/demo products whose names carry no
// demo keyword. Matched exactly against the lower-cased display name or a
// whole path segment.
var demoProductNames = map[string]bool{
	"kontakt player":   true,
	"kontakt 6 player": true,
	"kontakt 7 player": true,
	"kontakt 8 player": true,
	"halion sonic se":  true,
	"analog lab play":  true,
}

// IsDemo reports whether an installation looks like a demo, trial, or
// limited build, judged from its path and display name alone. Pure and
// total; no filesystem access.
func IsDemo(path, displayName string) bool {
	if demoProductNames[strings.ToLower(strings.TrimSpace(displayName))] {
		return true
	}
	segments := strings.FieldsFunc(strings.ToLower(path), func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, seg := range segments {
		if demoProductNames[seg] {
			return true
		}
		for _, kw := range demoKeywords {
			if strings.Contains(seg, kw) {
				return true
			}
		}
	}
	return false
}
