// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"regexp"
	"strings"
	"unicode"
)

// vendorPrefixes are vendor names that commonly get duplicated into plugin
// filenames ("FabFilter Pro-Q 3" vs the catalog's "Pro-Q 3"). Matched as a
// whole leading word, lowest-maintenance fixed set; kept deliberately small
// so normalization stays predictable.
var vendorPrefixes = []string{
	"fabfilter",
	"native instruments",
	"izotope",
	"arturia",
	"waves",
	"xfer records",
	"xfer",
	"u-he",
	"valhalla dsp",
	"soundtoys",
}

// annotationTokens are the packaging/bitness annotations that appear wrapped
// in parentheses or brackets in plugin filenames, e.g. "Serum (VST3)" or
// "Kontakt [Bundle]". An annotated and an unannotated spelling of the same
// product must normalize to the same key.
var annotationTokens = map[string]bool{
	"vst":        true,
	"vst2":       true,
	"vst3":       true,
	"vsti":       true,
	"au":         true,
	"audiounit":  true,
	"audio unit": true,
	"aax":        true,
	"bundle":     true,
	"x64":        true,
	"x86":        true,
	"64-bit":     true,
	"32-bit":     true,
	"64 bit":     true,
	"32 bit":     true,
	"win64":      true,
	"win32":      true,
}

// archSuffixTokens are bitness tokens that appear as bare trailing words
// ("Serum_x64") rather than wrapped annotations.
var archSuffixTokens = map[string]bool{
	"x64":   true,
	"x86":   true,
	"win64": true,
	"win32": true,
	"64bit": true,
	"32bit": true,
}

var bracketedRe = regexp.MustCompile(`[(\[][^)\]]*[)\]]`)

// Normalize maps a display string to the canonical comparison key used for
// consolidation and catalog lookup. Two display names that differ only by
// casing, packaging annotation, vendor-prefix duplication, or bitness suffix
// normalize to the same key. Total and idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	// Drop recognized "(VST3)"-style annotations before anything else so the
	// surrounding punctuation does not glue words together below.
	s = bracketedRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := strings.TrimSpace(m[1 : len(m)-1])
		if annotationTokens[inner] {
			return " "
		}
		return m
	})

	// Keep only [a-z0-9 _.-]; everything else is dropped outright.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '.' || r == '-':
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Underscores are word separators in filenames; fold them into spaces so
	// "Serum_x64" and "Serum x64" agree, then drop trailing bitness tokens.
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_'
	})
	for len(words) > 0 && archSuffixTokens[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	s = strings.Join(words, " ")

	// Strip known vendor prefixes, repeatedly: some filenames carry the
	// vendor twice ("Arturia Arturia Piano V3"). This runs last, on the
	// already-filtered string, so punctuation after the vendor word
	// ("Waves! Gold") cannot hide a prefix from the first pass.
	for {
		stripped := stripVendorPrefix(s)
		if stripped == s {
			break
		}
		s = stripped
	}
	return s
}

func stripVendorPrefix(s string) string {
	for _, prefix := range vendorPrefixes {
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		rest := s[len(prefix):]
		// Only treat it as a prefix when a separator follows; the product
		// name itself may equal the vendor name.
		if rest == "" || !strings.ContainsRune(" _-", rune(rest[0])) {
			continue
		}
		rest = strings.TrimLeft(rest, " _-")
		if rest != "" {
			return rest
		}
	}
	return s
}

// CleanDisplayName turns a raw filename stem into the user-facing display
// name: underscores become spaces, whitespace runs collapse, and each word
// gets a leading capital ("Serum_x64" -> "Serum X64"). Interior casing is
// preserved so "FabFilter" and "LABS" survive untouched.
func CleanDisplayName(raw string) string {
	words := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '_'
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
