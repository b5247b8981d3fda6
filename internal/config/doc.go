// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the plugscan configuration: where to
// scan for plugins, where the curated catalog and persisted snapshots live,
// and UI preferences. Config files are CUE documents validated against an
// embedded schema before being merged into Viper.
package config
