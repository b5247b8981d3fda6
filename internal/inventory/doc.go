// SPDX-License-Identifier: MPL-2.0

// Package inventory defines the core domain types of the plugin inventory
// and the consolidation pass that folds raw per-file scan findings into one
// logical entity per plugin product, regardless of how many binary formats
// the product ships as.
package inventory
