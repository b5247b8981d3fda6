// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities: GOOS
// name constants and the per-OS tables of default plugin installation
// directories.
package platform
