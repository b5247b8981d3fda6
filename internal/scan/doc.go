// SPDX-License-Identifier: MPL-2.0

// Package scan walks plugin installation directories and produces one raw
// installation record per matched file or bundle. Unreadable directories
// surface as per-source diagnostics, never as errors that abort the scan.
package scan
