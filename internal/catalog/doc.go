// SPDX-License-Identifier: MPL-2.0

// Package catalog loads the curated plugin metadata document and matches
// consolidated inventory entities against it. The catalog is an immutable
// snapshot per scan; matching never mutates it.
package catalog
