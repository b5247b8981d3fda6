// SPDX-License-Identifier: MPL-2.0

// Package project recovers the set of third-party plugins actually loaded in
// a project file. Project files are gzip-compressed XML documents that embed
// two superficially similar kinds of plugin reference: devices instantiated
// in the project, and the user's plugin-browser navigation history. Only the
// former counts as usage, so extraction is a structural tree walk scoped to
// device wrappers rather than a field-name search over the whole document.
package project
