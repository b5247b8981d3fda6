// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error building blocks: ActionableError
// carries operation/resource/suggestion context for rendering by the CLI
// layer, and the issue registry holds the markdown help cards shown for
// well-known failure situations.
package issue
