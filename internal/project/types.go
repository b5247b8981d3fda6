// SPDX-License-Identifier: MPL-2.0

package project

import "time"

// ExtractedProject is the result of parsing one project file.
type ExtractedProject struct {
	// Name is the project's title attribute when the document carries one,
	// otherwise the source file's base name.
	Name string `json:"name"`
	// FilePath is the absolute path of the project file.
	FilePath string `json:"filePath"`
	// FileName is the base name of the project file.
	FileName string `json:"fileName"`
	// LastModifiedAt is the project file's modification time.
	LastModifiedAt time.Time `json:"lastModifiedAt"`
	// PluginNames is the sorted, de-duplicated set of third-party plugins
	// loaded as devices in the project. Browser-history references are
	// never included.
	PluginNames []string `json:"pluginNames"`
}
