// SPDX-License-Identifier: MPL-2.0

package project

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxDocumentBytes caps the inflated document size so a corrupt or
// malicious container cannot exhaust memory. Real project files stay well
// under this.
const maxDocumentBytes = 256 << 20

// DecodeFile reads a project file and returns the contained markup document.
// Project files are normally gzip containers; a file without a gzip header
// is passed through as-is, since some exporters write the document
// uncompressed.
func DecodeFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	return Decode(raw)
}

// Decode inflates a gzip container into the markup document text.
func Decode(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		if errors.Is(err, gzip.ErrHeader) {
			return raw, nil
		}
		return nil, fmt.Errorf("failed to open project container: %w", err)
	}
	defer zr.Close()

	doc, err := io.ReadAll(io.LimitReader(zr, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress project container: %w", err)
	}
	if len(doc) > maxDocumentBytes {
		return nil, fmt.Errorf("decompressed project document exceeds %d bytes", maxDocumentBytes)
	}
	return doc, nil
}
