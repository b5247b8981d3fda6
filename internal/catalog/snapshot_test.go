// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"plugscan-cli/internal/testutil"
)

func TestNewSnapshot_RenormalizesKeys(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot(map[string]Entry{
		"Serum (VST3)": {Name: "Serum"},
	})

	if _, ok := snap.Get("serum"); !ok {
		t.Error("Get(\"serum\") missed; keys should be stored normalized")
	}
	if snap.Len() != 1 {
		t.Errorf("Len() = %d, want 1", snap.Len())
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	testutil.MustWriteFile(t, path, []byte(`
serum:
  name: Serum
  vendor: Xfer Records
  category: Synthesizer
  subcategory: Wavetable
  tags: [synth, wavetable]
  website: https://xferrecords.com/products/serum
  price: "$189"
  popularity: 98
  releaseYear: 2014
pro-q 3:
  name: Pro-Q 3
  vendor: FabFilter
`))

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if snap.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", snap.Len())
	}
	entry, ok := snap.Get("serum")
	if !ok {
		t.Fatal("Get(\"serum\") missed")
	}
	if entry.Vendor != "Xfer Records" || entry.ReleaseYear != 2014 || len(entry.Tags) != 2 {
		t.Errorf("entry fields not parsed: %+v", entry)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() succeeded on a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want to wrap os.ErrNotExist", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	testutil.MustWriteFile(t, path, []byte("]: not yaml ["))

	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on invalid YAML")
	}
}
