// SPDX-License-Identifier: MPL-2.0

// Package store persists inventory and project snapshots as flat record
// documents: a JSON envelope, snappy-compressed on disk, replaced atomically
// as a whole. Snapshots are superseded, never merged.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/snappy"

	"plugscan-cli/internal/inventory"
	"plugscan-cli/internal/project"
)

const (
	// snapshotVersion is bumped when the envelope layout changes.
	snapshotVersion = 1

	inventoryFile = "inventory.snapshot"
	projectsFile  = "projects.snapshot"
)

// ErrCorrupt is returned when a snapshot fails checksum verification.
var ErrCorrupt = errors.New("snapshot corrupt")

// envelope wraps a record payload with enough provenance to verify it.
type envelope struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"savedAt"`
	// Checksum is the sha256 of the uncompressed Records payload.
	Checksum string          `json:"checksum"`
	Records  json.RawMessage `json:"records"`
}

// Store reads and writes snapshot documents under one directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// SaveInventory atomically replaces the persisted inventory snapshot.
func (s *Store) SaveInventory(plugins []*inventory.ConsolidatedPlugin) error {
	return s.save(inventoryFile, plugins)
}

// LoadInventory reads the persisted inventory snapshot. A missing snapshot
// returns os.ErrNotExist.
func (s *Store) LoadInventory() ([]*inventory.ConsolidatedPlugin, error) {
	var plugins []*inventory.ConsolidatedPlugin
	if err := s.load(inventoryFile, &plugins); err != nil {
		return nil, err
	}
	return plugins, nil
}

// SaveProjects atomically replaces the persisted extracted-project records.
func (s *Store) SaveProjects(projects []project.ExtractedProject) error {
	return s.save(projectsFile, projects)
}

// LoadProjects reads the persisted extracted-project records.
func (s *Store) LoadProjects() ([]project.ExtractedProject, error) {
	var projects []project.ExtractedProject
	if err := s.load(projectsFile, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Verify checks both persisted snapshots: present documents must decompress
// and their payload checksum must match. Missing documents are fine.
func (s *Store) Verify() error {
	for _, name := range []string{inventoryFile, projectsFile} {
		if _, err := s.read(name); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *Store) save(name string, records any) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s records: %w", name, err)
	}
	sum := sha256.Sum256(payload)
	doc, err := json.Marshal(envelope{
		Version:  snapshotVersion,
		SavedAt:  time.Now().UTC(),
		Checksum: hex.EncodeToString(sum[:]),
		Records:  payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// Write-then-rename so readers never observe a partial snapshot.
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()
	_, writeErr := tmp.Write(snappy.Encode(nil, doc))
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr != nil {
			return fmt.Errorf("failed to write snapshot: %w", writeErr)
		}
		return fmt.Errorf("failed to write snapshot: %w", closeErr)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

func (s *Store) load(name string, out any) error {
	env, err := s.read(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(env.Records, out); err != nil {
		return fmt.Errorf("failed to decode %s records: %w", name, err)
	}
	return nil
}

func (s *Store) read(name string) (*envelope, error) {
	path := filepath.Join(s.dir, name)
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot %s: %w", path, err)
	}
	var env envelope
	if err := json.Unmarshal(doc, &env); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	sum := sha256.Sum256(env.Records)
	if hex.EncodeToString(sum[:]) != env.Checksum {
		return nil, fmt.Errorf("%s: checksum mismatch: %w", path, ErrCorrupt)
	}
	return &env, nil
}
