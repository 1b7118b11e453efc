// Package store persists the tool's state (installed capacity, PLF,
// and daily records) as three independent JSON documents in a local
// state directory. Reads are best-effort: missing or corrupt documents
// degrade to empty defaults and never fail the caller.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skanodia/gridcap/internal/grid"
	"github.com/skanodia/gridcap/internal/logging"
)

// File names of the three persisted documents.
const (
	installedFile = "installed_capacity.json"
	plfFile       = "plf.json"
	dailyFile     = "daily_records.json"
)

// stateFileMode is the permission for persisted documents.
const stateFileMode = 0600

// stateDirMode is the permission for the state directory.
const stateDirMode = 0700

// Store is the persistence boundary injected into the CLI. Loads return
// empty (never nil) maps when no state exists.
type Store interface {
	LoadInstalled(ctx context.Context) grid.CapacitySnapshot
	SaveInstalled(ctx context.Context, s grid.CapacitySnapshot) error
	LoadPLF(ctx context.Context) grid.PLF
	SavePLF(ctx context.Context, p grid.PLF) error
	LoadDaily(ctx context.Context) grid.DailyRecords
	SaveDaily(ctx context.Context, r grid.DailyRecords) error
	ClearDaily(ctx context.Context) error
}

// FileStore implements Store on a directory of JSON files.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed and returns a
// FileStore rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, stateDirMode); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the state directory path.
func (s *FileStore) Dir() string { return s.dir }

// load reads one document into out. Any failure leaves out untouched
// and is logged at debug; corrupted or unavailable storage degrades to
// defaults, never a crash.
func (s *FileStore) load(ctx context.Context, name string, out any) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		logging.FromContext(ctx).Debug().
			Str("component", "store").
			Str("file", name).
			Err(err).
			Msg("ignoring corrupt state document")
	}
}

// save writes one document atomically via a temp-file rename.
func (s *FileStore) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	tmp := filepath.Join(s.dir, name+".tmp")
	if err := os.WriteFile(tmp, data, stateFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

// LoadInstalled returns the persisted installed-capacity snapshot.
func (s *FileStore) LoadInstalled(ctx context.Context) grid.CapacitySnapshot {
	out := make(grid.CapacitySnapshot)
	s.load(ctx, installedFile, &out)
	return out
}

// SaveInstalled persists the installed-capacity snapshot.
func (s *FileStore) SaveInstalled(_ context.Context, snap grid.CapacitySnapshot) error {
	return s.save(installedFile, snap)
}

// LoadPLF returns the persisted plant load factors.
func (s *FileStore) LoadPLF(ctx context.Context) grid.PLF {
	out := make(grid.PLF)
	s.load(ctx, plfFile, &out)
	return out
}

// SavePLF persists the plant load factors.
func (s *FileStore) SavePLF(_ context.Context, p grid.PLF) error {
	return s.save(plfFile, p)
}

// LoadDaily returns the persisted daily records.
func (s *FileStore) LoadDaily(ctx context.Context) grid.DailyRecords {
	out := make(grid.DailyRecords)
	s.load(ctx, dailyFile, &out)
	return out
}

// SaveDaily persists the daily records.
func (s *FileStore) SaveDaily(_ context.Context, r grid.DailyRecords) error {
	return s.save(dailyFile, r)
}

// ClearDaily removes every daily record.
func (s *FileStore) ClearDaily(_ context.Context) error {
	return s.save(dailyFile, grid.DailyRecords{})
}
