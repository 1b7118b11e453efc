package store

import (
	"context"
	"maps"

	"github.com/skanodia/gridcap/internal/grid"
)

// MemStore is an in-memory Store used by tests and by the bootstrap dry
// run. It copies maps on the way in and out so callers cannot alias the
// stored state.
type MemStore struct {
	installed grid.CapacitySnapshot
	plf       grid.PLF
	daily     grid.DailyRecords
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		installed: make(grid.CapacitySnapshot),
		plf:       make(grid.PLF),
		daily:     make(grid.DailyRecords),
	}
}

// LoadInstalled returns a copy of the stored installed capacity.
func (m *MemStore) LoadInstalled(context.Context) grid.CapacitySnapshot {
	return maps.Clone(m.installed)
}

// SaveInstalled replaces the stored installed capacity.
func (m *MemStore) SaveInstalled(_ context.Context, s grid.CapacitySnapshot) error {
	m.installed = maps.Clone(s)
	return nil
}

// LoadPLF returns a copy of the stored plant load factors.
func (m *MemStore) LoadPLF(context.Context) grid.PLF {
	return maps.Clone(m.plf)
}

// SavePLF replaces the stored plant load factors.
func (m *MemStore) SavePLF(_ context.Context, p grid.PLF) error {
	m.plf = maps.Clone(p)
	return nil
}

// LoadDaily returns a copy of the stored daily records.
func (m *MemStore) LoadDaily(context.Context) grid.DailyRecords {
	return maps.Clone(m.daily)
}

// SaveDaily replaces the stored daily records.
func (m *MemStore) SaveDaily(_ context.Context, r grid.DailyRecords) error {
	m.daily = maps.Clone(r)
	return nil
}

// ClearDaily removes every daily record.
func (m *MemStore) ClearDaily(context.Context) error {
	m.daily = make(grid.DailyRecords)
	return nil
}
