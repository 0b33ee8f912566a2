package span

import (
	"sort"

	"github.com/hdlforge/spanalyze/pkg/hdlval"
)

// ValueEntry is one (key, owned value) pair of a ValueMap.
type ValueEntry struct {
	Index ValueIndex
	Value hdlval.Value
}

// ValueMap is an ordered, interval-keyed partition of a span. Keys are
// pairwise non-overlapping and kept in ascending order; Values are
// exclusively owned by the map once inserted.
//
// The zero value is an empty ValueMap, ready to use.
type ValueMap struct {
	entries []ValueEntry
}

// Len reports the number of entries.
func (m *ValueMap) Len() int { return len(m.entries) }

// At returns the entry at position i in ascending partition order.
func (m *ValueMap) At(i int) ValueEntry { return m.entries[i] }

// Entries returns a snapshot of the map's entries in ascending
// partition order. The returned slice is a copy; mutating it does not
// affect the map.
func (m *ValueMap) Entries() []ValueEntry {
	out := make([]ValueEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// search returns the index of the first entry not strictly before key
// (i.e. overlapping or after). If no such entry exists, it returns
// len(m.entries).
func (m *ValueMap) search(key ValueIndex) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return !m.entries[i].Index.Less(key)
	})
}

// Covers reports whether some entry overlaps key.
func (m *ValueMap) Covers(key ValueIndex) bool {
	i := m.search(key)
	return i < len(m.entries) && m.entries[i].Index.Overlaps(key)
}

// Insert adds (key, val) to the map, taking ownership of val. Any
// existing entry whose interval overlaps key is removed first — the
// invariant-preserving wrapper the spec calls for in languages whose
// ordered containers can't host a weak order over overlapping keys.
// Per boundary B3, a later Insert wins over an earlier overlapping one.
func (m *ValueMap) Insert(key ValueIndex, val hdlval.Value) {
	if len(m.entries) > 0 {
		filtered := m.entries[:0]
		for _, e := range m.entries {
			if !e.Index.Overlaps(key) {
				filtered = append(filtered, e)
			}
		}
		m.entries = filtered
	}
	i := m.search(key)
	m.entries = append(m.entries, ValueEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = ValueEntry{Index: key, Value: val}
}

// ReplaceSpan replaces entries [i, j) with a single entry, used by the
// merger to fuse two adjacent partitions into one.
func (m *ValueMap) ReplaceSpan(i, j int, merged ValueEntry) {
	tail := append([]ValueEntry{}, m.entries[j:]...)
	m.entries = append(m.entries[:i], merged)
	m.entries = append(m.entries, tail...)
}

// SetAt replaces the value at entry i in place, keeping its key.
// Used by the refiner's prefix-collapse pass.
func (m *ValueMap) SetAt(i int, val hdlval.Value) {
	m.entries[i].Value = val
}

// Reset clears the map to empty, releasing its entries for
// collection. Used by the refiner's all-others collapse.
func (m *ValueMap) Reset() {
	m.entries = nil
}
