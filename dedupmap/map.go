package dedupmap

import "github.com/ashikaga-bmk/beamkit/beamcore"

// Map is a fixed-capacity, open-addressed, linear-probing map from a
// fingerprint to an integer slot. It never resizes: capacity is fixed
// at construction and Probe reports overflow instead of growing.
//
// The zero value is not usable; construct with New.
type Map[H beamcore.Hash] struct {
	keys     []H
	values   []int
	occupied []bool
	capacity int
}

// New builds a Map with room for exactly capacity entries. capacity
// must be positive; callers validate this via beamcore.Config.Validate
// before construction, so New itself does not re-check it.
func New[H beamcore.Hash](capacity int) *Map[H] {
	return &Map[H]{
		keys:     make([]H, capacity),
		values:   make([]int, capacity),
		occupied: make([]bool, capacity),
		capacity: capacity,
	}
}

// Capacity returns the fixed slot count this Map was built with.
func (m *Map[H]) Capacity() int {
	return m.capacity
}

// Probe scans from k's home slot (k mod capacity) linearly until it
// finds either an occupied slot holding k (found=true) or the first
// free slot (found=false) at which k could be inserted. If a full
// probe cycle finds neither, the map is saturated and Probe returns
// beamcore.ErrDedupOverflow.
//
// Complexity: O(1) amortized, O(capacity) worst case.
func (m *Map[H]) Probe(k H) (found bool, slot int, err error) {
	n := uint64(m.capacity)
	home := uint64(k) % n

	var i uint64
	for i = 0; i < n; i++ {
		slot = int((home + i) % n)
		if !m.occupied[slot] {
			return false, slot, nil
		}
		if m.keys[slot] == k {
			return true, slot, nil
		}
	}

	return false, 0, beamcore.ErrDedupOverflow
}

// Set writes k/v into slot, marking it occupied. Callers must first
// obtain slot from Probe on the same k.
func (m *Map[H]) Set(slot int, k H, v int) {
	m.keys[slot] = k
	m.values[slot] = v
	m.occupied[slot] = true
}

// Get returns the value stored at slot. The caller must know slot is
// occupied (typically from a prior Probe that returned found=true).
func (m *Map[H]) Get(slot int) int {
	return m.values[slot]
}

// Clear zeroes the occupancy bitmap in bulk, forgetting every entry
// without touching capacity.
//
// Complexity: O(capacity).
func (m *Map[H]) Clear() {
	for i := range m.occupied {
		m.occupied[i] = false
	}
}
