package dedupmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashikaga-bmk/beamkit/beamcore"
	"github.com/ashikaga-bmk/beamkit/dedupmap"
)

func TestMap_ProbeEmptySlotIsFree(t *testing.T) {
	m := dedupmap.New[uint32](8)

	found, slot, err := m.Probe(5)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 5, slot)
}

func TestMap_SetThenProbeFindsKey(t *testing.T) {
	m := dedupmap.New[uint32](8)

	_, slot, err := m.Probe(5)
	assert.NoError(t, err)
	m.Set(slot, 5, 42)

	found, slot2, err := m.Probe(5)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, slot, slot2)
	assert.Equal(t, 42, m.Get(slot2))
}

func TestMap_CollisionLinearProbes(t *testing.T) {
	m := dedupmap.New[uint32](4)

	// 1 and 5 collide at home slot 1 (5 mod 4 == 1).
	_, s1, err := m.Probe(1)
	assert.NoError(t, err)
	m.Set(s1, 1, 100)

	found, s5, err := m.Probe(5)
	assert.NoError(t, err)
	assert.False(t, found, "5 is a distinct key and must not be reported as found")
	assert.NotEqual(t, s1, s5, "5 must probe past the slot occupied by 1")
}

func TestMap_OverflowOnFullCycle(t *testing.T) {
	m := dedupmap.New[uint32](2)

	_, s0, err := m.Probe(0)
	assert.NoError(t, err)
	m.Set(s0, 0, 1)

	_, s1, err := m.Probe(1)
	assert.NoError(t, err)
	m.Set(s1, 1, 2)

	_, _, err = m.Probe(2)
	assert.ErrorIs(t, err, beamcore.ErrDedupOverflow)
}

func TestMap_ClearForgetsEntries(t *testing.T) {
	m := dedupmap.New[uint32](4)

	_, slot, err := m.Probe(7)
	assert.NoError(t, err)
	m.Set(slot, 7, 1)

	m.Clear()

	found, _, err := m.Probe(7)
	assert.NoError(t, err)
	assert.False(t, found, "Clear must drop all entries")
}

func TestMap_CapacityReportsConstructedSize(t *testing.T) {
	m := dedupmap.New[uint32](16)
	assert.Equal(t, 16, m.Capacity())
}
