package topk

import (
	"github.com/ashikaga-bmk/beamkit/beamcore"
	"github.com/ashikaga-bmk/beamkit/dedupmap"
)

// dedupStrategy is the admission policy a Selector is built with: either
// fingerprint deduplication backed by a dedupmap.Map, or no
// deduplication at all. It is resolved once, in New, to one of the two
// types below; Selector.Push then calls through this field rather than
// branching on a stored bool, so the hashed/no-hash choice never costs
// a per-candidate conditional.
type dedupStrategy[H beamcore.Hash] interface {
	// probe reports whether hash is already tracked and the map slot to
	// bind it at either way. hashedDedup consults the fingerprint map;
	// noDedup always reports no match, so every candidate that reaches
	// it is treated as new.
	probe(hash H) (found bool, mapSlot int)
	// candidateSlot resolves a matched probe's bound candidate index.
	candidateSlot(mapSlot int) int
	// bind records that mapSlot now maps hash to candidateIndex.
	bind(mapSlot int, hash H, candidateIndex int)
	clear()
}

// hashedDedup is the dedup-enabled strategy, backed by a fixed-capacity
// dedupmap.Map. An overflow of that map is a fatal invariant violation,
// raised rather than returned since probe's boolean result has no room
// for a second, unrelated failure mode.
type hashedDedup[H beamcore.Hash] struct {
	m *dedupmap.Map[H]
}

func newHashedDedup[H beamcore.Hash](capacity int) hashedDedup[H] {
	return hashedDedup[H]{m: dedupmap.New[H](capacity)}
}

func (d hashedDedup[H]) probe(hash H) (bool, int) {
	found, slot, err := d.m.Probe(hash)
	if err != nil {
		beamcore.RaiseInvariant("dedup map overflow while pushing candidate")
	}

	return found, slot
}

func (d hashedDedup[H]) candidateSlot(mapSlot int) int { return d.m.Get(mapSlot) }

func (d hashedDedup[H]) bind(mapSlot int, hash H, candidateIndex int) { d.m.Set(mapSlot, hash, candidateIndex) }

func (d hashedDedup[H]) clear() { d.m.Clear() }

// noDedup is the no-hash engine variant's strategy: every candidate is
// always new.
type noDedup[H beamcore.Hash] struct{}

func (noDedup[H]) probe(H) (bool, int)   { return false, 0 }
func (noDedup[H]) candidateSlot(int) int { return 0 }
func (noDedup[H]) bind(int, H, int)      {}
func (noDedup[H]) clear()                {}
