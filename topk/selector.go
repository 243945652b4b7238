package topk

import "github.com/ashikaga-bmk/beamkit/beamcore"

// Selector retains the beamWidth best non-finished candidates under a
// cost order, deduplicating by fingerprint when hashing is enabled. It
// implements beamcore.Pusher and satisfies both edgebeam's single-depth
// round protocol and skipbeam.MultiSelectors' per-step deque.
//
// Selector starts in "warm-up" mode: candidates accumulate in a plain
// append list and costs are tracked in a parallel slice with no
// max-structure built. Exactly when the beamWidth-th non-finished
// candidate is admitted, a maxSegtree is built once from the current
// costs and the Selector switches to "full" mode for the rest of its
// life until Clear. This defers the O(K) construction cost until it is
// actually needed.
//
// The hashed/no-hash distinction is resolved once in New to a
// dedupStrategy value rather than carried as a bool Push checks on
// every candidate: Push always calls through dedup, and it is
// dedupStrategy's two implementing types, not a runtime branch, that
// make fingerprint lookup either real or free.
type Selector[A comparable, C beamcore.Cost, H beamcore.Hash] struct {
	beamWidth  int
	candidates []beamcore.Candidate[A, C, H]
	finished   []beamcore.Candidate[A, C, H]
	costs      []C
	dedup      dedupStrategy[H]
	full       bool
	seg        *maxSegtree[C]
}

// New builds a Selector retaining up to beamWidth non-finished
// candidates. hashMapCapacity of 0 disables deduplication entirely
// (the no-hash engine variant); otherwise it must already satisfy the
// 16x-beam-width lower bound enforced by beamcore.Config.Validate.
func New[A comparable, C beamcore.Cost, H beamcore.Hash](beamWidth, hashMapCapacity int) *Selector[A, C, H] {
	var dedup dedupStrategy[H]
	if hashMapCapacity > 0 {
		dedup = newHashedDedup[H](hashMapCapacity)
	} else {
		dedup = noDedup[H]{}
	}

	return &Selector[A, C, H]{
		beamWidth:  beamWidth,
		candidates: make([]beamcore.Candidate[A, C, H], 0, beamWidth),
		costs:      make([]C, beamWidth),
		dedup:      dedup,
	}
}

// Push admits one candidate. It implements beamcore.Pusher so a
// State.Expand can push into a Selector directly (edgebeam) or through
// skipbeam.MultiSelectors' forwarding.
//
// Complexity: O(1) amortized while filling, O(log beamWidth) once full.
func (s *Selector[A, C, H]) Push(action A, cost C, hash H, parent int, finished bool) bool {
	candidate := beamcore.Candidate[A, C, H]{Action: action, Cost: cost, Hash: hash, Parent: parent, Finished: finished}

	// 1. Finished candidates bypass the beam entirely.
	if finished {
		s.finished = append(s.finished, candidate)

		return true
	}

	// 2. Already full and no better than the current worst: drop.
	if s.full && cost >= s.seg.worstCost() {
		return false
	}

	return s.admit(candidate)
}

// admit runs candidate through s.dedup and inserts or replaces
// accordingly. For noDedup, probe never reports a match, so every
// candidate that reaches here falls straight through to insertion; the
// stale-dedup-entry self-healing below only triggers for hashedDedup,
// where a probe "found" match is honored only once the candidate
// actually stored at that slot is confirmed to still carry the
// matching fingerprint.
func (s *Selector[A, C, H]) admit(candidate beamcore.Candidate[A, C, H]) bool {
	found, mapSlot := s.dedup.probe(candidate.Hash)
	if found {
		j := s.dedup.candidateSlot(mapSlot)
		if s.candidates[j].Hash == candidate.Hash {
			return s.replaceIfBetter(j, candidate)
		}
		// Stale entry: mapSlot's mapped candidate no longer carries this
		// hash. Fall through and treat mapSlot as an insertion slot.
	}

	if s.full {
		j := s.seg.argmax()
		s.dedup.bind(mapSlot, candidate.Hash, j)
		s.candidates[j] = candidate
		s.seg.update(j, candidate.Cost)

		return true
	}

	j := len(s.candidates)
	s.dedup.bind(mapSlot, candidate.Hash, j)
	s.insertWhileFilling(candidate)

	return true
}

// replaceIfBetter overwrites the candidate at slot j only if the new
// cost beats it, in whichever mode (warm-up or full) the Selector is
// currently in.
func (s *Selector[A, C, H]) replaceIfBetter(j int, candidate beamcore.Candidate[A, C, H]) bool {
	if s.full {
		if candidate.Cost >= s.seg.get(j) {
			return false
		}
		s.candidates[j] = candidate
		s.seg.update(j, candidate.Cost)

		return true
	}

	if candidate.Cost >= s.costs[j] {
		return false
	}
	s.candidates[j] = candidate
	s.costs[j] = candidate.Cost

	return true
}

// insertWhileFilling appends candidate as a brand new slot during
// warm-up mode and builds the max-structure exactly once the beam
// reaches capacity.
func (s *Selector[A, C, H]) insertWhileFilling(candidate beamcore.Candidate[A, C, H]) {
	j := len(s.candidates)
	s.candidates = append(s.candidates, candidate)
	s.costs[j] = candidate.Cost

	if len(s.candidates) == s.beamWidth {
		s.full = true
		s.seg = buildMaxSegtree(s.costs)
	}
}

// Select returns the current top-K view. Callers must not mutate the
// returned slice; it aliases Selector's internal storage.
func (s *Selector[A, C, H]) Select() []beamcore.Candidate[A, C, H] {
	return s.candidates
}

// HaveFinished reports whether any finished candidate has been pushed
// since the last ClearFinished.
func (s *Selector[A, C, H]) HaveFinished() bool {
	return len(s.finished) > 0
}

// FinishedCandidates returns every candidate pushed with finished=true
// since the last ClearFinished.
func (s *Selector[A, C, H]) FinishedCandidates() []beamcore.Candidate[A, C, H] {
	return s.finished
}

// ClearFinished drops the finished-candidate side channel without
// touching the beam.
func (s *Selector[A, C, H]) ClearFinished() {
	s.finished = s.finished[:0]
}

// BestCandidate returns the lowest-cost candidate currently retained,
// by linear scan; this is correct whether or not the max-structure has
// been built, since it reads Candidate.Cost directly rather than the
// warm-up costs slice or the segtree.
//
// Complexity: O(beamWidth).
func (s *Selector[A, C, H]) BestCandidate() (beamcore.Candidate[A, C, H], bool) {
	if len(s.candidates) == 0 {
		var zero beamcore.Candidate[A, C, H]

		return zero, false
	}

	best := 0
	for i := 1; i < len(s.candidates); i++ {
		if s.candidates[i].Cost < s.candidates[best].Cost {
			best = i
		}
	}

	return s.candidates[best], true
}

// Clear drops all non-finished state and returns the Selector to
// warm-up mode. Finished candidates are untouched; call ClearFinished
// separately.
func (s *Selector[A, C, H]) Clear() {
	s.candidates = s.candidates[:0]
	s.full = false
	s.seg = nil
	s.dedup.clear()
}

// Len returns the number of non-finished candidates currently held.
func (s *Selector[A, C, H]) Len() int {
	return len(s.candidates)
}
