package topk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashikaga-bmk/beamkit/topk"
)

func costsOf(cands []candidateView) []int {
	out := make([]int, len(cands))
	for i, c := range cands {
		out[i] = c.Cost
	}

	return out
}

type candidateView struct {
	Cost int
	Hash uint32
}

func view(sel *topk.Selector[int, int, uint32]) []candidateView {
	out := make([]candidateView, 0, sel.Len())
	for _, c := range sel.Select() {
		out = append(out, candidateView{Cost: c.Cost, Hash: c.Hash})
	}

	return out
}

func TestSelector_WarmUpThenFull(t *testing.T) {
	sel := topk.New[int, int, uint32](2, 32)

	assert.True(t, sel.Push(1, 10, 1, 0, false))
	assert.Equal(t, 1, sel.Len(), "warm-up mode still below beam width")

	assert.True(t, sel.Push(2, 5, 2, 0, false))
	assert.Equal(t, 2, sel.Len(), "max-structure built exactly at beam width")

	// Beam is now full at {5, 10}; a worse candidate is dropped.
	assert.False(t, sel.Push(3, 20, 3, 0, false))
	assert.Equal(t, 2, sel.Len())

	// A better candidate evicts the current worst (10).
	assert.True(t, sel.Push(4, 1, 4, 0, false))
	assert.ElementsMatch(t, []int{5, 1}, costsOf(view(sel)))
}

func TestSelector_DedupReplacesOnLowerCost(t *testing.T) {
	// Scenario c (spec §8): three children with costs (10, 20, 10) where
	// the two cost-10 children share a fingerprint; after one round the
	// beam holds exactly {10, 20}.
	sel := topk.New[int, int, uint32](2, 32)

	assert.True(t, sel.Push(1, 10, 42, 0, false))
	assert.True(t, sel.Push(2, 20, 7, 0, false))
	// Second cost-10 candidate shares fingerprint 42 with the first but
	// does not beat it, so it is dropped, not appended.
	assert.False(t, sel.Push(3, 10, 42, 0, false))

	assert.Equal(t, 2, sel.Len())
	assert.ElementsMatch(t, []int{10, 20}, costsOf(view(sel)))
}

func TestSelector_DedupReplacesWhenBetterArrives(t *testing.T) {
	sel := topk.New[int, int, uint32](2, 32)

	assert.True(t, sel.Push(1, 10, 42, 0, false))
	assert.True(t, sel.Push(2, 20, 7, 0, false))
	// Same fingerprint, lower cost: replaces in place, beam stays size 2.
	assert.True(t, sel.Push(3, 3, 42, 0, false))

	assert.Equal(t, 2, sel.Len())
	assert.ElementsMatch(t, []int{3, 20}, costsOf(view(sel)))
}

func TestSelector_FinishedCandidatesBypassBeam(t *testing.T) {
	sel := topk.New[int, int, uint32](1, 32)

	assert.True(t, sel.Push(1, 99, 1, 0, true))
	assert.Equal(t, 0, sel.Len(), "finished candidates never occupy a beam slot")
	assert.True(t, sel.HaveFinished())

	got := sel.FinishedCandidates()
	assert.Len(t, got, 1)
	assert.Equal(t, 99, got[0].Cost)

	sel.ClearFinished()
	assert.False(t, sel.HaveFinished())
}

func TestSelector_BestCandidateLinearScan(t *testing.T) {
	sel := topk.New[int, int, uint32](3, 64)
	sel.Push(1, 10, 1, 0, false)
	sel.Push(2, 5, 2, 0, false)
	sel.Push(3, 7, 3, 0, false)

	best, ok := sel.BestCandidate()
	assert.True(t, ok)
	assert.Equal(t, 5, best.Cost)
}

func TestSelector_BestCandidateEmpty(t *testing.T) {
	sel := topk.New[int, int, uint32](1, 32)
	_, ok := sel.BestCandidate()
	assert.False(t, ok)
}

func TestSelector_ClearReturnsToWarmUp(t *testing.T) {
	sel := topk.New[int, int, uint32](1, 32)
	sel.Push(1, 10, 1, 0, false)
	assert.Equal(t, 1, sel.Len())

	sel.Clear()
	assert.Equal(t, 0, sel.Len())

	// After Clear, pushing the same fingerprint again must not be
	// treated as a duplicate of the cleared entry.
	assert.True(t, sel.Push(2, 5, 1, 0, false))
	assert.Equal(t, 1, sel.Len())
}

func TestSelector_NoHashTreatsEveryPushAsDistinct(t *testing.T) {
	sel := topk.New[int, int, uint32](2, 0)

	assert.True(t, sel.Push(1, 10, 42, 0, false))
	assert.True(t, sel.Push(2, 10, 42, 0, false))
	assert.Equal(t, 2, sel.Len(), "dedup disabled: identical fingerprints do not collide")
}

func TestSelector_BeamWidthCapInvariant(t *testing.T) {
	// Invariant 2 (spec §8): |candidates| <= K always, == K once K
	// non-finished pushes have landed.
	sel := topk.New[int, int, uint32](3, 64)
	for i := 0; i < 10; i++ {
		sel.Push(i, 100-i, uint32(i), 0, false)
		assert.LessOrEqual(t, sel.Len(), 3)
	}
	assert.Equal(t, 3, sel.Len())
}
