package skipbeam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashikaga-bmk/beamkit/skipbeam"
)

// trivialState never gets called: max_turn=0 means the round loop body
// never runs (scenario a, spec §8).
type trivialState struct{}

func (*trivialState) Expand(int, *skipbeam.MultiSelectors[int, int, uint32]) {}
func (*trivialState) MoveForward(int)                                       {}
func (*trivialState) MoveBackward(int)                                      {}

func TestSearch_TrivialMaxTurnZero(t *testing.T) {
	cfg := skipbeam.NewConfig(
		skipbeam.WithMaxTurn(0),
		skipbeam.WithBeamWidth(1),
		skipbeam.WithHashMapCapacity(16),
		skipbeam.WithNodesCapacity(4),
	)

	path, err := skipbeam.Search[int, int, uint32, *trivialState](context.Background(), cfg, &trivialState{}, 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, path)
}

// chainState always proposes exactly one step-1 child whose cost
// decreases by one each round, mirroring edgebeam's own scenario-b
// fixture but driven through Engine SKIP's node-pool tree instead of a
// flat tour: scenario b, spec §8.
type chainState struct {
	depth int
}

func (s *chainState) Expand(parentSlot int, sel *skipbeam.MultiSelectors[int, int, uint32]) {
	cost := 5 - s.depth
	sel.Push(s.depth, cost, uint32(s.depth), parentSlot, false, 1)
}

func (s *chainState) MoveForward(int)  { s.depth++ }
func (s *chainState) MoveBackward(int) { s.depth-- }

func TestSearch_SinglePathBeamWidthOne(t *testing.T) {
	cfg := skipbeam.NewConfig(
		skipbeam.WithMaxTurn(5),
		skipbeam.WithBeamWidth(1),
		skipbeam.WithHashMapCapacity(32),
		skipbeam.WithNodesCapacity(16),
	)

	path, err := skipbeam.Search[int, int, uint32, *chainState](context.Background(), cfg, &chainState{}, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)

	// Path round-trip (invariant 5, spec §8).
	replay := &chainState{}
	for _, a := range path {
		replay.MoveForward(a)
	}
	assert.Equal(t, len(path), replay.depth)
}

// finishOnSecondExpand yields a finished candidate on its second
// Expand call: scenario d, spec §8, adapted for SKIP which always
// returns on the first finished candidate it meets (there is no
// return_finished_immediately knob to toggle here).
type finishOnSecondExpand struct {
	expandCount int
}

func (s *finishOnSecondExpand) Expand(parentSlot int, sel *skipbeam.MultiSelectors[int, int, uint32]) {
	s.expandCount++
	if s.expandCount == 2 {
		sel.Push(s.expandCount, 0, uint32(s.expandCount), parentSlot, true, 1)

		return
	}
	sel.Push(s.expandCount, 10-s.expandCount, uint32(s.expandCount), parentSlot, false, 1)
}

func (*finishOnSecondExpand) MoveForward(int)  {}
func (*finishOnSecondExpand) MoveBackward(int) {}

func TestSearch_ImmediateReturnOnFinished(t *testing.T) {
	cfg := skipbeam.NewConfig(
		skipbeam.WithMaxTurn(10),
		skipbeam.WithBeamWidth(1),
		skipbeam.WithHashMapCapacity(32),
		skipbeam.WithNodesCapacity(16),
	)

	path, err := skipbeam.Search[int, int, uint32, *finishOnSecondExpand](context.Background(), cfg, &finishOnSecondExpand{}, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, path)
}

// dedupState proposes three children per round with costs 10, 20, 10,
// where the two cost-10 children share a fingerprint: scenario c,
// spec §8, exercised end-to-end through Engine SKIP.
type dedupState struct {
	expanded bool
}

func (s *dedupState) Expand(parentSlot int, sel *skipbeam.MultiSelectors[int, int, uint32]) {
	if s.expanded {
		return
	}
	s.expanded = true
	sel.Push(1, 10, 42, parentSlot, false, 1)
	sel.Push(2, 20, 7, parentSlot, false, 1)
	sel.Push(3, 10, 42, parentSlot, false, 1)
}

func (*dedupState) MoveForward(int)  {}
func (*dedupState) MoveBackward(int) {}

func TestSearch_DedupWithinOneRound(t *testing.T) {
	cfg := skipbeam.NewConfig(
		skipbeam.WithMaxTurn(1),
		skipbeam.WithBeamWidth(2),
		skipbeam.WithHashMapCapacity(32),
		skipbeam.WithNodesCapacity(16),
	)

	path, err := skipbeam.Search[int, int, uint32, *dedupState](context.Background(), cfg, &dedupState{}, 0, 0)
	assert.NoError(t, err)
	// Beam width 2, single turn: the engine falls through to the
	// last-turn branch and returns the single best (lowest-cost) action.
	assert.Equal(t, []int{1}, path)
}

// skipTwoState pushes only step-2 candidates, forever: scenario f,
// spec §8. Every odd round (by construction of the multi-selector
// rotation) pops an empty selector and does no grafting; the search
// still terminates, and the path length equals the number of rounds
// whose popped selector was non-empty.
type skipTwoState struct {
	round int
}

func (s *skipTwoState) Expand(parentSlot int, sel *skipbeam.MultiSelectors[int, int, uint32]) {
	sel.Push(s.round, 100-s.round, uint32(s.round), parentSlot, false, 2)
	s.round++
}

func (*skipTwoState) MoveForward(int)  {}
func (*skipTwoState) MoveBackward(int) {}

func TestSearch_SkipStepTwo(t *testing.T) {
	cfg := skipbeam.NewConfig(
		skipbeam.WithMaxTurn(4),
		skipbeam.WithBeamWidth(1),
		skipbeam.WithHashMapCapacity(32),
		skipbeam.WithNodesCapacity(16),
	)

	path, err := skipbeam.Search[int, int, uint32, *skipTwoState](context.Background(), cfg, &skipTwoState{}, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, path)
}

// nodeReuseState exercises the object pool's free-list reuse: each
// Expand call proposes two children cheaper than any earlier call's, so
// with a beam width of 2 both survivors come from the last leaf
// expanded, the other leaf gets no child and dies, and the pool reclaims
// and reissues its slot, which would corrupt sibling pointers if
// removeLeaf's splicing were wrong.
type nodeReuseState struct {
	round int
}

func (s *nodeReuseState) Expand(parentSlot int, sel *skipbeam.MultiSelectors[int, int, uint32]) {
	base := s.round * 10
	cost := 1000 - 10*s.round
	sel.Push(base+1, cost, uint32(base+1), parentSlot, false, 1)
	sel.Push(base+2, cost+1, uint32(base+2), parentSlot, false, 1)
	s.round++
}

func (*nodeReuseState) MoveForward(int)  {}
func (*nodeReuseState) MoveBackward(int) {}

func TestSearch_NodePoolReuseAcrossRounds(t *testing.T) {
	cfg := skipbeam.NewConfig(
		skipbeam.WithMaxTurn(6),
		skipbeam.WithBeamWidth(2),
		skipbeam.WithHashMapCapacity(64),
		skipbeam.WithNodesCapacity(8),
	)

	path, err := skipbeam.Search[int, int, uint32, *nodeReuseState](context.Background(), cfg, &nodeReuseState{}, 0, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, path)
}

// TestSearch_NoHashMapCapacity reuses chainState with dedup disabled
// (HashMapCapacity 0), proving the full round loop still resolves the
// single-path scenario when every candidate is treated as new.
func TestSearch_NoHashMapCapacity(t *testing.T) {
	cfg := skipbeam.NewConfig(
		skipbeam.WithMaxTurn(5),
		skipbeam.WithBeamWidth(1),
		skipbeam.WithHashMapCapacity(0),
		skipbeam.WithNodesCapacity(16),
	)

	path, err := skipbeam.Search[int, int, uint32, *chainState](context.Background(), cfg, &chainState{}, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
}
