package edgebeam

import (
	"github.com/ashikaga-bmk/beamkit/beamcore"
	"github.com/ashikaga-bmk/beamkit/topk"
)

// tourKind tags one record of the Euler tour. This is the tagged
// variant spec.md §9 recommends in place of the original library's
// -1/-2 leaf-index sentinels.
type tourKind uint8

const (
	tourLeaf tourKind = iota
	tourForward
	tourBackward
)

// tourRecord is one entry of the Euler tour: either a leaf carrying the
// action that reaches it and its slot into tree.leaves, or a forward/
// backward edge carrying only the action.
type tourRecord[A comparable] struct {
	kind   tourKind
	leaf   int
	action A
}

// leafData is the per-leaf payload stored out-of-line from the tour
// itself, mirroring the original library's parallel leaves_ array.
type leafData[C beamcore.Cost, H beamcore.Hash] struct {
	cost C
	hash H
}

// bucketEntry stages one child waiting to be grafted beneath its
// parent leaf during the next update.
type bucketEntry[A comparable, C beamcore.Cost, H beamcore.Hash] struct {
	action A
	cost   C
	hash   H
}

// tree owns the Euler tour, the leaf payload array, the per-leaf graft
// buckets and the permanently committed direct-road prefix. It knows
// nothing about the Selector's internals; it only consumes the slice
// Select() returns.
type tree[A comparable, C beamcore.Cost, H beamcore.Hash] struct {
	currTour   []tourRecord[A]
	nextTour   []tourRecord[A]
	leaves     []leafData[C, H]
	buckets    [][]bucketEntry[A, C, H]
	directRoad []A
}

func newTree[A comparable, C beamcore.Cost, H beamcore.Hash](tourCapacity, beamWidth int) *tree[A, C, H] {
	return &tree[A, C, H]{
		currTour: make([]tourRecord[A], 0, tourCapacity),
		nextTour: make([]tourRecord[A], 0, tourCapacity),
		leaves:   make([]leafData[C, H], 0, beamWidth),
		buckets:  make([][]bucketEntry[A, C, H], beamWidth),
	}
}

// edgeState is the narrow State shape update needs: update never calls
// Expand (only dfs does), but its direct-road collapse must advance the
// same state.
type edgeState[A comparable, C beamcore.Cost, H beamcore.Hash] interface {
	MoveForward(A)
	MoveBackward(A)
}

// dfs walks the current tour, driving state incrementally and invoking
// Expand at every leaf. On the first round (empty tour) it primes the
// root via MakeInitialNode and expands slot 0 directly.
func (t *tree[A, C, H]) dfs(
	state beamcore.State[A, C, H, *topk.Selector[A, C, H]],
	selector *topk.Selector[A, C, H],
) {
	if len(t.currTour) == 0 {
		_, _ = state.MakeInitialNode()
		state.Expand(0, selector)

		return
	}

	for _, rec := range t.currTour {
		switch rec.kind {
		case tourLeaf:
			state.MoveForward(rec.action)
			state.Expand(rec.leaf, selector)
			state.MoveBackward(rec.action)
		case tourForward:
			state.MoveForward(rec.action)
		case tourBackward:
			state.MoveBackward(rec.action)
		}
	}
}

// update rewrites the tour one depth deeper from candidates, the
// current round's survivors. See SPEC_FULL.md / spec.md §4.C for the
// five sub-steps this implements: direct-road collapse, bucket
// distribution, the linear tour rewrite, leaf elision and
// singleton-interior elision.
func (t *tree[A, C, H]) update(state edgeState[A, C, H], candidates []beamcore.Candidate[A, C, H]) {
	t.leaves = t.leaves[:0]

	// First round: the tour is empty, so every candidate simply becomes
	// a top-level leaf directly beneath the implicit root.
	if len(t.currTour) == 0 {
		for _, c := range candidates {
			t.currTour = append(t.currTour, tourRecord[A]{kind: tourLeaf, leaf: len(t.leaves), action: c.Action})
			t.leaves = append(t.leaves, leafData[C, H]{cost: c.Cost, hash: c.Hash})
		}

		return
	}

	// (c) Distribute every new candidate into its parent leaf's bucket.
	for _, c := range candidates {
		t.buckets[c.Parent] = append(t.buckets[c.Parent], bucketEntry[A, C, H]{action: c.Action, cost: c.Cost, hash: c.Hash})
	}

	// (b) Direct-road collapse: while the tour's first record is a
	// forward edge matching the tour's current last action, the whole
	// tour is a single unbranching path; commit it permanently and
	// shrink from both ends in lockstep.
	i, n := 0, len(t.currTour)
	for i < n && t.currTour[i].kind == tourForward && t.currTour[i].action == t.currTour[n-1].action {
		action := t.currTour[i].action
		i++
		state.MoveForward(action)
		t.directRoad = append(t.directRoad, action)
		n--
	}
	remaining := t.currTour[i:n]

	// (d) Linear pass over the remaining tour.
	for _, rec := range remaining {
		switch rec.kind {
		case tourLeaf:
			entries := t.buckets[rec.leaf]
			if len(entries) == 0 {
				// This leaf has no surviving children: it dies, omitted
				// from next_tour entirely.
				continue
			}

			t.nextTour = append(t.nextTour, tourRecord[A]{kind: tourForward, action: rec.action})
			for _, e := range entries {
				newLeaf := len(t.leaves)
				t.nextTour = append(t.nextTour, tourRecord[A]{kind: tourLeaf, leaf: newLeaf, action: e.action})
				t.leaves = append(t.leaves, leafData[C, H]{cost: e.cost, hash: e.hash})
			}
			t.buckets[rec.leaf] = entries[:0]
			t.nextTour = append(t.nextTour, tourRecord[A]{kind: tourBackward, action: rec.action})

		case tourForward:
			t.nextTour = append(t.nextTour, rec)

		case tourBackward:
			last := t.nextTour[len(t.nextTour)-1]
			if last.kind == tourForward {
				// The subtree we just opened turned out empty: elide the
				// now-singleton forward/backward pair instead of emitting it.
				t.nextTour = t.nextTour[:len(t.nextTour)-1]
			} else {
				t.nextTour = append(t.nextTour, rec)
			}
		}
	}

	// (e) Swap and reuse the old curr_tour's backing array as next's.
	t.currTour, t.nextTour = t.nextTour, t.currTour
	t.nextTour = t.nextTour[:0]
}

// calculatePath reconstructs the root-to-parent path by replaying the
// current tour; the path ends with the action reaching the parent leaf,
// and the caller appends its own final action.
//
// Complexity: O(tour size).
func (t *tree[A, C, H]) calculatePath(parent int) []A {
	ret := make([]A, len(t.directRoad), len(t.directRoad)+4)
	copy(ret, t.directRoad)

	// The tour is still empty (either the very first round, or a
	// max_turn=1 search finishing before any update ever ran): the
	// only valid parent is the implicit root itself, slot 0, and the
	// path up to it is exactly the committed direct road.
	if len(t.currTour) == 0 {
		return ret
	}

	for _, rec := range t.currTour {
		switch rec.kind {
		case tourLeaf:
			if rec.leaf == parent {
				return append(ret, rec.action)
			}
		case tourForward:
			ret = append(ret, rec.action)
		case tourBackward:
			ret = ret[:len(ret)-1]
		}
	}

	beamcore.RaiseInvariant("calculatePath: parent slot %d not present in tour", parent)

	return nil
}
