package skipbeam

import (
	"context"

	"github.com/ashikaga-bmk/beamkit/beamcore"
)

// Search runs Engine SKIP to completion and returns the sequence of
// actions from the root to the chosen node.
//
// Unlike edgebeam.Search, this engine always returns as soon as it
// meets any finished candidate; the original library's SKIP Config
// carries no return_finished_immediately knob, and that asymmetry with
// EDGE is preserved rather than papered over.
//
// ctx is polled once per round, never inside a user callback, the same
// ambient addition edgebeam.Search carries. A nil ctx is treated as
// context.Background().
//
// Complexity: O(max_turn * (active frontier size + beam width * log
// beam width)), amortized across the rounds each node survives.
func Search[A comparable, C beamcore.Cost, H beamcore.Hash, S State[A, C, H, *MultiSelectors[A, C, H]]](
	ctx context.Context,
	cfg Config,
	state S,
	rootCost C,
	rootHash H,
) (result []A, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}

	defer beamcore.RecoverInvariant(cfg.EffectiveLogger(), &err)

	// max_turn=0 (scenario a, spec.md §8) never enters the round loop
	// below in either engine; edgebeam's loop simply falls through to an
	// empty result in this case, and SKIP is made to match rather than
	// inheriting the original's unconditional assert(false) at the
	// bottom of its own loop, which only the max_turn=0 case can reach.
	if cfg.MaxTurn == 0 {
		return nil, nil
	}

	t := newTree[A, C, H](cfg.NodesCapacity, rootCost, rootHash)
	selectors := newMultiSelectors[A, C, H](cfg.BeamWidth, cfg.HashMapCapacity)

	for turn := 0; turn < cfg.MaxTurn; turn++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		t.dfs(state, selectors)

		selector := selectors.PopSelector()

		if selector.HaveFinished() {
			candidate := selector.FinishedCandidates()[0]
			ret := t.getPath(candidate.Parent)
			ret = append(ret, candidate.Action)

			return ret, nil
		}

		if turn == cfg.MaxTurn-1 {
			best, ok := selector.BestCandidate()
			if !ok {
				beamcore.RaiseInvariant("no candidates available on final turn")
			}
			ret := t.getPath(best.Parent)
			ret = append(ret, best.Action)

			return ret, nil
		}

		for _, candidate := range selector.Select() {
			t.addLeaf(candidate)
		}

		selectors.PushSelector(selector)
	}

	beamcore.RaiseInvariant("max_turn reached without returning from the round loop")

	return nil, nil
}
