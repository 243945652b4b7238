package edgebeam

import (
	"context"

	"github.com/ashikaga-bmk/beamkit/beamcore"
	"github.com/ashikaga-bmk/beamkit/topk"
)

// Search runs Engine EDGE to completion and returns the sequence of
// actions from the implicit root to the chosen leaf.
//
// ctx is polled once per round, never inside a user callback, so a
// caller can bound the search's running time the way dfs.DFS bounds a
// traversal with WithContext; this is an ambient addition beyond
// spec.md's synchronous core, not a change to the engine's own
// single-threaded semantics. A nil ctx is treated as
// context.Background().
//
// Complexity: O(max_turn * (tour size + beam width * log beam width)).
func Search[A comparable, C beamcore.Cost, H beamcore.Hash, S beamcore.State[A, C, H, *topk.Selector[A, C, H]]](
	ctx context.Context,
	cfg Config,
	state S,
) (result []A, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}

	defer beamcore.RecoverInvariant(cfg.EffectiveLogger(), &err)

	t := newTree[A, C, H](cfg.TourCapacity, cfg.BeamWidth)
	selector := topk.New[A, C, H](cfg.BeamWidth, cfg.HashMapCapacity)

	var bestRet []A
	var bestCost C
	haveBest := false

	for turn := 0; turn < cfg.MaxTurn; turn++ {
		select {
		case <-ctx.Done():
			return bestRet, ctx.Err()
		default:
		}

		t.dfs(state, selector)

		if selector.HaveFinished() {
			if cfg.ReturnFinishedImmediately {
				candidate := selector.FinishedCandidates()[0]
				ret := t.calculatePath(candidate.Parent)
				ret = append(ret, candidate.Action)

				return ret, nil
			}

			for _, candidate := range selector.FinishedCandidates() {
				ret := t.calculatePath(candidate.Parent)
				ret = append(ret, candidate.Action)
				if !haveBest || candidate.Cost < bestCost {
					bestCost = candidate.Cost
					bestRet = ret
					haveBest = true
				}
			}
			selector.ClearFinished()
		}

		if selector.Len() == 0 {
			return bestRet, nil
		}

		if turn == cfg.MaxTurn-1 {
			best, ok := selector.BestCandidate()
			if !ok {
				beamcore.RaiseInvariant("no candidates available on final turn")
			}
			ret := t.calculatePath(best.Parent)
			ret = append(ret, best.Action)

			return ret, nil
		}

		t.update(state, selector.Select())
		selector.Clear()
	}

	// max_turn == 0: the loop body never ran (scenario a, spec.md §8).
	return bestRet, nil
}
