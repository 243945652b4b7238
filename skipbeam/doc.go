// Package skipbeam implements Engine SKIP: a differential-update beam
// search whose frontier tree is an explicit doubly-linked child/sibling
// structure in an object pool, suited to problems where a single
// candidate may advance the game by more than one user-turn at once.
//
// What:
//
//   - Search(ctx, cfg, state, rootCost, rootHash): the top-level entry
//     point. Runs the remove/update-root/dfs/pop-selector round loop and
//     returns the action sequence from the root to the chosen node.
//   - MultiSelectors: a deque of topk.Selector, one per pending step
//     offset, so a step-k candidate can be parked k rounds ahead of when
//     it is realized as a move.
//   - ObjectPool[T]: a free-list arena backing every tree node, so node
//     removal never shifts indices and never touches Go's GC per node.
//
// Why:
//
//   - A flat tour (as in edgebeam) has no place to stash a candidate
//     that must survive more than one round before being grafted; an
//     explicit node graph plus a per-depth-offset removal schedule does.
//
// Key Types & Constants:
//
//   - Config (embeds beamcore.Config, adds NodesCapacity)
//   - Pusher, State — skipbeam's own contract, distinct from beamcore's,
//     because Push here carries an extra step argument.
//
// Complexity:
//
//   - One round: O(active frontier size + beam width * log beam width)
//     amortized across the rounds a node survives.
//   - Overall: O(max_turn * (frontier size + beam width * log beam width)).
//
// Errors:
//
//   - Everything beamcore.Config.Validate can return, plus
//     beamcore.ErrInvalidCapacity for a non-positive NodesCapacity.
//   - beamcore.ErrInvariantViolation if pruning reaches the root, if the
//     final turn's selector holds no candidate, or if the dedup map
//     overflows. Nodes that still have children are skipped by pruning,
//     never freed.
//
// Functions:
//
//   - Search[A, C, H, S](ctx, cfg, state, rootCost, rootHash) ([]A, error)
package skipbeam
