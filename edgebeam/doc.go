// Package edgebeam implements Engine EDGE: a differential-update beam
// search whose frontier tree is a flat Euler tour of edges, suited to
// problems where every candidate advances exactly one depth per round.
//
// What:
//
//   - Search(ctx, cfg, state): the single top-level entry point. Runs
//     the dfs/update round loop and returns the action sequence from
//     the implicit root to the chosen leaf.
//   - Tour encoding: a tagged variant {Leaf(slot), Forward, Backward}
//     rather than the -1/-2 sentinel markers of the original library
//     (spec.md §9's "cleaner expression" redesign, adopted here).
//   - Direct-road collapse: unambiguous single-child prefixes are
//     committed permanently and never revisited by the DFS.
//
// Why:
//
//   - Walking the tour in place (rather than rebuilding a tree of
//     pointers) keeps one round's work proportional to the live
//     frontier, not to the full search history.
//
// Key Types & Constants:
//
//   - Config (embeds beamcore.Config, adds TourCapacity)
//   - Option, DefaultConfig, With* constructors
//
// Complexity:
//
//   - One round: O(tour size + beam width * log beam width).
//   - Overall: O(max_turn * (tour size + beam width * log beam width)).
//
// Errors:
//
//   - Everything beamcore.Config.Validate can return, plus
//     beamcore.ErrInvalidCapacity for a non-positive TourCapacity.
//   - beamcore.ErrInvariantViolation on a corrupted tour (see
//     beamcore.RaiseInvariant call sites in tree.go).
//
// Functions:
//
//   - Search[A, C, H, S](ctx, cfg, state) ([]A, error)
package edgebeam
