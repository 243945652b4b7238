// Package beamkit is a differential-update beam search library for
// combinatorial optimization problems: problems where you search a
// rooted tree of states and at each depth retain only the top-K nodes
// by an evaluation score, and the per-node state is too large to copy
// on every branch.
//
// What is beamkit?
//
//	A single-threaded, synchronous library built around one idea:
//	materialize only a tree of edges, walk it with an Euler tour, so
//	moving between sibling candidates costs one incremental forward or
//	backward step on your own state, never a full clone.
//		- edgebeam — single-depth-per-round beam over a flat Euler tour
//		- skipbeam — node-pool beam supporting multi-step (skip) moves
//		- topk     — shared top-K selector: dedup by fingerprint, retain
//		  the K best candidates under a cost order
//		- dedupmap — the fixed-capacity linear-probing map topk dedups
//		  through
//		- beamcore — shared vocabulary: Cost/Hash constraints, the
//		  State contract, Config, the invariant-to-error bridge
//
// Why choose beamkit?
//
//   - No full-state clones — the engines drive your state incrementally
//     along tree edges and undo precisely what they applied.
//   - Sized-up-front containers — the beam width caps the selector and
//     the dedup map has a fixed capacity; tour and node pool capacity are
//     reserved at construction, and those two grow by append if a search
//     outruns the reservation.
//   - Generic over your Action/Cost/Hash types — no interface{}, no
//     reflection on the hot path.
//
// Under the hood, everything is organized under five subpackages:
//
//	beamcore/ — shared vocabulary: Cost, Hash, Candidate, State, Config
//	dedupmap/ — fixed-capacity open-addressing fingerprint→slot map
//	topk/     — top-K selector with dedup and lazy tournament-tree construction
//	edgebeam/ — Engine EDGE: flat Euler-tour-of-edges beam
//	skipbeam/ — Engine SKIP: node-pool beam with multi-step candidates
//
// Pick edgebeam when every candidate advances the game by exactly one
// turn; pick skipbeam when a candidate may represent several turns at
// once and you need the search to park it until its turn comes.
//
//	go get github.com/ashikaga-bmk/beamkit
package beamkit
