package beamcore

import "golang.org/x/exp/constraints"

// Cost is any totally ordered arithmetic scalar. Lower is better.
type Cost interface {
	constraints.Ordered
}

// Hash is an unsigned integer fingerprint produced by a State as part of
// a forward transition. Equal fingerprints assert equal states; unequal
// fingerprints assert, with high probability, unequal states.
type Hash interface {
	constraints.Unsigned
}

// NoHash is the fingerprint type used by the no-hash engine variants,
// which skip duplicate elimination entirely. It satisfies Hash so the
// generic engines can be instantiated over it without a parallel set of
// non-generic types. It is a plain alias of uint8 and carries no special
// equality; dedup is disabled through Config (HashMapCapacity 0), which
// keeps the dedup map from being consulted at all.
type NoHash = uint8

// Candidate is one proposed transition pushed by State.Expand during a
// single round. Its lifetime is exactly one round: the engine either
// promotes it to a tree leaf, records it as finished, or drops it.
type Candidate[A comparable, C Cost, H Hash] struct {
	Action   A    // the opaque transition token
	Cost     C    // lower is better
	Hash     H    // fingerprint; ignored when dedup is disabled
	Parent   int  // engine-specific parent identifier (tour slot or node id)
	Finished bool // true if this candidate reaches a terminal state
	Step     int  // not set by topk.Selector.Push and not read by either engine; skipbeam takes the step as a MultiSelectors.Push argument
}

// Pusher is the narrow interface a State.Expand implementation uses to
// propose candidates. Both topk.Selector and skipbeam.MultiSelectors
// satisfy it for their respective engines.
type Pusher[A comparable, C Cost, H Hash] interface {
	Push(action A, cost C, hash H, parent int, finished bool) bool
}

// State is the contract a caller's problem state must satisfy. The
// engine owns exactly one long-lived State value; Expand borrows it and
// must leave it exactly as found modulo the stack-disciplined
// MoveForward/MoveBackward pairs it issues internally while evaluating
// children before returning.
//
// Stack discipline: for every MoveForward the engine applies, exactly
// one MoveBackward inverting it is applied before the engine touches
// the state for another sibling. Violating this corrupts the search;
// the engine does not and cannot verify it.
type State[A comparable, C Cost, H Hash, P Pusher[A, C, H]] interface {
	// Expand proposes zero or more candidates descending from the tree
	// slot identified by parentSlot by pushing them into selector.
	Expand(parentSlot int, selector P)

	// MoveForward advances the state along action.
	MoveForward(action A)

	// MoveBackward inverts the immediately preceding MoveForward(action).
	MoveBackward(action A)

	// MakeInitialNode returns the root's (cost, fingerprint) the first
	// time the engine asks, before any MoveForward has been issued.
	MakeInitialNode() (C, H)
}

// Logger is the minimal logging seam beamkit engines use for the single
// fatal-diagnostic write on an internal invariant violation (spec.md
// §4.E: "the core logs once and aborts"). NopLogger is the default.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards everything written to it.
type NopLogger struct{}

// Printf implements Logger by doing nothing.
func (NopLogger) Printf(string, ...any) {}
