// Package beamcore defines the shared vocabulary of the beamkit engines:
// the Action/Cost/Hash type constraints, the Candidate record, the
// State contract a caller must implement, the Config surface both
// engines embed, and the sentinel errors and minimal Logger used
// throughout the module.
//
// What:
//
//   - Generic constraints Cost (constraints.Ordered) and Hash
//     (constraints.Unsigned), plus a NoHash alias (uint8) for the
//     dedup-disabled engine variants.
//   - State[A, C, H]: the contract a caller's problem state satisfies
//     (Expand, MoveForward, MoveBackward, MakeInitialNode).
//   - Config: functional-options configuration shared by edgebeam and
//     skipbeam, plus Validate.
//   - Candidate[A, C, H]: one proposed transition pushed by Expand.
//   - Logger: a minimal logging seam for the single fatal-diagnostic
//     path an engine takes on an internal invariant violation.
//
// Why:
//
//   - Both engines need identical turn/beam-width/capacity bookkeeping
//     and an identical error taxonomy; factoring it once keeps the two
//     engines from drifting apart on anything but tree representation.
//
// Key Types & Constants:
//
//   - Cost, Hash (constraints), NoHash (type alias); actions are a
//     comparable type parameter, not a type declared here
//   - Candidate, Pusher
//   - Config, Option
//   - ErrInvalidBeamWidth, ErrInvalidCapacity, ErrHashMapCapacityTooSmall,
//     ErrInvariantViolation, ErrMaxTurnNegative
//
// Complexity:
//
//   - All constructors and option application are O(1) time and space.
//
// Errors:
//
//   - ErrInvalidBeamWidth, ErrHashMapCapacityTooSmall, ErrMaxTurnNegative
//     are returned by Config.Validate; ErrInvalidCapacity is returned by
//     the engine packages' own Config.Validate for a non-positive tour or
//     node capacity.
//   - ErrInvariantViolation is returned by Search after recovering an
//     internal panic.
//
// Functions:
//
//   - DefaultConfig() Config
//   - WithMaxTurn, WithBeamWidth, WithHashMapCapacity,
//     WithReturnFinishedImmediately, WithLogger
package beamcore
