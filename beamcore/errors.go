package beamcore

import "errors"

// Sentinel errors for beamkit configuration and search invariants.
var (
	// ErrInvalidBeamWidth indicates a non-positive beam width.
	ErrInvalidBeamWidth = errors.New("beamcore: beam width must be positive")

	// ErrInvalidCapacity indicates a non-positive tree/node capacity.
	ErrInvalidCapacity = errors.New("beamcore: capacity must be positive")

	// ErrHashMapCapacityTooSmall indicates a dedup map capacity below the
	// documented 16x-beam-width lower bound (see SUPPLEMENTED FEATURES).
	ErrHashMapCapacityTooSmall = errors.New("beamcore: hash map capacity too small relative to beam width")

	// ErrMaxTurnNegative indicates a negative turn limit.
	ErrMaxTurnNegative = errors.New("beamcore: max turn must be non-negative")

	// ErrInvariantViolation is returned when an engine detects a fatal
	// internal invariant violation (root pruned, non-leaf freed, dedup
	// map overflow). It is never retried.
	ErrInvariantViolation = errors.New("beamcore: internal invariant violation")

	// ErrDedupOverflow indicates the fixed-capacity dedup map has no free
	// slot left within one full probe cycle.
	ErrDedupOverflow = errors.New("beamcore: dedup map overflow")
)
