package beamcore

// minHashMapCapacityFactor is the "hash map capacity needs roughly 16x
// the expected element count" guidance from the original library's
// sample harness, promoted here to an enforced lower bound (see
// SUPPLEMENTED FEATURES in SPEC_FULL.md).
const minHashMapCapacityFactor = 16

// Config holds the turn/beam-width/capacity knobs shared by edgebeam
// and skipbeam. Both engine packages embed Config inside their own
// engine-specific Config (TourCapacity or NodesCapacity).
//
// BeamWidth caps the selector and HashMapCapacity fixes the dedup map's
// size for the whole search. The engine-specific capacities are only
// reserved up front: the tour and the node pool grow by append when a
// search needs more than was reserved.
type Config struct {
	// MaxTurn bounds the number of rounds. Reaching it always returns a
	// path (the current best candidate).
	MaxTurn int

	// BeamWidth (K) is the maximum number of non-finished candidates the
	// selector retains at any time.
	BeamWidth int

	// HashMapCapacity sizes the fixed-capacity dedup map. Zero disables
	// dedup entirely (the no-hash engine variant). Non-zero must be at
	// least 16*BeamWidth.
	HashMapCapacity int

	// ReturnFinishedImmediately, when true, returns as soon as any
	// finished candidate is seen; when false, the engine keeps searching
	// and returns the best-cost finished candidate seen across all
	// rounds (see scenario d/e in the testable-properties section).
	ReturnFinishedImmediately bool

	// Logger receives the single diagnostic write an engine makes before
	// returning ErrInvariantViolation. Defaults to NopLogger.
	Logger Logger
}

// Option mutates a Config before a search begins. Option constructors
// validate and panic on inputs that could never be meaningful (nil
// logger, negative widths); Config.Validate still performs a
// non-panicking check of cross-field constraints before Search starts,
// since a Config built without options bypasses these constructors
// entirely.
type Option func(*Config)

// DefaultConfig returns a Config with MaxTurn 0 (no rounds), beam
// width 1 and dedup disabled. Callers building a real search always
// override MaxTurn, BeamWidth and (if hashing) HashMapCapacity.
func DefaultConfig() Config {
	return Config{
		MaxTurn:                   0,
		BeamWidth:                 1,
		HashMapCapacity:           0,
		ReturnFinishedImmediately: false,
		Logger:                    NopLogger{},
	}
}

// WithMaxTurn sets the round limit. Panics if turn < 0.
func WithMaxTurn(turn int) Option {
	if turn < 0 {
		panic("beamcore: WithMaxTurn(turn<0)")
	}
	return func(c *Config) { c.MaxTurn = turn }
}

// WithBeamWidth sets K, the retained non-finished candidate count.
// Panics if width <= 0.
func WithBeamWidth(width int) Option {
	if width <= 0 {
		panic("beamcore: WithBeamWidth(width<=0)")
	}
	return func(c *Config) { c.BeamWidth = width }
}

// WithHashMapCapacity sets the dedup map's fixed capacity. Pass 0 to
// build a no-hash engine. Panics if capacity < 0.
func WithHashMapCapacity(capacity int) Option {
	if capacity < 0 {
		panic("beamcore: WithHashMapCapacity(capacity<0)")
	}
	return func(c *Config) { c.HashMapCapacity = capacity }
}

// WithReturnFinishedImmediately toggles immediate-return mode.
func WithReturnFinishedImmediately(immediate bool) Option {
	return func(c *Config) { c.ReturnFinishedImmediately = immediate }
}

// WithLogger overrides the diagnostic logger. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("beamcore: WithLogger(nil)")
	}
	return func(c *Config) { c.Logger = l }
}

// Validate checks cross-field constraints that a Config assembled
// without options (or mutated directly) might violate. It never
// panics; Search calls it once before the first round.
//
// Complexity: O(1).
func (c Config) Validate() error {
	// 1. Turn limit must be non-negative.
	if c.MaxTurn < 0 {
		return ErrMaxTurnNegative
	}

	// 2. Beam width must be positive: a zero-width beam can never retain
	// a frontier.
	if c.BeamWidth <= 0 {
		return ErrInvalidBeamWidth
	}

	// 3. Dedup capacity, if enabled, must clear the documented lower
	// bound so linear probing does not degrade into near-certain
	// overflow under load.
	if c.HashMapCapacity > 0 && c.HashMapCapacity < minHashMapCapacityFactor*c.BeamWidth {
		return ErrHashMapCapacityTooSmall
	}

	return nil
}

// EffectiveLogger returns c.Logger, falling back to NopLogger for a
// zero-value Config (the case where a caller built Config as a literal
// and never called WithLogger).
func (c Config) EffectiveLogger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}

	return c.Logger
}
