package skipbeam

import "github.com/ashikaga-bmk/beamkit/beamcore"

// Config configures Engine SKIP: the shared turn/beam-width/capacity
// knobs from beamcore.Config plus the node pool's fixed capacity.
//
// ReturnFinishedImmediately is inherited structurally from
// beamcore.Config for symmetry with edgebeam, but Search never reads
// it: the original library's SKIP beam_search has no such option and
// always returns on the first finished candidate it meets, a
// difference from EDGE preserved here rather than invented.
type Config struct {
	beamcore.Config
	// NodesCapacity is the capacity reserved for the node pool's backing
	// slice. It is not a bound: the pool grows by append past it.
	NodesCapacity int
}

// Option mutates a Config before a search begins.
type Option func(*Config)

// DefaultConfig returns a Config with beamcore's defaults and an
// unset NodesCapacity; callers always set NodesCapacity explicitly.
func DefaultConfig() Config {
	return Config{Config: beamcore.DefaultConfig()}
}

// WithMaxTurn sets the round limit. Panics if turn < 0.
func WithMaxTurn(turn int) Option {
	return func(c *Config) { beamcore.WithMaxTurn(turn)(&c.Config) }
}

// WithBeamWidth sets K. Panics if width <= 0.
func WithBeamWidth(width int) Option {
	return func(c *Config) { beamcore.WithBeamWidth(width)(&c.Config) }
}

// WithHashMapCapacity sets the dedup map capacity; 0 disables dedup.
func WithHashMapCapacity(capacity int) Option {
	return func(c *Config) { beamcore.WithHashMapCapacity(capacity)(&c.Config) }
}

// WithLogger overrides the diagnostic logger. Panics on nil.
func WithLogger(l beamcore.Logger) Option {
	return func(c *Config) { beamcore.WithLogger(l)(&c.Config) }
}

// WithNodesCapacity sets the node pool's reserved capacity. Panics if
// capacity <= 0.
func WithNodesCapacity(capacity int) Option {
	if capacity <= 0 {
		panic("skipbeam: WithNodesCapacity(capacity<=0)")
	}

	return func(c *Config) { c.NodesCapacity = capacity }
}

// NewConfig applies opts over DefaultConfig and returns the result
// without validating it; call Validate (or let Search call it) before
// use.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Validate checks cross-field constraints beyond beamcore.Config's own.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if c.NodesCapacity <= 0 {
		return beamcore.ErrInvalidCapacity
	}

	return nil
}
