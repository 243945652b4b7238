package edgebeam

import "github.com/ashikaga-bmk/beamkit/beamcore"

// Config configures Engine EDGE: the shared turn/beam-width/capacity
// knobs from beamcore.Config plus the tour's own fixed capacity.
type Config struct {
	beamcore.Config
	// TourCapacity is the capacity reserved for the Euler tour's backing
	// slices. It is not a bound: a longer tour grows by append, so sizing
	// it too small only costs reallocation, but an undersized capacity
	// defeats the point of reserving it up front.
	TourCapacity int
}

// Option mutates a Config before a search begins.
type Option func(*Config)

// DefaultConfig returns a Config with beamcore's defaults and an
// unset TourCapacity; callers always set TourCapacity explicitly.
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

// WithReturnFinishedImmediately toggles immediate-return mode.
func WithReturnFinishedImmediately(immediate bool) Option {
	return func(c *Config) { beamcore.WithReturnFinishedImmediately(immediate)(&c.Config) }
}

// WithLogger overrides the diagnostic logger. Panics on nil.
func WithLogger(l beamcore.Logger) Option {
	return func(c *Config) { beamcore.WithLogger(l)(&c.Config) }
}

// WithTourCapacity sets the Euler tour's reserved capacity. Panics if
// capacity <= 0.
func WithTourCapacity(capacity int) Option {
	if capacity <= 0 {
		panic("edgebeam: WithTourCapacity(capacity<=0)")
	}
	return func(c *Config) { c.TourCapacity = capacity }
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
	if c.TourCapacity <= 0 {
		return beamcore.ErrInvalidCapacity
	}

	return nil
}
