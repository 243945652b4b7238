// Package topk implements the beam-search Selector: a top-K candidate
// retainer with fingerprint-based deduplication, a lazily constructed
// max-by-cost structure for O(log K) eviction, and a finished-candidate
// side channel.
//
// Grounded on edge_beam.cpp's and skip_beam.cpp's Selector class, which
// both engines share verbatim in the original library; this package is
// that shared Selector, reused unmodified by edgebeam and adapted by
// skipbeam.MultiSelectors into a deque of Selectors.
package topk
