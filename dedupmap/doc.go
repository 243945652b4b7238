// Package dedupmap implements the fixed-capacity, no-rehash,
// linear-probing map used by topk.Selector to map a fingerprint to the
// tree slot currently holding it. Capacity is set once at construction
// and never grows; overflow is a returned error, never a resize.
//
// Grounded on the HashMap used by both thunder beam-search engines:
// a key already known to be a good hash (the user's fingerprint) needs
// no secondary hashing, only a modulo and a linear scan for a free
// slot.
package dedupmap
