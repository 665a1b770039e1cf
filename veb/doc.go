// Package veb implements a van Emde Boas tree: an ordered set of integers
// over a fixed universe [0, U) with O(log log U) insertion, deletion,
// membership and successor queries at O(U) space.
//
// Structure:
// ---------
//
// The universe is decomposed recursively into roughly sqrt(U)-sized blocks:
//
//	[node U=4096] --+-- summary [node U=64]   (which blocks are non-empty)
//	                |
//	                +-- block 0  [node U=64]  (keys    0 ..   63)
//	                +-- block 1  [node U=64]  (keys   64 ..  127)
//	                |   ...
//	                `-- block 63 [node U=64]  (keys 4032 .. 4095)
//
// Every node caches the min and max of its subtree. The min is held only in
// the cache and never stored below it, which is what keeps every operation
// down to a single recursive descent. Universes below 32 collapse into a
// single bitmask word.
//
// Two decompositions are available at construction time: a generic
// floor(sqrt(U)) split for arbitrary universes (NewSet) and a shift/mask
// split for power-of-two universes (NewPow2Set).
//
// The full tree for the declared universe is allocated eagerly at
// construction, so later operations never allocate. Space stays O(U) no
// matter how few members are live; for sparse sets over huge universes a
// trie or a compressed bitmap is a better fit.
//
// A Set is not safe for concurrent use.
package veb
