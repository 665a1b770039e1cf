package veb

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// smallUniverse is the leaf threshold: a node whose universe is below it
// keeps its members in a single mask word instead of child nodes.
const smallUniverse = 32

// none is the sentinel for an absent min/max/successor.
const none = -1

// node is one level of the recursive decomposition. Its universe is
// [0, u); min and max cache the extremes of the whole subtree.
//
// Invariants:
//   - min == none iff the subtree is empty, and then max == none too
//   - the cached min is never stored in mask or block, only every
//     other member is
//   - summary holds i iff block[i] is non-empty
type node struct {
	u        int
	min, max int
	mask     uint64 // leaf membership: bit i set iff i is a member and i != min
	split    splitter
	summary  *node
	block    []*node
}

// newNode eagerly builds the whole subtree for a universe of size u, so
// that no later operation ever allocates.
func newNode(u int, p Policy) *node {
	n := &node{u: u, min: none, max: none}
	if u < smallUniverse {
		return n
	}

	n.split = newSplitter(p, u)
	n.block = make([]*node, n.split.count())
	for i := range n.block {
		n.block[i] = newNode(n.split.width(), p)
	}
	n.summary = newNode(n.split.count(), p)

	return n
}

func (n *node) leaf() bool { return n.summary == nil }

// insert adds x to the subtree. x must be in range and must not already
// be a member: the duplicate short-circuit below only covers x == min,
// anything else would corrupt the mask/min/max state.
func (n *node) insert(x int) {
	assert(0 <= x && x < n.u, "insert: key %d outside universe %d", x, n.u)
	if debugChecks {
		assert(!n.contains(x), "insert: key %d already a member", x)
	}

	if n.min == none {
		n.min, n.max = x, x
		return
	}
	if x < n.min {
		// the cached min is never stored below, so the old one descends
		// in place of x
		x, n.min = n.min, x
	}
	if x > n.max {
		n.max = x
	}

	if n.leaf() {
		n.mask |= 1 << uint(x)
		return
	}

	i, j := n.split.high(x), n.split.low(x)
	if n.block[i].min == none {
		n.summary.insert(i)
	}
	n.block[i].insert(j)
}

// erase removes x from the subtree. x must be a member.
func (n *node) erase(x int) {
	assert(0 <= x && x < n.u, "erase: key %d outside universe %d", x, n.u)
	if debugChecks {
		assert(n.contains(x), "erase: key %d is not a member", x)
	}

	if n.leaf() {
		if x == n.min {
			n.min = none
		}
		if x == n.max {
			n.max = n.min
		}
		n.mask &^= 1 << uint(x)

		// re-derive the caches from whatever survives in the mask: the
		// lowest surviving bit moves out of the mask into the min cache
		if m := n.mask; m != 0 {
			if n.min == none {
				lo := bits.TrailingZeros64(m)
				n.min = lo
				n.mask &^= 1 << uint(lo)
			}
			n.max = 63 - bits.LeadingZeros64(m)
		}
		return
	}

	if x == n.min {
		i := n.summary.min
		if i == none {
			// the subtree held nothing but its cached min
			n.min, n.max = none, none
			return
		}
		// promote the smallest stored element into the cache; it is the
		// one that has to come out of its block now
		x = n.split.combine(i, n.block[i].min)
		n.min = x
	}

	i := n.split.high(x)
	n.block[i].erase(n.split.low(x))
	if n.block[i].min == none {
		n.summary.erase(i)
	}

	if x == n.max {
		if k := n.summary.max; k == none {
			n.max = n.min
		} else {
			n.max = n.split.combine(k, n.block[k].max)
		}
	}
}

// successor returns the smallest member strictly greater than x, or none.
//
// An empty subtree needs no special case: min is none, so the x < min
// guard cannot fire for any valid x and the scan below comes up empty.
func (n *node) successor(x int) int {
	assert(0 <= x && x < n.u, "successor: key %d outside universe %d", x, n.u)

	if x < n.min {
		return n.min
	}

	if n.leaf() {
		if above := n.mask >> uint(x) >> 1; above != 0 {
			return x + 1 + bits.TrailingZeros64(above)
		}
		return none
	}

	i, j := n.split.high(x), n.split.low(x)
	if j < n.block[i].max {
		// a larger element exists within the same block
		return n.split.combine(i, n.block[i].successor(j))
	}
	i = n.summary.successor(i)
	if i == none {
		return none
	}
	return n.split.combine(i, n.block[i].min)
}

// contains reports whether x is a member of the subtree.
func (n *node) contains(x int) bool {
	if x == n.min {
		return true
	}
	if n.leaf() {
		return n.mask>>uint(x)&1 == 1
	}
	return n.block[n.split.high(x)].contains(n.split.low(x))
}

// count recomputes the subtree cardinality from scratch by walking every
// node. O(U); it exists for the structural checker, not for callers on a
// hot path — Set tracks its size incrementally.
func (n *node) count() int {
	if n.min == none {
		return 0
	}
	if n.leaf() {
		return 1 + int(popcount.Count(n.mask))
	}
	c := 1 // the cached min
	for _, b := range n.block {
		c += b.count()
	}
	return c
}
