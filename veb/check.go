package veb

import (
	"fmt"
	"math/bits"
)

// Check validates the structural invariants of the whole tree: extreme
// caches, the min-never-stored-below rule, summary/block agreement, and
// the tracked size against a full recount. It walks every node, so it is
// O(U); tests and harnesses run it after mutation batches, callers on a
// hot path should not.
func (s *Set) Check() error {
	if err := s.root.check(); err != nil {
		return err
	}
	if c := s.root.count(); c != s.size {
		return fmt.Errorf("veb: tracked size %d, recount %d", s.size, c)
	}
	return nil
}

func (n *node) check() error {
	switch {
	case n.min == none && n.max != none:
		return fmt.Errorf("universe %d: min unset but max = %d", n.u, n.max)
	case n.min != none && (n.min < 0 || n.min > n.max || n.max >= n.u):
		return fmt.Errorf("universe %d: bad extremes min=%d max=%d", n.u, n.min, n.max)
	}

	if n.leaf() {
		return n.checkLeaf()
	}

	for i, b := range n.block {
		if n.summary.contains(i) != (b.min != none) {
			return fmt.Errorf("universe %d: summary and block %d disagree", n.u, i)
		}
		if err := b.check(); err != nil {
			return err
		}
	}
	if err := n.summary.check(); err != nil {
		return err
	}

	if n.min == none {
		if n.summary.min != none {
			return fmt.Errorf("universe %d: empty node has occupied blocks", n.u)
		}
		return nil
	}
	if n.summary.min == none {
		if n.min != n.max {
			return fmt.Errorf("universe %d: lone min %d but max %d", n.u, n.min, n.max)
		}
		return nil
	}

	smallest := n.split.combine(n.summary.min, n.block[n.summary.min].min)
	if smallest <= n.min {
		return fmt.Errorf("universe %d: cached min %d not below smallest stored %d", n.u, n.min, smallest)
	}
	if biggest := n.split.combine(n.summary.max, n.block[n.summary.max].max); n.max != biggest {
		return fmt.Errorf("universe %d: cached max %d but largest stored %d", n.u, n.max, biggest)
	}
	return nil
}

func (n *node) checkLeaf() error {
	if n.min == none {
		if n.mask != 0 {
			return fmt.Errorf("universe %d: empty leaf holds mask %#x", n.u, n.mask)
		}
		return nil
	}
	if n.mask>>uint(n.min)&1 == 1 {
		return fmt.Errorf("universe %d: min %d duplicated into mask", n.u, n.min)
	}
	if n.mask == 0 {
		if n.min != n.max {
			return fmt.Errorf("universe %d: empty mask but min=%d max=%d", n.u, n.min, n.max)
		}
		return nil
	}

	var (
		lo = bits.TrailingZeros64(n.mask)
		hi = 63 - bits.LeadingZeros64(n.mask)
	)
	if hi >= n.u {
		return fmt.Errorf("universe %d: mask bit %d out of range", n.u, hi)
	}
	if n.min >= lo {
		return fmt.Errorf("universe %d: min %d not below mask bit %d", n.u, n.min, lo)
	}
	if n.max != hi {
		return fmt.Errorf("universe %d: cached max %d but highest mask bit %d", n.u, n.max, hi)
	}
	return nil
}
