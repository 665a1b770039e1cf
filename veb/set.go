package veb

// Set is an ordered set of integers over the fixed universe [0, U).
//
// Add and Delete are membership-checked and report whether they mutated
// the set, so they are safe to call blindly. All keys passed to any
// method must lie in [0, U); out-of-range keys are a contract violation,
// diagnosed only under the vebdebug build tag.
type Set struct {
	root *node
	size int
}

// NewSet returns an empty set over the universe [0, universe) using the
// generic floor(sqrt(U)) decomposition. universe must be at least 2.
func NewSet(universe int) *Set {
	if universe < 2 {
		panic("veb: universe must be at least 2")
	}
	return &Set{root: newNode(universe, Generic)}
}

// NewPow2Set returns an empty set over the universe [0, 1<<bits) using
// the shift/mask decomposition. bits must be in [1, 62].
func NewPow2Set(bits int) *Set {
	if bits < 1 || bits > 62 {
		panic("veb: bits must be in [1, 62]")
	}
	return &Set{root: newNode(1<<uint(bits), Pow2)}
}

// Universe returns the fixed universe size U.
func (s *Set) Universe() int { return s.root.u }

// Len returns the number of members.
func (s *Set) Len() int { return s.size }

// Has reports whether x is a member.
func (s *Set) Has(x int) bool {
	assert(0 <= x && x < s.root.u, "Has: key %d outside universe %d", x, s.root.u)
	return s.root.contains(x)
}

// Add inserts x and reports whether it was absent.
func (s *Set) Add(x int) (added bool) {
	assert(0 <= x && x < s.root.u, "Add: key %d outside universe %d", x, s.root.u)
	if s.root.contains(x) {
		return false
	}
	s.root.insert(x)
	s.size++
	return true
}

// Delete removes x and reports whether it was a member.
func (s *Set) Delete(x int) (deleted bool) {
	assert(0 <= x && x < s.root.u, "Delete: key %d outside universe %d", x, s.root.u)
	if !s.root.contains(x) {
		return false
	}
	s.root.erase(x)
	s.size--
	return true
}

// Next returns the smallest member strictly greater than x. The second
// result is false when no such member exists. x itself need not be a
// member.
func (s *Set) Next(x int) (int, bool) {
	assert(0 <= x && x < s.root.u, "Next: key %d outside universe %d", x, s.root.u)
	y := s.root.successor(x)
	return y, y != none
}

// Min returns the smallest member, or false when the set is empty.
func (s *Set) Min() (int, bool) { return s.root.min, s.root.min != none }

// Max returns the largest member, or false when the set is empty.
func (s *Set) Max() (int, bool) { return s.root.max, s.root.max != none }
