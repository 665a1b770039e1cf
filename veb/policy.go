package veb

import (
	"math"
	"math/bits"
)

// Policy selects how a node's universe is decomposed into blocks.
type Policy int

const (
	// Generic splits at floor(sqrt(U)) with integer division and modulo;
	// it works for any universe size.
	Generic Policy = iota

	// Pow2 splits at half the bit width with shifts and masks; it
	// requires a power-of-two universe.
	Pow2
)

// splitter maps a key to its (block, offset) pair and back again.
// combine(high(x), low(x)) == x holds for every key of the universe.
type splitter interface {
	high(x int) int
	low(x int) int
	combine(i, j int) int

	// width is the universe of every block, count the number of blocks
	// (and so the universe of the summary). width*count >= u.
	width() int
	count() int
}

func newSplitter(p Policy, u int) splitter {
	if p == Pow2 {
		return newPow2Split(bits.Len(uint(u)) - 1)
	}
	return newSqrtSplit(u)
}

type sqrtSplit struct {
	w int // block width, floor(sqrt(u))
	n int // block count, ceil(u/w)
}

func newSqrtSplit(u int) sqrtSplit {
	w := int(math.Sqrt(float64(u)))
	for w > 1 && w*w > u {
		w-- // float rounding can land one too high for large u
	}
	for (w+1)*(w+1) <= u {
		w++
	}
	return sqrtSplit{w: w, n: (u + w - 1) / w}
}

func (s sqrtSplit) high(x int) int       { return x / s.w }
func (s sqrtSplit) low(x int) int        { return x % s.w }
func (s sqrtSplit) combine(i, j int) int { return i*s.w + j }
func (s sqrtSplit) width() int           { return s.w }
func (s sqrtSplit) count() int           { return s.n }

type pow2Split struct {
	shift uint // bit width of the low half
	mask  int  // width - 1
	w     int  // 1 << shift
	n     int  // 1 << (bits - shift)
}

func newPow2Split(nbits int) pow2Split {
	lo := nbits >> 1 // the summary side gets the extra bit when nbits is odd
	return pow2Split{
		shift: uint(lo),
		mask:  1<<lo - 1,
		w:     1 << lo,
		n:     1 << (nbits - lo),
	}
}

func (s pow2Split) high(x int) int       { return x >> s.shift }
func (s pow2Split) low(x int) int        { return x & s.mask }
func (s pow2Split) combine(i, j int) int { return i<<s.shift | j }
func (s pow2Split) width() int           { return s.w }
func (s pow2Split) count() int           { return s.n }
