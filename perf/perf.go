// Package perf runs bulk randomized insert/erase/successor workloads
// over a veb.Set and over two ecosystem baselines: a generic
// self-balancing B-tree and a roaring bitmap driven through its
// rank/select order statistics. Every runner draws the same key stream
// for a given seed and folds its successor answers into a checksum, so
// the results are comparable on both wall time and correctness.
package perf

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/btree"

	"github.com/aglyzov/go-veb/veb"
)

// Config fixes one bulk workload. The universe is 1 << Bits; Bits must
// stay within [1, 30] so keys fit the roaring baseline's uint32 space.
type Config struct {
	Bits       int
	Inserts    int
	Erases     int
	Successors int
}

// Default is the headline comparison load.
var Default = Config{Bits: 26, Inserts: 1e7, Erases: 1e7, Successors: 1e7}

// Result is one timed run. Checksum is the sum of all successor answers,
// with every miss contributing -1; runs over the same Config and seed
// must produce identical checksums whatever the structure.
type Result struct {
	Checksum int64
	Elapsed  time.Duration
}

// RunVEB drives the van Emde Boas set. Construction of the eager tree is
// kept outside the timed window, mirroring the baselines whose setup is
// trivially cheap.
func RunVEB(cfg Config, seed int64) Result {
	var (
		faker = gofakeit.New(seed)
		u     = 1 << uint(cfg.Bits)
		set   = veb.NewPow2Set(cfg.Bits)
		sum   int64
	)

	start := time.Now()

	for i := 0; i < cfg.Inserts; i++ {
		set.Add(faker.Number(0, u-1))
	}
	for i := 0; i < cfg.Erases; i++ {
		set.Delete(faker.Number(0, u-1))
	}
	for i := 0; i < cfg.Successors; i++ {
		if y, ok := set.Next(faker.Number(0, u-1)); ok {
			sum += int64(y)
		} else {
			sum--
		}
	}

	return Result{Checksum: sum, Elapsed: time.Since(start)}
}

// RunBTree drives the generic ordered B-tree baseline; successor is the
// first item at or above x+1.
func RunBTree(cfg Config, seed int64) Result {
	var (
		faker = gofakeit.New(seed)
		u     = 1 << uint(cfg.Bits)
		tr    = btree.NewOrderedG[int](32)
		sum   int64
	)

	start := time.Now()

	for i := 0; i < cfg.Inserts; i++ {
		tr.ReplaceOrInsert(faker.Number(0, u-1))
	}
	for i := 0; i < cfg.Erases; i++ {
		tr.Delete(faker.Number(0, u-1))
	}
	for i := 0; i < cfg.Successors; i++ {
		var (
			found bool
			next  int
		)
		tr.AscendGreaterOrEqual(faker.Number(0, u-1)+1, func(item int) bool {
			next, found = item, true
			return false
		})
		if found {
			sum += int64(next)
		} else {
			sum--
		}
	}

	return Result{Checksum: sum, Elapsed: time.Since(start)}
}

// RunRoaring drives the compressed-bitmap baseline through the classic
// order-statistics successor: rank(x) members are <= x, so the member at
// that rank, if any, is the next one up.
func RunRoaring(cfg Config, seed int64) Result {
	var (
		faker = gofakeit.New(seed)
		u     = 1 << uint(cfg.Bits)
		bm    = roaring.New()
		sum   int64
	)

	start := time.Now()

	for i := 0; i < cfg.Inserts; i++ {
		bm.Add(uint32(faker.Number(0, u-1)))
	}
	for i := 0; i < cfg.Erases; i++ {
		bm.Remove(uint32(faker.Number(0, u-1)))
	}
	for i := 0; i < cfg.Successors; i++ {
		x := uint32(faker.Number(0, u-1))
		if ord := bm.Rank(x); ord < bm.GetCardinality() {
			y, _ := bm.Select(uint32(ord))
			sum += int64(y)
		} else {
			sum--
		}
	}

	return Result{Checksum: sum, Elapsed: time.Since(start)}
}
