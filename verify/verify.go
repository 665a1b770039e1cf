// Package verify cross-checks a veb.Set against a reference bitmap
// oracle under randomized insert/erase load. The oracle is deliberately
// naive — a flat membership bitmap with next-set-bit successor — so any
// disagreement points at the tree, not at the reference.
package verify

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/sync/errgroup"

	"github.com/aglyzov/go-veb/veb"
)

// Config fixes the shape of one randomized trial.
type Config struct {
	Universe  int
	Inserts   int // insertion attempts; duplicates are skipped
	Rounds    int // sweep-then-delete rounds
	Deletions int // live elements removed per round, at most
}

// Stress is the canonical stress scenario: a mid-sized universe, ten
// full successor sweeps with partial deletion between them.
var Stress = Config{Universe: 5000, Inserts: 1000, Rounds: 10, Deletions: 20}

// Run performs one seeded trial and returns the first mismatch found.
func Run(cfg Config, seed int64) error {
	var (
		faker  = gofakeit.New(seed)
		set    = veb.NewSet(cfg.Universe)
		oracle = bitset.New(uint(cfg.Universe))
		live   []int
	)

	for i := 0; i < cfg.Inserts; i++ {
		x := faker.Number(0, cfg.Universe-1)
		if set.Has(x) {
			if !oracle.Test(uint(x)) {
				return fmt.Errorf("verify: %d reported present, oracle disagrees", x)
			}
			continue
		}
		set.Add(x)
		oracle.Set(uint(x))
		live = append(live, x)
	}

	for round := 0; round < cfg.Rounds; round++ {
		if err := sweep(set, oracle); err != nil {
			return fmt.Errorf("verify: round %d: %w", round, err)
		}
		if err := set.Check(); err != nil {
			return fmt.Errorf("verify: round %d: %w", round, err)
		}

		for i := 0; i < cfg.Deletions && len(live) > 0; i++ {
			k := faker.Number(0, len(live)-1)
			x := live[k]
			live[k] = live[len(live)-1]
			live = live[:len(live)-1]

			if !set.Delete(x) {
				return fmt.Errorf("verify: round %d: %d vanished before deletion", round, x)
			}
			oracle.Clear(uint(x))
		}
	}

	return nil
}

// RunTrials runs n independently seeded trials concurrently, one set per
// goroutine. The structure itself is single-threaded; only whole trials
// fan out.
func RunTrials(n int, cfg Config, seed int64) error {
	var g errgroup.Group

	for i := 0; i < n; i++ {
		trial := seed + int64(i)
		g.Go(func() error {
			if err := Run(cfg, trial); err != nil {
				return fmt.Errorf("trial seed %d: %w", trial, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// sweep compares membership, successor and the extreme caches for every
// key of the universe.
func sweep(set *veb.Set, oracle *bitset.BitSet) error {
	universe := set.Universe()

	for x := 0; x < universe; x++ {
		if got, want := set.Has(x), oracle.Test(uint(x)); got != want {
			return fmt.Errorf("contains(%d) = %v, oracle says %v", x, got, want)
		}

		var (
			got, ok      = set.Next(x)
			want, wantOK = oracle.NextSet(uint(x) + 1)
		)
		if ok != wantOK || (ok && got != int(want)) {
			return fmt.Errorf("successor(%d) = (%d, %v), oracle says (%d, %v)", x, got, ok, want, wantOK)
		}
	}

	if got, want := set.Len(), int(oracle.Count()); got != want {
		return fmt.Errorf("len = %d, oracle says %d", got, want)
	}

	min, okMin := set.Min()
	wantMin, wantOKMin := oracle.NextSet(0)
	if okMin != wantOKMin || (okMin && min != int(wantMin)) {
		return fmt.Errorf("min = (%d, %v), oracle says (%d, %v)", min, okMin, wantMin, wantOKMin)
	}

	// the oracle has no previous-set-bit, a backwards scan will do
	max, okMax := set.Max()
	for x := universe - 1; x >= 0; x-- {
		if oracle.Test(uint(x)) {
			if !okMax || max != x {
				return fmt.Errorf("max = (%d, %v), oracle says %d", max, okMax, x)
			}
			return nil
		}
	}
	if okMax {
		return fmt.Errorf("max = %d on an empty oracle", max)
	}
	return nil
}
