package veb

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/btree"
)

// benchUniverse keeps every structure on the same key range so the
// comparisons are apples to apples.
const (
	benchBits     = 20
	benchUniverse = 1 << benchBits
)

func getKeys(total int) []int {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]int, total)
	)

	for i := range keys {
		keys[i] = faker.Number(0, benchUniverse-1)
	}

	return keys
}

func BenchmarkGoMap_Add(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[int]struct{})
	)

	b.ResetTimer()

	for _, x := range keys {
		m[x] = struct{}{}
	}
}

func BenchmarkGoMap_Has(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[int]struct{})
	)

	for _, x := range keys {
		m[x] = struct{}{}
	}

	b.ResetTimer()

	for _, x := range keys {
		_, _ = m[x]
	}
}

func BenchmarkSet_Add(b *testing.B) {
	var (
		keys = getKeys(b.N)
		s    = NewSet(benchUniverse)
	)

	b.ResetTimer()

	for _, x := range keys {
		s.Add(x)
	}
}

func BenchmarkPow2Set_Add(b *testing.B) {
	var (
		keys = getKeys(b.N)
		s    = NewPow2Set(benchBits)
	)

	b.ResetTimer()

	for _, x := range keys {
		s.Add(x)
	}
}

func BenchmarkSet_Has(b *testing.B) {
	var (
		keys = getKeys(b.N)
		s    = NewPow2Set(benchBits)
	)

	for _, x := range keys {
		s.Add(x)
	}

	b.ResetTimer()

	for _, x := range keys {
		_ = s.Has(x)
	}
}

func BenchmarkSet_Next(b *testing.B) {
	var (
		keys = getKeys(b.N)
		s    = NewPow2Set(benchBits)
	)

	for _, x := range keys {
		s.Add(x)
	}

	b.ResetTimer()

	for _, x := range keys {
		_, _ = s.Next(x)
	}
}

func BenchmarkBTree_Add(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = btree.NewOrderedG[int](32)
	)

	b.ResetTimer()

	for _, x := range keys {
		tr.ReplaceOrInsert(x)
	}
}

func BenchmarkBTree_Next(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = btree.NewOrderedG[int](32)
	)

	for _, x := range keys {
		tr.ReplaceOrInsert(x)
	}

	b.ResetTimer()

	for _, x := range keys {
		tr.AscendGreaterOrEqual(x+1, func(int) bool { return false })
	}
}
