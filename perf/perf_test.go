package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumsAgree(t *testing.T) {
	t.Parallel()

	cfg := Config{Bits: 12, Inserts: 3000, Erases: 1500, Successors: 3000}

	for _, seed := range []int64{1, 42, 1234567890} {
		seed := seed

		var (
			vr = RunVEB(cfg, seed)
			br = RunBTree(cfg, seed)
			rr = RunRoaring(cfg, seed)
		)

		require.Equal(t, vr.Checksum, br.Checksum, "btree disagrees at seed %d", seed)
		require.Equal(t, vr.Checksum, rr.Checksum, "roaring disagrees at seed %d", seed)
	}
}

func TestRunVEB_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{Bits: 10, Inserts: 500, Erases: 200, Successors: 500}

	assert.Equal(t, RunVEB(cfg, 7).Checksum, RunVEB(cfg, 7).Checksum)
}
