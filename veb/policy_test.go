package veb

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtSplit(t *testing.T) {
	t.Parallel()

	for _, u := range []int{32, 33, 36, 100, 1000, 4096, 5000, 1 << 16, 999983} {
		u := u

		t.Run(fmt.Sprintf("u=%d", u), func(t *testing.T) {
			t.Parallel()

			s := newSqrtSplit(u)

			require.Positive(t, s.width())
			tassert.LessOrEqual(t, s.width()*s.width(), u, "width above floor(sqrt(u))")
			tassert.Greater(t, (s.width()+1)*(s.width()+1), u, "width below floor(sqrt(u))")
			tassert.GreaterOrEqual(t, s.width()*s.count(), u, "blocks do not cover the universe")
			tassert.Less(t, (s.count()-1)*s.width(), u, "one block too many")

			checkSplitAlgebra(t, s, u)
		})
	}
}

func TestPow2Split(t *testing.T) {
	t.Parallel()

	for nbits := 1; nbits <= 30; nbits++ {
		var (
			nbits = nbits
			u     = 1 << uint(nbits)
		)

		t.Run(fmt.Sprintf("bits=%d", nbits), func(t *testing.T) {
			t.Parallel()

			s := newPow2Split(nbits)

			tassert.Equal(t, u, s.width()*s.count(), "blocks must tile the universe exactly")
			tassert.LessOrEqual(t, s.width(), s.count(), "the summary side gets the extra bit")

			checkSplitAlgebra(t, s, u)
		})
	}
}

// checkSplitAlgebra verifies combine(high(x), low(x)) == x and the range
// bounds of high/low over the whole universe, or a random sample when the
// universe is too big to sweep.
func checkSplitAlgebra(t *testing.T, s splitter, u int) {
	t.Helper()

	const (
		seed    = 1234567890
		samples = 10000
	)

	probe := func(x int) {
		var (
			i = s.high(x)
			j = s.low(x)
		)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, s.count(), "high(%d) out of range", x)
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, s.width(), "low(%d) out of range", x)
		require.Equal(t, x, s.combine(i, j), "combine(high, low) is not the identity at %d", x)
	}

	if u <= samples {
		for x := 0; x < u; x++ {
			probe(x)
		}
		return
	}

	faker := gofakeit.New(seed)
	probe(0)
	probe(u - 1)
	for k := 0; k < samples; k++ {
		probe(faker.Number(0, u-1))
	}
}
