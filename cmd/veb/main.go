// Command veb runs the compiled-in correctness and performance
// scenarios; there are no flags. It exits 1 on the first correctness
// failure or checksum disagreement, 0 otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/aglyzov/go-veb/perf"
	"github.com/aglyzov/go-veb/verify"
)

const (
	trials    = 20
	trialSeed = 1234567890
	perfSeed  = 987654321
)

// perfLoad is scaled down from the headline perf.Default so the binary
// finishes in seconds on a laptop; bump it back up for real comparisons.
var perfLoad = perf.Config{Bits: 24, Inserts: 2_000_000, Erases: 2_000_000, Successors: 2_000_000}

func main() {
	fmt.Printf("correctness: %d trials, U=%d, %d rounds each\n",
		trials, verify.Stress.Universe, verify.Stress.Rounds)

	if err := verify.RunTrials(trials, verify.Stress, trialSeed); err != nil {
		color.Red("FAIL: %v", err)
		os.Exit(1)
	}
	color.Green("All tests passed!")

	fmt.Printf("performance: U=2^%d, %d inserts / %d erases / %d successors\n",
		perfLoad.Bits, perfLoad.Inserts, perfLoad.Erases, perfLoad.Successors)

	var (
		vr = perf.RunVEB(perfLoad, perfSeed)
		br = perf.RunBTree(perfLoad, perfSeed)
		rr = perf.RunRoaring(perfLoad, perfSeed)
	)

	fmt.Printf("  veb      %12v   checksum %d\n", vr.Elapsed, vr.Checksum)
	fmt.Printf("  btree    %12v   checksum %d\n", br.Elapsed, br.Checksum)
	fmt.Printf("  roaring  %12v   checksum %d\n", rr.Elapsed, rr.Checksum)

	if br.Checksum != vr.Checksum || rr.Checksum != vr.Checksum {
		color.Red("FAIL: checksums disagree")
		os.Exit(1)
	}
	color.Green("checksums agree")
}
