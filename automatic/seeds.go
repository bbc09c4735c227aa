package automatic

import (
	"math"

	"lukechampine.com/frand"
)

// GenerateSeeds returns a bag seed for each of n games. A non-zero base
// makes the run reproducible: game i gets base+i. Otherwise the seeds are
// random. No seed is ever zero, since zero asks the bag for randomness.
func GenerateSeeds(base int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		if base != 0 {
			seeds[i] = base + int64(i)
			if seeds[i] == 0 {
				seeds[i] = base + int64(n)
			}
			continue
		}
		seeds[i] = int64(frand.Uint64n(math.MaxInt64)) + 1
	}
	return seeds
}
