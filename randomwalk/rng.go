package randomwalk

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or no
// source at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly chosen element of candidates, which must be
// non-empty.
func pick(r *rand.Rand, candidates []int) int {
	return candidates[r.Intn(len(candidates))]
}
