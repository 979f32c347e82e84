package media

import "math/rand"

// Shuffle permutes items in place using rng, or the package-level source
// when rng is nil.
func Shuffle(items []Item, rng *rand.Rand) {
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if rng == nil {
		rand.Shuffle(len(items), swap)
		return
	}
	rng.Shuffle(len(items), swap)
}
