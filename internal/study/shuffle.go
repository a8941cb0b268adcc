package study

import "math/rand"

// Shuffle permutes items uniformly in place (Fisher-Yates). Quiz option
// and game-content shuffling must go through this rather than sorting with
// a random comparator, which is biased.
func Shuffle[T any](rnd *rand.Rand, items []T) {
	rnd.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
