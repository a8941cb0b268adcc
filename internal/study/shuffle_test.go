package study

import (
	"math/rand"
	"testing"
)

func TestShuffleKeepsAllElements(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(rnd, items)

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("shuffle lost elements: %v", items)
	}
}

func TestShuffleHandlesSmallSlices(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	Shuffle(rnd, []int{})
	one := []int{42}
	Shuffle(rnd, one)
	if one[0] != 42 {
		t.Errorf("single element changed: %v", one)
	}
}
