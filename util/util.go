package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetKeysSorted is GetKeys in ascending order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

// Mod always lands in [0, m) for m > 0, unlike %.
func Mod[A constraints.Integer](a A, m A) A {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func Abs[A constraints.Signed](a A) A {
	if a < 0 {
		return -a
	}
	return a
}
