package util

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

/*
Utility functions.
*/

////////////////////////////////////////////////////////////////////////////////

// Okeys returns the keys of a map in sorted order.
func Okeys[T cmp.Ordered, K any](m map[T]K) []T {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// When returns a if cond is true, otherwise b.
func When[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// Reduce folds f over xs, starting from init.
func Reduce[T, A any](f func(A, T) A, init A, xs []T) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}
