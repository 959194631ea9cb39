package grouping

import (
	"slices"

	"github.com/wkalt/grouper/util"
)

/*
Derived views. None of these mutate the grouping they read from.
*/

////////////////////////////////////////////////////////////////////////////////

// Map applies transform to every value of every bucket, in each bucket's
// iteration order, and returns the results as plain lists.
func Map[T any, K, V comparable, R any](g *Grouping[T, K, V], transform func(V) R) map[K][]R {
	result := make(map[K][]R, g.Len())
	for _, key := range g.keys {
		values := g.buckets[key].Values()
		mapped := make([]R, len(values))
		for i, v := range values {
			mapped[i] = transform(v)
		}
		result[key] = mapped
	}
	return result
}

// Aggregate applies reducer once to each whole bucket.
func Aggregate[T any, K, V comparable, R any](g *Grouping[T, K, V], reducer func(Bucket[V]) R) map[K]R {
	result := make(map[K]R, g.Len())
	for _, key := range g.keys {
		result[key] = reducer(g.buckets[key])
	}
	return result
}

// Counts is a reducer returning the multiplicity of each distinct value.
func Counts[V comparable](b Bucket[V]) map[V]int {
	counts := make(map[V]int)
	for _, v := range b.Values() {
		counts[v] = b.Count(v)
	}
	return counts
}

// Uniques is a reducer returning the distinct values in first-seen order.
func Uniques[V comparable](b Bucket[V]) []V {
	return NewSetBucket(b.Values()...).Values()
}

// Size is a reducer returning the bucket length.
func Size[V comparable](b Bucket[V]) int {
	return b.Len()
}

type ranked[K, V comparable] struct {
	item  util.Pair[K, Bucket[V]]
	order int
}

// rankedBelow reports whether a ranks strictly below b: it is smaller, or it
// is as large and was seen later.
func rankedBelow[K, V comparable](a, b ranked[K, V]) bool {
	la, lb := a.item.Second.Len(), b.item.Second.Len()
	if la != lb {
		return la < lb
	}
	return a.order > b.order
}

// MostCommon returns every group ordered by descending bucket length. Groups
// of equal length keep their first-seen order.
func (g *Grouping[T, K, V]) MostCommon() []util.Pair[K, Bucket[V]] {
	items := g.Items()
	slices.SortStableFunc(items, func(a, b util.Pair[K, Bucket[V]]) int {
		return b.Second.Len() - a.Second.Len()
	})
	return items
}

// MostCommonN returns the n largest groups, largest first, with the same
// ordering as MostCommon. The selection runs over a heap of at most n
// entries. A negative n is an InvalidArgumentError.
func (g *Grouping[T, K, V]) MostCommonN(n int) ([]util.Pair[K, Bucket[V]], error) {
	if n < 0 {
		return nil, InvalidArgumentError{name: "n", value: n}
	}
	candidates := make([]ranked[K, V], len(g.keys))
	for i, key := range g.keys {
		candidates[i] = ranked[K, V]{item: util.NewPair(key, g.buckets[key]), order: i}
	}
	top := util.TopN(candidates, n, rankedBelow[K, V])
	result := make([]util.Pair[K, Bucket[V]], len(top))
	for i, r := range top {
		result[i] = r.item
	}
	return result, nil
}
