package grouping

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wkalt/grouper/util"
)

/*
Buckets are the per-key collections of a grouping. There are exactly three
variants, one per Kind. Each accumulates single values and merges other
buckets or plain slices with semantics that mirror accumulation: lists
append, sets add, counters increment.
*/

////////////////////////////////////////////////////////////////////////////////

// Bucket is the collection of values held under one key.
type Bucket[V comparable] interface {
	// Kind returns the bucket kind.
	Kind() Kind
	// Accumulate adds a single value.
	Accumulate(value V)
	// Extend accumulates every value of values in order.
	Extend(values []V)
	// Merge adds the contents of other.
	Merge(other Bucket[V])
	// Len returns the number of elements; for counting buckets this is the
	// number of distinct values.
	Len() int
	// Values returns the elements in iteration order. The result is a copy.
	Values() []V
	// Count returns the multiplicity of value.
	Count(value V) int
	// Contains reports whether value is present.
	Contains(value V) bool
	// Equal reports whether other holds the same elements under this
	// bucket's notion of equality.
	Equal(other Bucket[V]) bool
	// Clone returns an independent copy.
	Clone() Bucket[V]

	sealed()
}

func newBucket[V comparable](kind Kind) Bucket[V] {
	switch kind {
	case Set:
		return NewSetBucket[V]()
	case Counting:
		return NewCountingBucket[V]()
	default:
		return NewListBucket[V]()
	}
}

func formatValues[V comparable](values []V) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

////////////////////////////////////////////////////////////////////////////////

// ListBucket keeps values in insertion order, duplicates included.
type ListBucket[V comparable] struct {
	values []V
}

// NewListBucket returns a list bucket holding values.
func NewListBucket[V comparable](values ...V) *ListBucket[V] {
	return &ListBucket[V]{values: slices.Clone(values)}
}

func (b *ListBucket[V]) Kind() Kind { return List }

func (b *ListBucket[V]) Accumulate(value V) {
	b.values = append(b.values, value)
}

func (b *ListBucket[V]) Extend(values []V) {
	b.values = append(b.values, values...)
}

func (b *ListBucket[V]) Merge(other Bucket[V]) {
	b.Extend(other.Values())
}

func (b *ListBucket[V]) Len() int { return len(b.values) }

func (b *ListBucket[V]) Values() []V {
	return slices.Clone(b.values)
}

func (b *ListBucket[V]) Count(value V) int {
	count := 0
	for _, v := range b.values {
		if v == value {
			count++
		}
	}
	return count
}

func (b *ListBucket[V]) Contains(value V) bool {
	return slices.Contains(b.values, value)
}

func (b *ListBucket[V]) Equal(other Bucket[V]) bool {
	o, ok := other.(*ListBucket[V])
	if !ok {
		return false
	}
	return slices.Equal(b.values, o.values)
}

func (b *ListBucket[V]) Clone() Bucket[V] {
	return NewListBucket(b.values...)
}

func (b *ListBucket[V]) String() string {
	return formatValues(b.values)
}

func (b *ListBucket[V]) sealed() {}

////////////////////////////////////////////////////////////////////////////////

// SetBucket keeps each distinct value once. Iteration follows the order in
// which values were first added.
type SetBucket[V comparable] struct {
	index map[V]struct{}
	order []V
}

// NewSetBucket returns a set bucket holding values.
func NewSetBucket[V comparable](values ...V) *SetBucket[V] {
	b := &SetBucket[V]{index: make(map[V]struct{})}
	b.Extend(values)
	return b
}

func (b *SetBucket[V]) Kind() Kind { return Set }

func (b *SetBucket[V]) Accumulate(value V) {
	if _, ok := b.index[value]; ok {
		return
	}
	b.index[value] = struct{}{}
	b.order = append(b.order, value)
}

func (b *SetBucket[V]) Extend(values []V) {
	for _, v := range values {
		b.Accumulate(v)
	}
}

func (b *SetBucket[V]) Merge(other Bucket[V]) {
	b.Extend(other.Values())
}

func (b *SetBucket[V]) Len() int { return len(b.order) }

func (b *SetBucket[V]) Values() []V {
	return slices.Clone(b.order)
}

func (b *SetBucket[V]) Count(value V) int {
	return util.When(b.Contains(value), 1, 0)
}

func (b *SetBucket[V]) Contains(value V) bool {
	_, ok := b.index[value]
	return ok
}

func (b *SetBucket[V]) Equal(other Bucket[V]) bool {
	o, ok := other.(*SetBucket[V])
	if !ok || o.Len() != b.Len() {
		return false
	}
	for _, v := range b.order {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

func (b *SetBucket[V]) Clone() Bucket[V] {
	return NewSetBucket(b.order...)
}

func (b *SetBucket[V]) String() string {
	return "{" + strings.Trim(formatValues(b.order), "[]") + "}"
}

func (b *SetBucket[V]) sealed() {}

////////////////////////////////////////////////////////////////////////////////

// CountingBucket is a multiset: it records how many times each distinct value
// was added.
type CountingBucket[V comparable] struct {
	counts map[V]int
	order  []V
}

// NewCountingBucket returns a counting bucket with one tally per element of
// values.
func NewCountingBucket[V comparable](values ...V) *CountingBucket[V] {
	b := &CountingBucket[V]{counts: make(map[V]int)}
	b.Extend(values)
	return b
}

func (b *CountingBucket[V]) Kind() Kind { return Counting }

func (b *CountingBucket[V]) Accumulate(value V) {
	b.add(value, 1)
}

func (b *CountingBucket[V]) add(value V, n int) {
	if _, ok := b.counts[value]; !ok {
		b.order = append(b.order, value)
	}
	b.counts[value] += n
}

func (b *CountingBucket[V]) Extend(values []V) {
	for _, v := range values {
		b.add(v, 1)
	}
}

// Merge adds tallies. Another counting bucket contributes its multiplicities;
// any other bucket contributes one tally per element.
func (b *CountingBucket[V]) Merge(other Bucket[V]) {
	if o, ok := other.(*CountingBucket[V]); ok {
		for _, v := range o.order {
			b.add(v, o.counts[v])
		}
		return
	}
	b.Extend(other.Values())
}

func (b *CountingBucket[V]) Len() int { return len(b.order) }

// Total returns the sum of all tallies.
func (b *CountingBucket[V]) Total() int {
	return util.Reduce(func(acc int, v V) int { return acc + b.counts[v] }, 0, b.order)
}

// Values returns the distinct values in first-seen order.
func (b *CountingBucket[V]) Values() []V {
	return slices.Clone(b.order)
}

// Counts returns a copy of the tallies.
func (b *CountingBucket[V]) Counts() map[V]int {
	counts := make(map[V]int, len(b.counts))
	for k, v := range b.counts {
		counts[k] = v
	}
	return counts
}

func (b *CountingBucket[V]) Count(value V) int {
	return b.counts[value]
}

func (b *CountingBucket[V]) Contains(value V) bool {
	return b.counts[value] > 0
}

func (b *CountingBucket[V]) Equal(other Bucket[V]) bool {
	o, ok := other.(*CountingBucket[V])
	if !ok || o.Len() != b.Len() {
		return false
	}
	for v, n := range b.counts {
		if o.counts[v] != n {
			return false
		}
	}
	return true
}

func (b *CountingBucket[V]) Clone() Bucket[V] {
	c := NewCountingBucket[V]()
	c.Merge(b)
	return c
}

func (b *CountingBucket[V]) String() string {
	parts := make([]string, len(b.order))
	for i, v := range b.order {
		parts[i] = fmt.Sprintf("%v:%d", v, b.counts[v])
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func (b *CountingBucket[V]) sealed() {}
