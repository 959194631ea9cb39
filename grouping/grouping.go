/*
Package grouping implements an insertion-ordered multimap that gathers values
into per-key buckets, the container form of the group-by pattern:

	g, _ := grouping.FromPairs([]util.Pair[string, string]{
		util.NewPair("SchoolA", "Fred"),
		util.NewPair("SchoolB", "Bob"),
		util.NewPair("SchoolA", "Mary"),
	})
	g.AsMap() // map[SchoolA:[Fred Mary] SchoolB:[Bob]]

Items of type T are turned into a key K and a value V by a pair of derivation
functions chosen at construction. Every insertion, whatever its entry point,
reduces to Set: locate or create the bucket for the key and accumulate the
value into it according to the grouping's bucket Kind.

A Grouping is not safe for concurrent use; see Synchronized.
*/
package grouping

import (
	"cmp"
	"fmt"

	"github.com/wkalt/grouper/util"
)

////////////////////////////////////////////////////////////////////////////////

// Groups is a read-only view of keyed buckets. Grouping and Synchronized
// implement it, and it is accepted wherever another grouping can be merged
// or compared.
type Groups[K, V comparable] interface {
	Len() int
	Keys() []K
	Get(key K) (Bucket[V], bool)
}

// Grouping maps derived keys to buckets of derived values. Keys are kept in
// the order they were first seen.
type Grouping[T any, K, V comparable] struct {
	buckets map[K]Bucket[V]
	keys    []K
	kind    Kind

	keyFn   func(T) (K, error)
	valueFn func(T) (V, error)
}

type firster[K any] interface {
	GetFirst() K
}

type seconder[V any] interface {
	GetSecond() V
}

// Pure adapts an infallible function for use as a key or value function.
func Pure[T, R any](f func(T) R) func(T) (R, error) {
	return func(item T) (R, error) {
		return f(item), nil
	}
}

// firstOf returns the default key function. Interface item types can only be
// checked per item.
func firstOf[T any, K comparable]() (func(T) (K, error), error) {
	var zero T
	if any(zero) != nil {
		if _, ok := any(zero).(firster[K]); !ok {
			return nil, NewConfigurationError(fmt.Sprintf("no key function given and %T has no first element of type %T", zero, *new(K)))
		}
	}
	return func(item T) (K, error) {
		f, ok := any(item).(firster[K])
		if !ok {
			return *new(K), fmt.Errorf("%T has no first element", item)
		}
		return f.GetFirst(), nil
	}, nil
}

func secondOf[T any, V comparable]() (func(T) (V, error), error) {
	var zero T
	if any(zero) != nil {
		if _, ok := any(zero).(seconder[V]); !ok {
			return nil, NewConfigurationError(fmt.Sprintf("no value function given and %T has no second element of type %T", zero, *new(V)))
		}
	}
	return func(item T) (V, error) {
		s, ok := any(item).(seconder[V])
		if !ok {
			return *new(V), fmt.Errorf("%T has no second element", item)
		}
		return s.GetSecond(), nil
	}, nil
}

func wholeItem[T any, V comparable]() (func(T) (V, error), error) {
	var zero T
	if any(zero) != nil {
		if _, ok := any(zero).(V); !ok {
			return nil, NewConfigurationError(fmt.Sprintf("no value function given and %T is not usable as a value", zero))
		}
	}
	return func(item T) (V, error) {
		v, ok := any(item).(V)
		if !ok {
			return *new(V), fmt.Errorf("%T is not usable as a value", item)
		}
		return v, nil
	}, nil
}

// New returns an empty grouping. A nil keyFn takes the first element of pair
// items (anything with a GetFirst method, such as util.Pair). A nil valueFn
// takes the second element when keyFn is also nil, and the whole item
// otherwise. Defaults that cannot apply to T, and unsupported bucket kinds,
// fail with a ConfigurationError.
func New[T any, K, V comparable](
	keyFn func(T) (K, error),
	valueFn func(T) (V, error),
	opts ...Option,
) (*Grouping[T, K, V], error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	explicitKey := keyFn != nil
	if !explicitKey {
		if keyFn, err = firstOf[T, K](); err != nil {
			return nil, err
		}
	}
	if valueFn == nil {
		if explicitKey {
			valueFn, err = wholeItem[T, V]()
		} else {
			valueFn, err = secondOf[T, V]()
		}
		if err != nil {
			return nil, err
		}
	}
	return &Grouping[T, K, V]{
		buckets: make(map[K]Bucket[V]),
		kind:    c.kind,
		keyFn:   keyFn,
		valueFn: valueFn,
	}, nil
}

// FromPairs groups the second element of each pair under its first.
func FromPairs[K, V comparable](pairs []util.Pair[K, V], opts ...Option) (*Grouping[util.Pair[K, V], K, V], error) {
	return FromItems[util.Pair[K, V], K, V](pairs, nil, nil, opts...)
}

// FromItems builds a grouping with the given derivation functions and adds
// every item to it.
func FromItems[T any, K, V comparable](
	items []T,
	keyFn func(T) (K, error),
	valueFn func(T) (V, error),
	opts ...Option,
) (*Grouping[T, K, V], error) {
	g, err := New(keyFn, valueFn, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Update(items); err != nil {
		return nil, err
	}
	return g, nil
}

// ByKey groups whole items by keyFn.
func ByKey[T, K comparable](items []T, keyFn func(T) (K, error), opts ...Option) (*Grouping[T, K, T], error) {
	return FromItems[T, K, T](items, keyFn, nil, opts...)
}

// FromMap builds a pair grouping from a plain map of groups. Go maps are
// unordered, so the key order of the result is unspecified; FromSortedMap
// fixes it for ordered keys.
func FromMap[K, V comparable](m map[K][]V, opts ...Option) (*Grouping[util.Pair[K, V], K, V], error) {
	g, err := New[util.Pair[K, V], K, V](nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	g.UpdateMap(m)
	return g, nil
}

// FromSortedMap is FromMap with keys inserted in ascending order.
func FromSortedMap[K cmp.Ordered, V comparable](
	m map[K][]V,
	opts ...Option,
) (*Grouping[util.Pair[K, V], K, V], error) {
	g, err := New[util.Pair[K, V], K, V](nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	UpdateSortedMap(g, m)
	return g, nil
}

// FromGroups builds a pair grouping holding a merged copy of src, in src's key
// order.
func FromGroups[K, V comparable](src Groups[K, V], opts ...Option) (*Grouping[util.Pair[K, V], K, V], error) {
	g, err := New[util.Pair[K, V], K, V](nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	g.UpdateGroups(src)
	return g, nil
}

// FromKeys returns a pair grouping with a bucket for every key, each seeded
// with its own copy of initial. This is the only way to obtain empty buckets.
func FromKeys[K, V comparable](keys []K, initial []V, opts ...Option) (*Grouping[util.Pair[K, V], K, V], error) {
	g, err := New[util.Pair[K, V], K, V](nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if g.Contains(key) {
			continue
		}
		g.bucket(key).Extend(initial)
	}
	return g, nil
}

////////////////////////////////////////////////////////////////////////////////

func (g *Grouping[T, K, V]) bucket(key K) Bucket[V] {
	b, ok := g.buckets[key]
	if !ok {
		b = newBucket[V](g.kind)
		g.buckets[key] = b
		g.keys = append(g.keys, key)
	}
	return b
}

// Set accumulates value into the bucket for key, creating the bucket if
// needed.
func (g *Grouping[T, K, V]) Set(key K, value V) {
	g.bucket(key).Accumulate(value)
}

// Add derives a key and a value from item and sets them. Nothing is
// committed if either derivation fails.
func (g *Grouping[T, K, V]) Add(item T) error {
	key, err := g.keyFn(item)
	if err != nil {
		return KeyDerivationError{item: item, err: err}
	}
	value, err := g.valueFn(item)
	if err != nil {
		return ValueDerivationError{item: item, err: err}
	}
	g.Set(key, value)
	return nil
}

// Update adds items in order. It stops at the first derivation failure;
// items before it remain committed.
func (g *Grouping[T, K, V]) Update(items []T) error {
	for i, item := range items {
		if err := g.Add(item); err != nil {
			return fmt.Errorf("failed to add item %d: %w", i, err)
		}
	}
	return nil
}

// UpdateMap extends the bucket of every key in m with its values.
func (g *Grouping[T, K, V]) UpdateMap(m map[K][]V) {
	for key, values := range m {
		g.bucket(key).Extend(values)
	}
}

// UpdateSortedMap is UpdateMap visiting the keys of m in ascending order, so
// keys new to g are appended to its key order deterministically.
func UpdateSortedMap[T any, K cmp.Ordered, V comparable](g *Grouping[T, K, V], m map[K][]V) {
	for _, key := range util.Okeys(m) {
		g.bucket(key).Extend(m[key])
	}
}

// UpdateGroups merges every bucket of src into the bucket for the same key,
// in src's key order.
func (g *Grouping[T, K, V]) UpdateGroups(src Groups[K, V]) {
	for _, key := range src.Keys() {
		b, ok := src.Get(key)
		if !ok {
			continue
		}
		g.bucket(key).Merge(b)
	}
}

// Kind returns the bucket kind.
func (g *Grouping[T, K, V]) Kind() Kind {
	return g.kind
}

// Len returns the number of keys.
func (g *Grouping[T, K, V]) Len() int {
	return len(g.keys)
}

// Keys returns the keys in first-seen order.
func (g *Grouping[T, K, V]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Contains reports whether key has a bucket.
func (g *Grouping[T, K, V]) Contains(key K) bool {
	_, ok := g.buckets[key]
	return ok
}

// Get returns the bucket for key. The second return value is false if the
// key is absent.
func (g *Grouping[T, K, V]) Get(key K) (Bucket[V], bool) {
	b, ok := g.buckets[key]
	return b, ok
}

// Lookup returns the bucket for key or a KeyNotFoundError.
func (g *Grouping[T, K, V]) Lookup(key K) (Bucket[V], error) {
	b, ok := g.buckets[key]
	if !ok {
		return nil, KeyNotFoundError{key: key}
	}
	return b, nil
}

// Items returns key/bucket pairs in first-seen order.
func (g *Grouping[T, K, V]) Items() []util.Pair[K, Bucket[V]] {
	items := make([]util.Pair[K, Bucket[V]], len(g.keys))
	for i, key := range g.keys {
		items[i] = util.NewPair(key, g.buckets[key])
	}
	return items
}

// AsMap returns a plain copy of the grouping.
func (g *Grouping[T, K, V]) AsMap() map[K][]V {
	m := make(map[K][]V, len(g.keys))
	for _, key := range g.keys {
		m[key] = g.buckets[key].Values()
	}
	return m
}

// Equal reports whether other has the same keys with equal buckets. Key order
// is not compared.
func (g *Grouping[T, K, V]) Equal(other Groups[K, V]) bool {
	if other.Len() != g.Len() {
		return false
	}
	for _, key := range g.keys {
		b, ok := other.Get(key)
		if !ok || !g.buckets[key].Equal(b) {
			return false
		}
	}
	return true
}
