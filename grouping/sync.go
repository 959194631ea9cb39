package grouping

import (
	"sync"

	"github.com/wkalt/grouper/util"
)

// Synchronized guards a grouping with a read/write mutex. Every insertion
// holds the write lock until the value is fully accumulated, and reads hand
// out cloned buckets, so readers never observe a bucket mid-update.
type Synchronized[T any, K, V comparable] struct {
	g   *Grouping[T, K, V]
	mtx *sync.RWMutex
}

// NewSynchronized wraps g. The caller must not use g directly afterwards.
func NewSynchronized[T any, K, V comparable](g *Grouping[T, K, V]) *Synchronized[T, K, V] {
	return &Synchronized[T, K, V]{
		g:   g,
		mtx: &sync.RWMutex{},
	}
}

func (s *Synchronized[T, K, V]) Set(key K, value V) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.g.Set(key, value)
}

func (s *Synchronized[T, K, V]) Add(item T) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.g.Add(item)
}

func (s *Synchronized[T, K, V]) Update(items []T) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.g.Update(items)
}

func (s *Synchronized[T, K, V]) UpdateMap(m map[K][]V) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.g.UpdateMap(m)
}

// UpdateGroups snapshots src before taking the lock, so src may be s itself.
func (s *Synchronized[T, K, V]) UpdateGroups(src Groups[K, V]) {
	keys := src.Keys()
	snapshot := make([]util.Pair[K, Bucket[V]], 0, len(keys))
	for _, key := range keys {
		if b, ok := src.Get(key); ok {
			snapshot = append(snapshot, util.NewPair(key, b.Clone()))
		}
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	for _, item := range snapshot {
		s.g.bucket(item.First).Merge(item.Second)
	}
}

func (s *Synchronized[T, K, V]) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.g.Len()
}

func (s *Synchronized[T, K, V]) Keys() []K {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.g.Keys()
}

func (s *Synchronized[T, K, V]) Contains(key K) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.g.Contains(key)
}

// Get returns a copy of the bucket for key.
func (s *Synchronized[T, K, V]) Get(key K) (Bucket[V], bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	b, ok := s.g.Get(key)
	if !ok {
		return nil, false
	}
	return b.Clone(), true
}

// Lookup returns a copy of the bucket for key or a KeyNotFoundError.
func (s *Synchronized[T, K, V]) Lookup(key K) (Bucket[V], error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	b, err := s.g.Lookup(key)
	if err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

func (s *Synchronized[T, K, V]) AsMap() map[K][]V {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.g.AsMap()
}

func (s *Synchronized[T, K, V]) MostCommon() []util.Pair[K, Bucket[V]] {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return cloneItems(s.g.MostCommon())
}

func (s *Synchronized[T, K, V]) MostCommonN(n int) ([]util.Pair[K, Bucket[V]], error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	items, err := s.g.MostCommonN(n)
	if err != nil {
		return nil, err
	}
	return cloneItems(items), nil
}

// Snapshot returns an independent copy of the wrapped grouping.
func (s *Synchronized[T, K, V]) Snapshot() *Grouping[T, K, V] {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	g := &Grouping[T, K, V]{
		buckets: make(map[K]Bucket[V], len(s.g.keys)),
		keys:    s.g.Keys(),
		kind:    s.g.kind,
		keyFn:   s.g.keyFn,
		valueFn: s.g.valueFn,
	}
	for key, b := range s.g.buckets {
		g.buckets[key] = b.Clone()
	}
	return g
}

func cloneItems[K, V comparable](items []util.Pair[K, Bucket[V]]) []util.Pair[K, Bucket[V]] {
	for i := range items {
		items[i].Second = items[i].Second.Clone()
	}
	return items
}
