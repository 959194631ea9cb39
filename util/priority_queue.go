package util

import "container/heap"

/*
PriorityQueue is a simple heap-based priority queue. Ordering is supplied by
the caller: the element that is less than every other element is popped
first. We use it to select the leading entries of a ranking without sorting
the whole input.
*/

////////////////////////////////////////////////////////////////////////////////

type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items: make([]T, 0),
		less:  less,
	}
}

func (pq *PriorityQueue[_]) Len() int {
	return len(pq.items)
}

func (pq *PriorityQueue[_]) Less(i, j int) bool {
	return pq.less(pq.items[i], pq.items[j])
}

func (pq *PriorityQueue[_]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

func (pq *PriorityQueue[T]) Push(item any) {
	value, ok := item.(T)
	if !ok {
		panic("invalid type")
	}
	pq.items = append(pq.items, value)
}

func (pq *PriorityQueue[T]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[0 : n-1]
	return item
}

// Peek returns the least element without removing it. It panics if the queue
// is empty.
func (pq *PriorityQueue[T]) Peek() T {
	return pq.items[0]
}

// TopN returns the n greatest elements of items under less, greatest first.
// less must be a strict total order for the result to be deterministic. The
// input is scanned once while a heap of at most n elements holds the current
// leaders.
func TopN[T any](items []T, n int, less func(a, b T) bool) []T {
	if n <= 0 {
		return []T{}
	}
	pq := NewPriorityQueue(less)
	heap.Init(pq)
	for _, item := range items {
		if pq.Len() < n {
			heap.Push(pq, item)
			continue
		}
		if less(pq.Peek(), item) {
			pq.items[0] = item
			heap.Fix(pq, 0)
		}
	}
	result := make([]T, pq.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(pq).(T)
	}
	return result
}
