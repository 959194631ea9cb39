package util

import "fmt"

// Pair is a generic pair of values.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// GetFirst returns the first element of the pair.
func (p Pair[A, B]) GetFirst() A {
	return p.First
}

// GetSecond returns the second element of the pair.
func (p Pair[A, B]) GetSecond() B {
	return p.Second
}

// String returns a string representation of the pair.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
