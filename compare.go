package vec

import "cmp"

// Equal reports whether a and b have the same length and equal elements at
// every index.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if *a.items.at(i) != *b.items.at(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality, for element
// types that are not comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(*a.items.at(i), *b.items.at(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides, and if one vector is a prefix of the other the shorter one is
// less. Returns -1, 0, or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(*a.items.at(i), *b.items.at(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := compare(*a.items.at(i), *b.items.at(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders before b lexicographically.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
