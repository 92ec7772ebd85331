package vec

import "iter"

// All returns an index/value sequence over the elements in order.
// The sequence reads live state: reallocating or shifting the vector while
// ranging has the same hazards as holding a stale Slice view.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.items.at(i)) {
				return
			}
		}
	}
}

// Values returns a value-only sequence over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.at(i)) {
				return
			}
		}
	}
}

// Backward returns an index/value sequence over the elements in reverse
// order.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.items.at(i)) {
				return
			}
		}
	}
}

// Slice returns the elements as a slice aliasing the vector's storage.
// Writes through it are visible to the vector and vice versa. The view is
// pinned to the current block: any operation that reallocates or shifts
// elements leaves it pointing at stale storage, exactly like an invalidated
// iterator. Its capacity is clipped to the length, so appending to the view
// forks it instead of scribbling on the vector's spare slots.
func (v *Vector[T]) Slice() []T {
	return v.items.data()[:v.size:v.size]
}
