package vec

import "fmt"

// Vector is a dynamically-resizable contiguous sequence. The logical length
// never exceeds the capacity of the backing block; slots between the two are
// allocated storage that is not considered present. Not goroutine-safe:
// concurrent mutation of one vector is undefined by contract.
type Vector[T any] struct {
	items block[T]
	size  int
	grows uint64 // reallocations performed, see metrics.go
}

// New creates an empty vector with no backing storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize creates a vector of n default-valued elements, with capacity n.
// Panics if n is negative.
func NewSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vec: NewSize with negative size")
	}
	return &Vector[T]{items: newBlock[T](n), size: n}
}

// Repeat creates a vector of n copies of value, with capacity n.
// Panics if n is negative.
func Repeat[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	items := v.items.data()
	for i := range items {
		items[i] = value
	}
	return v
}

// Of creates a vector holding the given values in order, with capacity equal
// to the value count.
func Of[T any](values ...T) *Vector[T] {
	v := NewSize[T](len(values))
	copy(v.items.data(), values)
	return v
}

// FromSlice creates a vector holding a deep copy of s. The vector never
// aliases s.
func FromSlice[T any](s []T) *Vector[T] {
	return Of(s...)
}

// WithCapacity creates an empty vector with storage for capacity elements
// already allocated. Panics if capacity is negative.
func WithCapacity[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		panic("vec: WithCapacity with negative capacity")
	}
	return &Vector[T]{items: newBlock[T](capacity)}
}

// Clone returns a deep copy of v. The copy gets its own block sized to
// v.Len(), so spare capacity is not carried over.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{items: newBlock[T](v.size), size: v.size}
	copy(c.items.data(), v.items.data()[:v.size])
	return c
}

// CopyFrom replaces v's contents with a deep copy of other. Assigning a
// vector to itself is a no-op. An empty source short-circuits to Clear,
// keeping v's storage; otherwise the copy is built completely before v is
// touched, so a partial copy never leaks into v.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	if other.Empty() {
		v.Clear()
		return
	}
	tmp := other.Clone()
	v.Swap(tmp)
}

// MoveFrom steals other's block, length, and growth count, leaving other
// empty with no storage. Constant time, never allocates.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.items = adoptBlock(other.items.release())
	v.size, other.size = other.size, 0
	v.grows, other.grows = other.grows, 0
}

// Len returns the logical element count.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int {
	return v.items.cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Ref returns a pointer to element i without checking it against Len.
// This is the hot unchecked path: an index in [Len, Cap) reads allocated
// storage whose value is whatever was last written there, and an index
// outside the capacity panics at the runtime bounds check. Use At for the
// checked variant.
func (v *Vector[T]) Ref(i int) *T {
	return v.items.at(i)
}

// Get returns element i by value, with Ref's unchecked contract.
func (v *Vector[T]) Get(i int) T {
	return *v.items.at(i)
}

// Set overwrites element i, with Ref's unchecked contract.
func (v *Vector[T]) Set(i int, value T) {
	*v.items.at(i) = value
}

// At returns a pointer to element i, or ErrOutOfRange when i is not inside
// [0, Len()) — including i == Len on a non-empty vector.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, v.size)
	}
	return v.items.at(i), nil
}

// Front returns a pointer to the first element.
// Panics if the vector is empty.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		panic("vec: Front on empty vector")
	}
	return v.items.at(0)
}

// Back returns a pointer to the last element.
// Panics if the vector is empty.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		panic("vec: Back on empty vector")
	}
	return v.items.at(v.size - 1)
}

// Clear resets the length to zero. Capacity and storage are untouched: no
// slot is freed or zeroed, so values past the new length stay readable
// through the unchecked accessors until overwritten.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve grows the capacity to at least newCap, moving the existing
// elements into a fresh block. A newCap at or below the current capacity is
// a no-op. Length is never changed.
func (v *Vector[T]) Reserve(newCap int) {
	if newCap <= v.items.cap() {
		return
	}
	nb := v.reallocate(newCap)
	v.items.swap(&nb)
}

// Resize sets the length to newSize. Growing past the capacity reallocates
// using the doubling policy and leaves the new slots default-valued; growing
// within the capacity re-defaults the slots being exposed, since they may
// hold stale values from earlier operations. Shrinking only truncates.
// Panics if newSize is negative.
func (v *Vector[T]) Resize(newSize int) {
	if newSize < 0 {
		panic("vec: Resize to negative size")
	}
	switch {
	case newSize > v.items.cap():
		nb := v.reallocate(growCap(v.items.cap(), newSize))
		v.items.swap(&nb)
	case newSize > v.size:
		clear(v.items.data()[v.size:newSize])
	}
	v.size = newSize
}

// PushBack appends value. Amortized constant time: when the block is full
// the capacity doubles (or jumps straight to the required size if doubling
// is not enough), and the new block is fully populated before it is swapped
// in.
func (v *Vector[T]) PushBack(value T) {
	if v.size+1 > v.items.cap() {
		nb := v.reallocate(growCap(v.items.cap(), v.size+1))
		*nb.at(v.size) = value
		v.items.swap(&nb)
	} else {
		*v.items.at(v.size) = value
	}
	v.size++
}

// Append appends all values in order with a single growth step.
func (v *Vector[T]) Append(values ...T) {
	need := v.size + len(values)
	if need > v.items.cap() {
		nb := v.reallocate(growCap(v.items.cap(), need))
		v.items.swap(&nb)
	}
	copy(v.items.data()[v.size:need], values)
	v.size = need
}

// PopBack removes the last element. The slot keeps its value until
// overwritten. Panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
}

// Insert places value at index i, shifting elements at and after i one slot
// right. When growth is needed the transfer into the new block is split
// around i, so nothing moves twice. Returns i, the index now holding value.
// Panics unless 0 <= i <= Len.
func (v *Vector[T]) Insert(i int, value T) int {
	if i < 0 || i > v.size {
		panic("vec: Insert index out of range")
	}
	if v.size+1 <= v.items.cap() {
		items := v.items.data()
		copy(items[i+1:v.size+1], items[i:v.size])
		items[i] = value
	} else {
		nb := newBlock[T](growCap(v.items.cap(), v.size+1))
		copy(nb.data(), v.items.data()[:i])
		*nb.at(i) = value
		copy(nb.data()[i+1:], v.items.data()[i:v.size])
		v.grows++
		v.items.swap(&nb)
	}
	v.size++
	return i
}

// Erase removes the element at index i, shifting the tail one slot left.
// Returns i, which now holds the element that followed the removed one (or
// equals Len when the last element was removed). Panics unless
// 0 <= i < Len.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic("vec: Erase index out of range")
	}
	items := v.items.data()
	copy(items[i:v.size-1], items[i+1:v.size])
	v.size--
	return i
}

// Swap exchanges the complete state of two vectors in constant time.
// Never fails, never allocates.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.swap(&other.items)
	v.size, other.size = other.size, v.size
	v.grows, other.grows = other.grows, v.grows
}

// reallocate builds a block of newCap slots holding the first
// min(newCap, size) elements at their original positions, and counts the
// reallocation. The caller swaps the result in; no vector field changes
// until the block is fully built.
func (v *Vector[T]) reallocate(newCap int) block[T] {
	nb := newBlock[T](newCap)
	n := min(newCap, v.size)
	copy(nb.data(), v.items.data()[:n])
	v.grows++
	return nb
}

// growCap is the growth policy: double the capacity, but never less than
// the immediate requirement. The doubling keeps appends amortized O(1); the
// floor keeps a single oversized Resize or Insert correct.
func growCap(current, need int) int {
	return max(current*2, need)
}
