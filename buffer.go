package vec

// block is the vector's owning handle over a contiguous heap-allocated run
// of element slots. Exactly one block owns a given run at any time: transfer
// happens through swap or release, both of which empty the source, and block
// values are never copied. The vector above it is what keeps indices inside
// the logical size; a block only guarantees slots inside its capacity.
type block[T any] struct {
	raw []T
}

// newBlock allocates n default-valued slots. n == 0 yields the empty handle
// and performs no allocation.
func newBlock[T any](n int) block[T] {
	if n == 0 {
		return block[T]{}
	}
	return block[T]{raw: make([]T, n)}
}

// adoptBlock wraps an already-allocated run. The caller hands over ownership
// and must not retain the slice.
func adoptBlock[T any](raw []T) block[T] {
	return block[T]{raw: raw}
}

// release returns the raw run and empties the handle. The caller owns the
// result; releasing an empty handle returns nil.
func (b *block[T]) release() []T {
	raw := b.raw
	b.raw = nil
	return raw
}

// at returns a pointer to slot i. No size discipline here: any i inside the
// block's capacity is a valid slot, anything outside panics at the runtime
// bounds check.
func (b *block[T]) at(i int) *T {
	return &b.raw[i]
}

// data exposes the full run for bulk copies within the package.
func (b *block[T]) data() []T {
	return b.raw
}

// isSet reports whether the handle owns a run.
func (b *block[T]) isSet() bool {
	return b.raw != nil
}

// cap returns the number of slots in the owned run.
func (b *block[T]) cap() int {
	return len(b.raw)
}

// swap exchanges the owned runs of two handles in constant time.
// Never allocates.
func (b *block[T]) swap(other *block[T]) {
	b.raw, other.raw = other.raw, b.raw
}
