// Package vec implements a generic growable vector: a contiguous sequence
// with a logical length below a physical capacity, grown by doubling.
//
// # Overview
//
// The vector keeps exactly one owning block of contiguous element slots.
// Appending past the capacity allocates a block of max(2*cap, required)
// slots, copies the elements across, and swaps the new block in. The
// doubling keeps a long run of appends amortized O(1); the floor keeps a
// single oversized Resize or Insert correct. This is useful for:
//
//   - Append-heavy accumulation where builtin append's growth heuristics
//     should be explicit and observable
//   - Code that needs the size/capacity split surfaced (Reserve, Clear
//     without release, spare-slot reuse)
//   - Ports of sequence code written against a vector contract
//
// # Basic Usage
//
//	v := vec.New[int]()
//	v.Reserve(64)
//	for i := 0; i < 10; i++ {
//		v.PushBack(i * i)
//	}
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
//	v.Insert(0, -1)  // shift right
//	v.Erase(v.Len() - 1)
//
// # Checked and Unchecked Access
//
// Ref, Get, and Set do not check the index against the length: that is the
// hot path, and an index in [Len, Cap) reads allocated storage holding
// whatever was last written there. An index outside the capacity panics at
// the Go runtime's bounds check rather than corrupting memory. At is the
// checked variant and returns ErrOutOfRange instead of panicking.
//
// PopBack, Front, Back, Insert, and Erase panic when their index
// preconditions are violated.
//
// # Ownership
//
// Each vector exclusively owns its block. Clone deep-copies, CopyFrom is
// copy-and-swap (the target is untouched until the copy is complete), and
// MoveFrom steals the block in O(1) leaving the source empty. Swap
// exchanges complete state without allocating.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized, O(n) on a growth step
//   - Insert/Erase: O(n) shift
//   - Reserve/growing Resize: O(n) copy into the new block
//   - Clear/PopBack/Swap/MoveFrom: O(1), no allocation, no zeroing
//
// # Important Notes
//
//   - Clear and PopBack only move the length. Slots past the length keep
//     their old values until overwritten; in particular, pointer elements
//     are not released to the garbage collector until then.
//   - Slice returns an aliasing view pinned to the current block. Any
//     reallocating or shifting operation invalidates it.
//   - Not goroutine-safe. Concurrent mutation of one vector is undefined
//     by contract.
//
// # Statistics
//
// The vector tracks its reallocations and exposes a snapshot:
//
//	stats := v.Stats()
//	fmt.Printf("len=%d cap=%d grows=%d util=%.2f\n",
//		stats.Len, stats.Cap, stats.Grows, stats.Utilization)
package vec
