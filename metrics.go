package vec

// Spare returns the number of allocated slots not currently holding
// elements (Cap - Len).
func (v *Vector[T]) Spare() int {
	return v.items.cap() - v.size
}

// Grows returns how many times the vector has reallocated its block since
// construction. A sequence of N appends from empty performs O(log N) grows
// under the doubling policy; this counter makes that observable. Swap and
// MoveFrom carry the counter along with the block it describes.
func (v *Vector[T]) Grows() uint64 {
	return v.grows
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 when no storage is allocated.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.items.cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Stats returns a snapshot of vector statistics.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.size,
		Cap:         v.items.cap(),
		Spare:       v.Spare(),
		Grows:       v.grows,
		Utilization: v.Utilization(),
	}
}

// Stats contains statistical information about a vector.
type Stats struct {
	Len         int     // Elements currently present
	Cap         int     // Allocated element slots
	Spare       int     // Cap - Len
	Grows       uint64  // Reallocations since construction
	Utilization float64 // Ratio of length to capacity (0.0-1.0)
}
