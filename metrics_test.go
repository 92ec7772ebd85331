package vec

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsSnapshot(t *testing.T) {
	v := WithCapacity[int](8)
	v.Append(1, 2, 3)

	s := v.Stats()
	assert.Equal(t, 3, s.Len)
	assert.Equal(t, 8, s.Cap)
	assert.Equal(t, 5, s.Spare)
	assert.EqualValues(t, 0, s.Grows)
	assert.InDelta(t, 0.375, s.Utilization, 1e-9)
}

func TestUtilizationEmpty(t *testing.T) {
	v := New[int]()
	assert.Equal(t, 0.0, v.Utilization(), "no storage means zero utilization")

	v.PushBack(1)
	assert.Equal(t, 1.0, v.Utilization())
}

// A run of N pushes from empty must reallocate O(log N) times: once for the
// first element, then once per capacity doubling.
func TestGrowsLogarithmically(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 100, 1000, 4096} {
		v := New[int]()
		for i := 0; i < n; i++ {
			v.PushBack(i)
		}

		want := uint64(1 + ceilLog2(n))
		assert.Equal(t, want, v.Grows(), "grows after %d pushes", n)
		assert.GreaterOrEqual(t, v.Cap(), n)
	}
}

func TestGrowsFollowsTheBlock(t *testing.T) {
	v := New[int]()
	for i := 0; i < 10; i++ {
		v.PushBack(i)
	}
	grown := v.Grows()

	stolen := New[int]()
	stolen.MoveFrom(v)
	assert.Equal(t, grown, stolen.Grows())
	assert.EqualValues(t, 0, v.Grows(), "moved-from vector starts counting afresh")

	other := New[int]()
	other.Swap(stolen)
	assert.Equal(t, grown, other.Grows())
	assert.EqualValues(t, 0, stolen.Grows())
}

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
