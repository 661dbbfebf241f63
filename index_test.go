package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearIndex(t *testing.T) {
	require.Equal(t, 0, LinearIndex([]int{2, 2}, []int{0, 0}))
	require.Equal(t, 1, LinearIndex([]int{2, 2}, []int{0, 1}))
	require.Equal(t, 2, LinearIndex([]int{2, 2}, []int{1, 0}))
	require.Equal(t, 3, LinearIndex([]int{2, 2}, []int{1, 1}))

	// One dimension flattens to the index itself
	require.Equal(t, 7, LinearIndex([]int{10}, []int{7}))

	// Last coordinate of a 4x3x2 grid is product-1
	require.Equal(t, 23, LinearIndex([]int{4, 3, 2}, []int{3, 2, 1}))
}

func TestLinearIndexRowMajorOrder(t *testing.T) {
	dims := []int{2, 3, 4}

	// Odometer order over the coordinates, last dimension fastest, must
	// yield consecutive linear indices
	expected := 0
	for i := 0; i < dims[0]; i++ {
		for j := 0; j < dims[1]; j++ {
			for k := 0; k < dims[2]; k++ {
				require.Equal(t, expected, LinearIndex(dims, []int{i, j, k}))
				expected++
			}
		}
	}
}

func TestInverseLinearIndex(t *testing.T) {
	indices := make([]int, 3)

	InverseLinearIndex([]int{4, 3, 2}, 23, indices)
	require.Equal(t, []int{3, 2, 1}, indices)

	InverseLinearIndex([]int{4, 3, 2}, 0, indices)
	require.Equal(t, []int{0, 0, 0}, indices)
}

func TestLinearIndexRoundTrip(t *testing.T) {
	dims := []int{3, 4, 5}
	total := dims[0] * dims[1] * dims[2]

	indices := make([]int, len(dims))
	for index := 0; index < total; index++ {
		InverseLinearIndex(dims, index, indices)
		for d := range dims {
			require.Less(t, indices[d], dims[d])
		}
		require.Equal(t, index, LinearIndex(dims, indices))
	}
}
