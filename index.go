package bitvec

// LinearIndex flattens a multi-dimensional coordinate into a single
// row-major offset, with the last dimension varying fastest. It allows a
// flat array (or BitVector) to be addressed as if it were higher
// dimensional:
//
//	i := LinearIndex([]int{2, 2}, []int{1, 1}) // i == 3
//
// The caller guarantees indices[d] < dims[d] for every dimension; no bounds
// checking is performed.
func LinearIndex(dims, indices []int) int {
	check(len(dims) == len(indices), "LinearIndex: dims and indices lengths differ")

	index := 0
	multiplier := 1
	for d := len(dims) - 1; d >= 0; d-- {
		index += indices[d] * multiplier
		multiplier *= dims[d]
	}
	return index
}

// InverseLinearIndex recovers the coordinate vector that LinearIndex maps
// to index, writing it into the caller-supplied indices slice. The result
// round-trips through LinearIndex provided index < product(dims).
func InverseLinearIndex(dims []int, index int, indices []int) {
	check(len(dims) == len(indices), "InverseLinearIndex: dims and indices lengths differ")

	for d := len(dims) - 1; d >= 0; d-- {
		indices[d] = index % dims[d]
		index /= dims[d]
	}
}
