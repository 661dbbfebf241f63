//go:build bitvecdebug

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckedIndexOutOfRange(t *testing.T) {
	bv := New(8)

	require.Panics(t, func() { bv.Get(8) })
	require.Panics(t, func() { bv.Set(8) })
	require.Panics(t, func() { bv.Clear(-1) })
	require.Panics(t, func() { bv.Flip(100) })

	require.NotPanics(t, func() { bv.Set(7) })
}

func TestCheckedDoubleRelease(t *testing.T) {
	bv := New(8)

	bv.Release()
	require.Panics(t, func() { bv.Release() })
	require.Panics(t, func() { bv.Get(0) })
}

func TestCheckedDumpLineWidth(t *testing.T) {
	bv := New(8)

	require.Panics(t, func() { _ = bv.Dump(nil, 0) })
}

func TestCheckedIndexLengthMismatch(t *testing.T) {
	require.Panics(t, func() { LinearIndex([]int{2, 2}, []int{1}) })
	require.Panics(t, func() { InverseLinearIndex([]int{2, 2}, 3, make([]int, 1)) })
}
