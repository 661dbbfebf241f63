package bitvec

import (
	"bytes"
	"fmt"
	"io"
)

// BitVector is a fixed-capacity dense bit container backed by a byte slice
// of ceil(bitLen/8) bytes. The capacity is fixed at construction.
//
// Bits are indexed LittleEndian within each byte
//
// Bits
// 1 0 0 1 1 1 1 0
//
// Index
// 7 6 5 4 3 2 1 0
//
// Bits in the final byte beyond BitLen are not addressable through the
// index-bounded operations, but whole-byte operations (SetAll, Not, Or, And,
// Xor, Equal) do touch them. See Equal for the consequences.
//
// A BitVector is not safe for concurrent use. Callers needing concurrent
// access must synchronize externally.
type BitVector struct {
	bits   []byte
	bitLen int
}

// New returns a BitVector holding bitLen bits, all zero.
func New(bitLen int) *BitVector {
	check(bitLen >= 0, "New: negative bit length")

	return &BitVector{
		bits:   make([]byte, (bitLen+7)/8),
		bitLen: bitLen,
	}
}

// BitLen returns the number of addressable bits.
func (bv *BitVector) BitLen() int {
	check(bv != nil, "BitLen: nil BitVector")
	return bv.bitLen
}

// ByteLen returns the number of storage bytes, ceil(BitLen/8).
func (bv *BitVector) ByteLen() int {
	check(bv != nil, "ByteLen: nil BitVector")
	return (bv.bitLen + 7) / 8
}

// Release drops the storage and resets the length to zero. It mirrors an
// explicit free: a released BitVector must not be used again, and releasing
// twice is a contract violation (checked under the bitvecdebug build tag).
func (bv *BitVector) Release() {
	check(bv != nil && bv.bits != nil, "Release: BitVector already released")
	bv.bits = nil
	bv.bitLen = 0
}

// Clone returns a new BitVector with the same length and an independent
// byte-for-byte copy of the storage, trailing unused bits included.
func (bv *BitVector) Clone() *BitVector {
	check(bv != nil && bv.bits != nil, "Clone: released or zero-value BitVector")

	dup := make([]byte, len(bv.bits))
	copy(dup, bv.bits)

	return &BitVector{
		bits:   dup,
		bitLen: bv.bitLen,
	}
}

// SetAll sets every storage byte to 0xFF. This also sets the unused trailing
// bits beyond BitLen; they are not addressable, but they are not guaranteed
// clear either.
func (bv *BitVector) SetAll() {
	check(bv != nil && bv.bits != nil, "SetAll: released or zero-value BitVector")
	for i := range bv.bits {
		bv.bits[i] = 0xFF
	}
}

// ClearAll sets every storage byte to zero.
func (bv *BitVector) ClearAll() {
	check(bv != nil && bv.bits != nil, "ClearAll: released or zero-value BitVector")
	for i := range bv.bits {
		bv.bits[i] = 0
	}
}

// Set sets bit i to 1. i must be in [0, BitLen).
func (bv *BitVector) Set(i int) {
	check(bv != nil && bv.bits != nil, "Set: released or zero-value BitVector")
	check(i >= 0 && i < bv.bitLen, "Set: index out of range")

	bv.bits[i>>3] |= 1 << (i % 8)
}

// Clear sets bit i to 0. i must be in [0, BitLen).
func (bv *BitVector) Clear(i int) {
	check(bv != nil && bv.bits != nil, "Clear: released or zero-value BitVector")
	check(i >= 0 && i < bv.bitLen, "Clear: index out of range")

	bv.bits[i>>3] &^= 1 << (i % 8)
}

// Get reports whether bit i is set. i must be in [0, BitLen).
func (bv *BitVector) Get(i int) bool {
	check(bv != nil && bv.bits != nil, "Get: released or zero-value BitVector")
	check(i >= 0 && i < bv.bitLen, "Get: index out of range")

	return bv.bits[i>>3]&(1<<(i%8)) != 0
}

// Flip inverts bit i. i must be in [0, BitLen).
func (bv *BitVector) Flip(i int) {
	check(bv != nil && bv.bits != nil, "Flip: released or zero-value BitVector")
	check(i >= 0 && i < bv.bitLen, "Flip: index out of range")

	bv.bits[i>>3] ^= 1 << (i % 8)
}

// opByteLen returns the number of bytes a bulk operation processes: the
// ByteLen of whichever operand has the smaller bit length.
func opByteLen(dest, src *BitVector) int {
	if src.bitLen < dest.bitLen {
		return src.ByteLen()
	}
	return dest.ByteLen()
}

// Or ORs src into bv, byte by byte.
//
// If the operands differ in length, only the shorter operand's bytes are
// processed: a longer receiver keeps its trailing bytes untouched, a longer
// src never has its extra bytes read. Use equal-length operands for
// meaningful results.
func (bv *BitVector) Or(src *BitVector) {
	check(bv != nil && bv.bits != nil, "Or: released or zero-value BitVector")
	check(src != nil && src.bits != nil, "Or: released or zero-value source BitVector")

	n := opByteLen(bv, src)
	for i := 0; i < n; i++ {
		bv.bits[i] |= src.bits[i]
	}
}

// And ANDs src into bv, byte by byte. Length-mismatch behavior is the same
// as for Or.
func (bv *BitVector) And(src *BitVector) {
	check(bv != nil && bv.bits != nil, "And: released or zero-value BitVector")
	check(src != nil && src.bits != nil, "And: released or zero-value source BitVector")

	n := opByteLen(bv, src)
	for i := 0; i < n; i++ {
		bv.bits[i] &= src.bits[i]
	}
}

// Xor XORs src into bv, byte by byte. Length-mismatch behavior is the same
// as for Or.
func (bv *BitVector) Xor(src *BitVector) {
	check(bv != nil && bv.bits != nil, "Xor: released or zero-value BitVector")
	check(src != nil && src.bits != nil, "Xor: released or zero-value source BitVector")

	n := opByteLen(bv, src)
	for i := 0; i < n; i++ {
		bv.bits[i] ^= src.bits[i]
	}
}

// Not complements every storage byte, trailing unused bits included.
// Applying Not twice restores the storage exactly.
func (bv *BitVector) Not() {
	check(bv != nil && bv.bits != nil, "Not: released or zero-value BitVector")
	for i := range bv.bits {
		bv.bits[i] = ^bv.bits[i]
	}
}

// Equal reports whether bv and other have the same bit length and identical
// storage bytes.
//
// The comparison covers the unused trailing bits of the final byte, so two
// vectors whose addressable bits all match can still compare unequal if
// operations like SetAll or Not left different values there. Vectors built
// from New and mutated only through the index-bounded operations always keep
// those bits zero and compare as expected.
func (bv *BitVector) Equal(other *BitVector) bool {
	check(bv != nil && bv.bits != nil, "Equal: released or zero-value BitVector")
	check(other != nil && other.bits != nil, "Equal: released or zero-value BitVector")

	if bv.bitLen != other.bitLen {
		return false
	}
	return bytes.Equal(bv.bits, other.bits)
}

// Dump writes each bit as '0' or '1' in index order to w, with a newline
// after every lineWidth-th bit and one trailing newline after the final bit
// regardless of position. lineWidth must be positive.
func (bv *BitVector) Dump(w io.Writer, lineWidth int) error {
	check(bv != nil && bv.bits != nil, "Dump: released or zero-value BitVector")
	check(lineWidth > 0, "Dump: non-positive line width")

	buf := make([]byte, 0, bv.bitLen+bv.bitLen/lineWidth+1)
	for i := 0; i < bv.bitLen; i++ {
		b := byte('0')
		if bv.Get(i) {
			b = '1'
		}
		buf = append(buf, b)

		if (i+1)%lineWidth == 0 {
			buf = append(buf, '\n')
		}
	}
	buf = append(buf, '\n')

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write bit dump - %w", err)
	}
	return nil
}
