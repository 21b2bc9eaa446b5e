// Package math includes the small integer helpers the Merkle engine depends on.
package math

import "math/bits"

// IsPowerOf2 returns true if n is an exact power of two. 0 is not a power of two.
func IsPowerOf2(n uint64) bool {
	return n != 0 && (n&(n-1)) == 0
}

// PowerOf2 returns an integer that is the provided exponent of 2.
// Can only return powers of 2 till 63, after that it overflows.
func PowerOf2(n uint64) uint64 {
	if n >= 64 {
		panic("integer overflow")
	}
	return 1 << n
}

// Depth returns the number of tree levels below a node addressed by the
// given generalized index, i.e. the number of sibling hashes a proof for
// that node carries.
func Depth(gindex uint64) int {
	if gindex == 0 {
		return 0
	}
	return bits.Len64(gindex) - 1
}
