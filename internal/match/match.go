// Package match implements the common-prefix, common-suffix, and
// bidirectional extend primitives the encoder uses to size candidate
// matches against Base.
//
// Each has a wide-word fast path: compare 8 bytes at a time via an unaligned
// uint64 load, and on a mismatching word use bits.TrailingZeros64 to find the
// first differing byte without a byte-by-byte scan of that word — the same
// technique an LZO-style match finder uses to extend matches, generalized
// here from a fixed ring buffer to arbitrary byte slices, plus a backward
// variant for suffix/back-extension.
//
// Every fast-path result must equal the byte-wise reference: the tests'
// refCommonPrefix and refCommonSuffix exist precisely to assert that
// equivalence on every shape of input (empty, sub-word, word-aligned,
// unaligned-tail).
package match

import (
	"math/bits"
	"unsafe"
)

const wordSize = 8

// CommonPrefix returns the largest k such that a[:k] == b[:k].
func CommonPrefix(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i+wordSize <= n {
		aw := loadWord(a, i)
		bw := loadWord(b, i)
		if aw == bw {
			i += wordSize
			continue
		}

		return i + bits.TrailingZeros64(aw^bw)/8
	}

	for i < n && a[i] == b[i] {
		i++
	}

	return i
}

// CommonSuffix returns the largest k such that a[len(a)-k:] == b[len(b)-k:].
func CommonSuffix(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i+wordSize <= n {
		aw := loadWordFromEnd(a, i)
		bw := loadWordFromEnd(b, i)
		if aw == bw {
			i += wordSize
			continue
		}

		return i + bits.LeadingZeros64(aw^bw)/8
	}

	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}

	return i
}

// Extend walks forward from the split point between aBefore/aAfter and
// bBefore/bAfter until a mismatch, then walks backward from the same pair
// of split points until a mismatch. It returns (backward, forward), the
// number of matching bytes found in each direction.
//
// The split points need not be the start of an already-matched window; the
// caller is responsible for ensuring the back-extension does not reclaim
// bytes belonging to an already-emitted instruction — Extend itself only
// measures how far the match goes in each direction within the slices it is
// given.
func Extend(aBefore, aAfter, bBefore, bAfter []byte) (backward, forward int) {
	forward = CommonPrefix(aAfter, bAfter)
	backward = CommonSuffix(aBefore, bBefore)

	return backward, forward
}

// loadWord reads 8 bytes starting at offset i as a native-order word. Byte
// order does not matter for the equality comparison, but CommonPrefix and
// CommonSuffix turn TrailingZeros64/LeadingZeros64 bit counts into byte
// positions assuming a little-endian host.
func loadWord(b []byte, i int) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[i]))
}

// loadWordFromEnd reads the 8 bytes that end i bytes before the end of b,
// for use in backward (suffix) scanning.
func loadWordFromEnd(b []byte, i int) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[len(b)-i-wordSize]))
}
