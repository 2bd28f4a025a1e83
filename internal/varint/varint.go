// Package varint implements unsigned base-128 LEB variable-length integer
// encoding, as used throughout gdelta's wire format.
//
// The write loop is the familiar continuation-bit encoding shared by most
// varint writers; this package adds a bounded reader since a delta decoder,
// unlike a pure encoder, has to defend against adversarial or corrupted
// input.
package varint

import "github.com/tomarus/gdelta/errs"

// MaxWidth bounds how many bytes Read will consume before giving up with
// errs.ErrOverflow. 10 bytes covers the full uint64 range (64 bits / 7 bits
// per byte, rounded up).
const MaxWidth = 10

// Append encodes v as an unsigned base-128 LEB varint and appends it to dst,
// returning the extended slice. It always produces the shortest possible
// encoding: 1 to 10 bytes, one byte per started group of 7 significant bits
// of v (at least one), with the continuation bit clear only on the last.
func Append(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Read decodes an unsigned base-128 LEB varint from the front of src.
// It returns the decoded value and the number of bytes consumed.
//
// Read fails with errs.ErrTruncated if src ends before a byte with the
// continuation bit clear is seen, and with errs.ErrOverflow if more than
// MaxWidth bytes are consumed or the accumulated value would exceed
// 2^64-1.
func Read(src []byte) (v uint64, n int, err error) {
	var shift uint
	for n = 0; ; n++ {
		if n >= MaxWidth {
			return 0, 0, errs.ErrOverflow
		}
		if n >= len(src) {
			return 0, 0, errs.ErrTruncated
		}

		b := src[n]
		if n == MaxWidth-1 && b > 1 {
			// 10 bytes of 7 bits each can hold at most 70 bits; the 10th
			// byte may only contribute its lowest bit without overflowing
			// 64 bits.
			return 0, 0, errs.ErrOverflow
		}

		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, n + 1, nil
		}
		shift += 7
	}
}
