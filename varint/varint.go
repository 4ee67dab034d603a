// Package varint implements the LEB128 unsigned varint and zig-zag signed
// varint encoding used by the MATHLDBT wire format for DictUtf8 index
// streams and DeltaVarintI64 deltas. Column name lengths and payload
// lengths are fixed-width u32 fields, not varints.
package varint

import (
	"encoding/binary"

	"github.com/mathldbt/mathldbt/errs"
)

// MaxLen is the largest number of bytes a varint can occupy.
const MaxLen = binary.MaxVarintLen64

// AppendUvarint appends the LEB128 encoding of v to dst and returns the
// extended slice.
func AppendUvarint(dst []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte

	n := binary.PutUvarint(tmp[:], v)

	return append(dst, tmp[:n]...)
}

// ReadUvarint reads a LEB128-encoded uint64 from the front of src. It
// returns the decoded value, the number of bytes consumed, and an error if
// src is truncated or the encoding overflows 64 bits. binary.Uvarint never
// reads past MaxLen bytes of src.
func ReadUvarint(src []byte) (uint64, int, error) {
	v, n := binary.Uvarint(src)

	switch {
	case n > 0:
		return v, n, nil
	case n == 0:
		return 0, 0, errs.New(errs.Truncated, "uvarint truncated after %d bytes", len(src))
	default:
		return 0, 0, errs.New(errs.Malformed, "uvarint exceeds %d bytes", MaxLen)
	}
}

// ZigZagEncode maps a signed int64 to a uint64 so that small-magnitude
// values (positive or negative) produce small unsigned values, per the
// standard zig-zag transform.
func ZigZagEncode(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// ZigZagDecode inverts ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendVarint appends the zig-zag + LEB128 encoding of the signed value n.
func AppendVarint(dst []byte, n int64) []byte {
	return AppendUvarint(dst, ZigZagEncode(n))
}

// ReadVarint reads a zig-zag + LEB128-encoded int64 from the front of src,
// returning the decoded value and the number of bytes consumed.
func ReadVarint(src []byte) (int64, int, error) {
	u, n, err := ReadUvarint(src)
	if err != nil {
		return 0, 0, err
	}

	return ZigZagDecode(u), n, nil
}
