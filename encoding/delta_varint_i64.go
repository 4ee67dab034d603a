package encoding

import (
	"encoding/binary"

	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/varint"
)

// allValidMarker is the single byte that prefixes a DeltaVarintI64
// payload. It has no other value today; a future version could use it to
// signal an alternate delta scheme.
const allValidMarker = 0x01

// EligibleForDeltaVarintI64 reports whether a column can use
// DeltaVarintI64: its logical type must be I64 or TimestampTzMicros and
// every row must be valid (no nulls).
func EligibleForDeltaVarintI64(isI64Like bool, validity []byte, n uint32) bool {
	return isI64Like && batch.CountValid(validity, n) == int(n)
}

// EncodeDeltaVarintI64 appends the DeltaVarintI64 payload for an all-valid
// I64/TimestampTzMicros column to dst. col.Data holds n*8 little-endian
// bytes; callers must have already confirmed EligibleForDeltaVarintI64.
func EncodeDeltaVarintI64(dst []byte, col batch.ColumnData, n uint32) []byte {
	dst = append(dst, allValidMarker)

	var prev int64

	for i := uint32(0); i < n; i++ {
		v := int64(binary.LittleEndian.Uint64(col.Data[i*8 : i*8+8]))

		var delta int64
		if i == 0 {
			delta = v
		} else {
			delta = v - prev
		}

		dst = varint.AppendVarint(dst, delta)
		prev = v
	}

	return dst
}

// DecodeDeltaVarintI64 parses a DeltaVarintI64 payload for n rows from the
// front of src, returning the decoded column data (validity all-valid) and
// the number of bytes consumed. dst's Validity and Data slices are reused
// when they already have enough capacity; pass a zero batch.ColumnData for
// a fresh allocation.
func DecodeDeltaVarintI64(dst batch.ColumnData, src []byte, n uint32) (batch.ColumnData, int, error) {
	if len(src) < 1 {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "delta_varint_i64 payload truncated before marker")
	}

	if src[0] != allValidMarker {
		return batch.ColumnData{}, 0, errs.New(errs.Malformed, "delta_varint_i64 marker is %#x, want %#x", src[0], allValidMarker)
	}

	if uint64(len(src)-1) < uint64(n) {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "delta_varint_i64 payload has %d bytes after the marker, need at least one per row for %d rows", len(src)-1, n)
	}

	off := 1
	data := reuseBytes(dst.Data, int(n)*8)

	var prev int64

	for i := uint32(0); i < n; i++ {
		delta, read, verr := varint.ReadVarint(src[off:])
		if verr != nil {
			return batch.ColumnData{}, 0, verr
		}

		off += read

		var v int64
		if i == 0 {
			v = delta
		} else {
			v = prev + delta
		}

		binary.LittleEndian.PutUint64(data[i*8:i*8+8], uint64(v))
		prev = v
	}

	validity := reuseBytes(dst.Validity, batch.ValidityLen(n))
	for i := range validity {
		validity[i] = 0xff
	}

	if n%8 != 0 {
		validity[len(validity)-1] &^= byte(0xff << (n % 8))
	}

	return batch.ColumnData{Validity: validity, Data: data}, off, nil
}
