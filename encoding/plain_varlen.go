package encoding

import (
	"unicode/utf8"

	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/endian"
	"github.com/mathldbt/mathldbt/errs"
)

// EncodePlainVarlen appends the plain variable-length payload (validity
// bitmap, n+1 u32 offsets, then the data block) for col to dst.
func EncodePlainVarlen(dst []byte, col batch.ColumnData, engine endian.EndianEngine) []byte {
	dst = append(dst, col.Validity...)

	for _, off := range col.Offsets {
		dst = engine.AppendUint32(dst, off)
	}

	dst = append(dst, col.Data...)

	return dst
}

// DecodePlainVarlen parses a plain variable-length payload for n rows from
// the front of src, returning the decoded column data and the number of
// bytes consumed. checkUtf8 should be true for Utf8/JsonbText columns.
// dst's Validity, Offsets and Data slices are reused when they already have
// enough capacity; pass a zero batch.ColumnData for a fresh allocation.
func DecodePlainVarlen(dst batch.ColumnData, src []byte, n uint32, engine endian.EndianEngine, checkUtf8 bool) (batch.ColumnData, int, error) {
	validityLen := batch.ValidityLen(n)
	if len(src) < validityLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "plain varlen payload truncated before validity bitmap")
	}

	if !batch.TrailingBitsZero(src[:validityLen], n) {
		return batch.ColumnData{}, 0, errs.New(errs.Malformed, "validity bitmap has non-zero trailing bits")
	}

	validity := reuseBytes(dst.Validity, validityLen)
	copy(validity, src[:validityLen])
	off := validityLen

	offsetCount := int(n) + 1
	offsetsLen := offsetCount * 4
	if len(src)-off < offsetsLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "plain varlen payload truncated before offsets")
	}

	offsets := reuseUint32(dst.Offsets, offsetCount)
	for i := 0; i < offsetCount; i++ {
		offsets[i] = engine.Uint32(src[off : off+4])
		off += 4
	}

	if offsets[0] != 0 {
		return batch.ColumnData{}, 0, errs.New(errs.Malformed, "offsets[0] = %d, want 0", offsets[0])
	}

	for i := 1; i < offsetCount; i++ {
		if offsets[i] < offsets[i-1] {
			return batch.ColumnData{}, 0, errs.New(errs.Malformed, "offsets are not monotonically non-decreasing at index %d", i)
		}
	}

	dataLen := int(offsets[offsetCount-1])
	if len(src)-off < dataLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "plain varlen payload truncated before data block")
	}

	data := reuseBytes(dst.Data, dataLen)
	copy(data, src[off:off+dataLen])
	off += dataLen

	if checkUtf8 && !utf8.Valid(data) {
		return batch.ColumnData{}, 0, errs.New(errs.BadUtf8, "varlen data is not valid utf-8")
	}

	return batch.ColumnData{Validity: validity, Offsets: offsets, Data: data}, off, nil
}
