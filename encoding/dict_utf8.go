package encoding

import (
	"unicode/utf8"

	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/endian"
	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/internal/pool"
	"github.com/mathldbt/mathldbt/varint"
)

// EligibleForDictUtf8 reports whether col's logical type allows DictUtf8.
// There is no size-based heuristic: the caller decides purely from the
// enable_dict_utf8 workspace flag, this predicate only gates by type.
func EligibleForDictUtf8(utf8Like bool) bool {
	return utf8Like
}

// EncodeDictUtf8 appends the DictUtf8 payload for col to dst, using
// scratch to build the insertion-ordered dictionary. scratch is reset
// internally; callers do not need to reset it themselves.
func EncodeDictUtf8(dst []byte, col batch.ColumnData, n uint32, engine endian.EndianEngine, scratch *DictScratch) []byte {
	scratch.Reset()

	indices, freeIndices := pool.GetUint32Slice(int(n))
	defer freeIndices()

	for i := uint32(0); i < n; i++ {
		if !batch.IsValid(col.Validity, i) {
			indices[i] = 0
			continue
		}

		v := string(col.Data[col.Offsets[i]:col.Offsets[i+1]])
		indices[i] = scratch.Intern(v)
	}

	dst = append(dst, col.Validity...)

	dictLen := scratch.Len()
	dst = engine.AppendUint32(dst, uint32(dictLen))

	var blockLen uint32

	dictOffsets, freeDictOffsets := pool.GetUint32Slice(dictLen + 1)
	defer freeDictOffsets()

	for i := 0; i < dictLen; i++ {
		dictOffsets[i] = blockLen
		blockLen += uint32(len(scratch.Value(i)))
	}

	dictOffsets[dictLen] = blockLen

	for _, off := range dictOffsets {
		dst = engine.AppendUint32(dst, off)
	}

	for i := 0; i < dictLen; i++ {
		dst = append(dst, scratch.Value(i)...)
	}

	for i := uint32(0); i < n; i++ {
		dst = varint.AppendUvarint(dst, uint64(indices[i]))
	}

	return dst
}

// DecodeDictUtf8 parses a DictUtf8 payload for n rows from the front of
// src, reconstructing the plain varlen representation (validity, offsets,
// data) a consumer sees regardless of how the producer encoded it.
// checkUtf8 should be true for Utf8/JsonbText columns. dst's Validity,
// Offsets and Data slices are reused when they already have enough
// capacity; pass a zero batch.ColumnData for a fresh allocation.
func DecodeDictUtf8(dst batch.ColumnData, src []byte, n uint32, engine endian.EndianEngine, checkUtf8 bool) (batch.ColumnData, int, error) {
	validityLen := batch.ValidityLen(n)
	if len(src) < validityLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "dict_utf8 payload truncated before validity bitmap")
	}

	if !batch.TrailingBitsZero(src[:validityLen], n) {
		return batch.ColumnData{}, 0, errs.New(errs.Malformed, "validity bitmap has non-zero trailing bits")
	}

	validity := reuseBytes(dst.Validity, validityLen)
	copy(validity, src[:validityLen])
	off := validityLen

	if len(src)-off < 4 {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "dict_utf8 payload truncated before dict_len")
	}

	dictLen := engine.Uint32(src[off : off+4])
	off += 4

	dictOffsetCount := int(dictLen) + 1
	dictOffsetsLen := dictOffsetCount * 4

	if len(src)-off < dictOffsetsLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "dict_utf8 payload truncated before dictionary offsets")
	}

	dictOffsets, freeDictOffsets := pool.GetUint32Slice(dictOffsetCount)
	defer freeDictOffsets()

	for i := 0; i < dictOffsetCount; i++ {
		dictOffsets[i] = engine.Uint32(src[off : off+4])
		off += 4
	}

	if dictOffsets[0] != 0 {
		return batch.ColumnData{}, 0, errs.New(errs.Malformed, "dictionary offsets[0] = %d, want 0", dictOffsets[0])
	}

	for i := 1; i < dictOffsetCount; i++ {
		if dictOffsets[i] < dictOffsets[i-1] {
			return batch.ColumnData{}, 0, errs.New(errs.Malformed, "dictionary offsets are not monotonically non-decreasing at index %d", i)
		}
	}

	blockLen := int(dictOffsets[dictOffsetCount-1])
	if len(src)-off < blockLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "dict_utf8 payload truncated before byte block")
	}

	block := src[off : off+blockLen]
	off += blockLen

	if checkUtf8 && !utf8.Valid(block) {
		return batch.ColumnData{}, 0, errs.New(errs.BadUtf8, "dict_utf8 byte block is not valid utf-8")
	}

	indices, freeIndices := pool.GetUint32Slice(int(n))
	defer freeIndices()

	for i := uint32(0); i < n; i++ {
		u, read, uerr := varint.ReadUvarint(src[off:])
		if uerr != nil {
			return batch.ColumnData{}, 0, uerr
		}

		off += read

		if u > uint64(^uint32(0)) {
			return batch.ColumnData{}, 0, errs.New(errs.Malformed, "dictionary index %d exceeds uint32 range", u)
		}

		idx := uint32(u)

		if batch.IsValid(validity, i) && idx >= dictLen {
			return batch.ColumnData{}, 0, errs.New(errs.Malformed, "dictionary index %d out of range (dict_len=%d) at row %d", idx, dictLen, i)
		}

		indices[i] = idx
	}

	offsets := reuseUint32(dst.Offsets, int(n)+1)

	// dataBuf can grow past blockLen since rows may repeat the same
	// dictionary entry; append reuses dst.Data's backing array up to its
	// existing capacity and reallocates only beyond that.
	dataBuf := dst.Data[:0]

	for i := uint32(0); i < n; i++ {
		offsets[i] = uint32(len(dataBuf))

		if batch.IsValid(validity, i) {
			idx := indices[i]
			dataBuf = append(dataBuf, block[dictOffsets[idx]:dictOffsets[idx+1]]...)
		}
	}

	offsets[n] = uint32(len(dataBuf))

	return batch.ColumnData{Validity: validity, Offsets: offsets, Data: dataBuf}, off, nil
}
