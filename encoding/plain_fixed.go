package encoding

import (
	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/errs"
)

// EncodePlainFixed appends the plain fixed-width payload (validity bitmap,
// then n*width bytes) for col to dst. Value bytes for rows whose validity
// bit is 0 are written as zero, regardless of what col.Data holds there.
func EncodePlainFixed(dst []byte, col batch.ColumnData, n uint32, width int) []byte {
	dst = append(dst, col.Validity...)

	start := len(dst)
	dst = append(dst, make([]byte, int(n)*width)...)

	for i := uint32(0); i < n; i++ {
		if batch.IsValid(col.Validity, i) {
			copy(dst[start+int(i)*width:start+int(i+1)*width], col.Data[int(i)*width:int(i+1)*width])
		}
	}

	return dst
}

// DecodePlainFixed parses a plain fixed-width payload for n rows of the
// given width from the front of src, returning the decoded column data and
// the number of bytes consumed. dst's Validity and Data slices are reused
// (their backing arrays are overwritten in place) when they already have
// enough capacity; pass a zero batch.ColumnData for a fresh allocation.
func DecodePlainFixed(dst batch.ColumnData, src []byte, n uint32, width int) (batch.ColumnData, int, error) {
	validityLen := batch.ValidityLen(n)
	if len(src) < validityLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "plain fixed payload truncated before validity bitmap")
	}

	if !batch.TrailingBitsZero(src[:validityLen], n) {
		return batch.ColumnData{}, 0, errs.New(errs.Malformed, "validity bitmap has non-zero trailing bits")
	}

	validity := reuseBytes(dst.Validity, validityLen)
	copy(validity, src[:validityLen])

	dataLen := int(n) * width
	if len(src)-validityLen < dataLen {
		return batch.ColumnData{}, 0, errs.New(errs.Truncated, "plain fixed payload truncated before value bytes")
	}

	data := reuseBytes(dst.Data, dataLen)
	copy(data, src[validityLen:validityLen+dataLen])

	return batch.ColumnData{Validity: validity, Data: data}, validityLen + dataLen, nil
}
