package codec

import (
	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/encoding"
	"github.com/mathldbt/mathldbt/endian"
	"github.com/mathldbt/mathldbt/schema"
	"github.com/mathldbt/mathldbt/section"
)

var wireEndian = endian.GetLittleEndianEngine()

// Encode validates b and appends its envelope encoding to dst, using ws's
// scratch buffers and encoding flags. It returns the extended slice and
// the number of bytes appended. On InvalidBatch, dst is returned
// unmodified.
func Encode(ws *EncodeWorkspace, b *batch.ColumnarBatch, dst []byte) ([]byte, int, error) {
	if err := batch.Validate(b); err != nil {
		return dst, 0, err
	}

	start := len(dst)

	dst = section.Header{RowCount: b.RowCount, ColumnCount: uint32(len(b.Columns))}.Bytes(dst, wireEndian)

	for i, col := range b.Columns {
		field := b.Schema.Field(i)
		dst = encodeColumn(ws, dst, field, col.Validity, col.Data, col.Offsets, b.RowCount)
	}

	return dst, len(dst) - start, nil
}

// EncodeFastPath is the byte-identical counterpart of Encode that reads
// from a borrowed BatchView instead of an owned ColumnarBatch.
func EncodeFastPath(ws *EncodeWorkspace, v *batch.BatchView, dst []byte) ([]byte, int, error) {
	if err := batch.ValidateView(v); err != nil {
		return dst, 0, err
	}

	start := len(dst)

	dst = section.Header{RowCount: v.RowCount, ColumnCount: uint32(len(v.Columns))}.Bytes(dst, wireEndian)

	for i, col := range v.Columns {
		field := v.Schema.Field(i)
		dst = encodeColumn(ws, dst, field, col.Validity, col.Data, col.Offsets, v.RowCount)
	}

	return dst, len(dst) - start, nil
}

// encodeColumn selects an encoding for one column and appends its
// descriptor and payload to dst. Both Encode and EncodeFastPath funnel
// through here so their output is identical by construction, not by
// coincidence.
func encodeColumn(ws *EncodeWorkspace, dst []byte, field schema.Field, validity, data []byte, offsets []uint32, n uint32) []byte {
	ws.scratch.Reset()

	encID := section.EncodingPlain

	switch {
	case field.Type.IsUtf8Like() && ws.enableDictUtf8:
		encID = section.EncodingDictUtf8
		ws.scratch.B = encoding.EncodeDictUtf8(ws.scratch.B, colData(validity, data, offsets), n, wireEndian, ws.dict)
	case isI64Like(field.Type) && ws.enableDeltaVarintI64 && encoding.EligibleForDeltaVarintI64(isI64Like(field.Type), validity, n):
		encID = section.EncodingDeltaVarintI64
		ws.scratch.B = encoding.EncodeDeltaVarintI64(ws.scratch.B, colData(validity, data, offsets), n)
	case field.Type.IsFixedWidth():
		ws.scratch.B = encoding.EncodePlainFixed(ws.scratch.B, colData(validity, data, offsets), n, field.Type.Width())
	default:
		ws.scratch.B = encoding.EncodePlainVarlen(ws.scratch.B, colData(validity, data, offsets), wireEndian)
	}

	desc := section.Descriptor{
		Name:        field.Name,
		LogicalType: field.Type,
		Nullable:    field.Nullable,
		EncodingID:  encID,
		PayloadLen:  uint32(ws.scratch.Len()),
	}

	dst = desc.Bytes(dst, wireEndian)
	dst = append(dst, ws.scratch.Bytes()...)

	return dst
}

func isI64Like(t schema.ColumnType) bool {
	return t == schema.I64 || t == schema.TimestampTzMicros
}

func colData(validity, data []byte, offsets []uint32) batch.ColumnData {
	return batch.ColumnData{Validity: validity, Data: data, Offsets: offsets}
}
