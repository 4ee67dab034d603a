package codec

import (
	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/encoding"
	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/schema"
	"github.com/mathldbt/mathldbt/section"
)

// Decode parses src into a freshly allocated ColumnarBatch. Every column
// buffer is a fresh make; that allocation is Decode's whole contract. Use
// DecodeInto with a reused DecodeWorkspace for the allocation-free path.
func Decode(src []byte) (*batch.ColumnarBatch, error) {
	header, off, err := section.ParseHeader(src, wireEndian)
	if err != nil {
		return nil, err
	}

	if uint64(header.ColumnCount) > uint64(len(src)-off) {
		return nil, errs.New(errs.Truncated, "column_count %d exceeds the %d bytes after the header", header.ColumnCount, len(src)-off)
	}

	fields := make([]schema.Field, 0, header.ColumnCount)
	columns := make([]batch.ColumnData, 0, header.ColumnCount)

	for i := uint32(0); i < header.ColumnCount; i++ {
		desc, consumed, err := section.ParseDescriptor(src[off:], wireEndian)
		if err != nil {
			return nil, wrapColumn(err, int(i))
		}

		off += consumed

		if uint64(off)+uint64(desc.PayloadLen) > uint64(len(src)) {
			return nil, errs.New(errs.Truncated, "column %d payload truncated: declared %d bytes, have %d", i, desc.PayloadLen, len(src)-off).WithColumn(int(i))
		}

		payload := src[off : off+int(desc.PayloadLen)]

		col, err := decodeColumnPayload(batch.ColumnData{}, desc, payload, header.RowCount)
		if err != nil {
			return nil, wrapColumn(err, int(i))
		}

		off += int(desc.PayloadLen)

		fields = append(fields, schema.Field{Name: desc.Name, Type: desc.LogicalType, Nullable: desc.Nullable})
		columns = append(columns, col)
	}

	if off != len(src) {
		return nil, errs.New(errs.Malformed, "trailing bytes after last column: %d unconsumed", len(src)-off)
	}

	sch, err := schema.New(fields)
	if err != nil {
		return nil, err
	}

	return &batch.ColumnarBatch{Schema: sch, RowCount: header.RowCount, Columns: columns}, nil
}

// DecodeInto parses src and populates dst in place. For each column, the
// previous contents of ws's matching scratch slot are passed down to the
// column's decode function as a reuse candidate: when that slot's
// Validity/Offsets/Data slices already have enough capacity for the new
// payload, decoding overwrites them in place instead of allocating fresh
// ones, the same way EncodeWorkspace's pool.GetUint32Slice avoids
// allocation on the encode side. dst.Columns then aliases ws's scratch
// directly, so repeated calls with the same ws and dst settle into zero
// steady-state allocation once every column's buffers reach their
// largest-seen size.
func DecodeInto(ws *DecodeWorkspace, src []byte, dst *batch.ColumnarBatch) error {
	header, off, err := section.ParseHeader(src, wireEndian)
	if err != nil {
		return err
	}

	if uint64(header.ColumnCount) > uint64(len(src)-off) {
		return errs.New(errs.Truncated, "column_count %d exceeds the %d bytes after the header", header.ColumnCount, len(src)-off)
	}

	fields := make([]schema.Field, 0, header.ColumnCount)

	for i := uint32(0); i < header.ColumnCount; i++ {
		desc, consumed, err := section.ParseDescriptor(src[off:], wireEndian)
		if err != nil {
			return wrapColumn(err, int(i))
		}

		off += consumed

		if uint64(off)+uint64(desc.PayloadLen) > uint64(len(src)) {
			return errs.New(errs.Truncated, "column %d payload truncated: declared %d bytes, have %d", i, desc.PayloadLen, len(src)-off).WithColumn(int(i))
		}

		payload := src[off : off+int(desc.PayloadLen)]

		col, err := decodeColumnPayload(ws.column(int(i)), desc, payload, header.RowCount)
		if err != nil {
			return wrapColumn(err, int(i))
		}

		ws.setColumn(int(i), col)

		off += int(desc.PayloadLen)

		fields = append(fields, schema.Field{Name: desc.Name, Type: desc.LogicalType, Nullable: desc.Nullable})
	}

	if off != len(src) {
		return errs.New(errs.Malformed, "trailing bytes after last column: %d unconsumed", len(src)-off)
	}

	sch, err := schema.New(fields)
	if err != nil {
		return err
	}

	dst.Schema = sch
	dst.RowCount = header.RowCount

	columnCount := int(header.ColumnCount)
	if cap(dst.Columns) >= columnCount {
		dst.Columns = dst.Columns[:columnCount]
	} else {
		dst.Columns = make([]batch.ColumnData, columnCount)
	}

	for i := 0; i < columnCount; i++ {
		dst.Columns[i] = ws.column(i)
	}

	return nil
}

func wrapColumn(err error, column int) error {
	if e, ok := err.(*errs.Error); ok {
		return e.WithColumn(column)
	}

	return err
}

// decodeColumnPayload decodes one column's payload. dst is the reuse
// candidate for the column's buffers (a zero batch.ColumnData from Decode,
// or the workspace's previous scratch for that slot from DecodeInto).
func decodeColumnPayload(dst batch.ColumnData, desc section.Descriptor, payload []byte, n uint32) (batch.ColumnData, error) {
	switch desc.EncodingID {
	case section.EncodingPlain:
		return decodePlain(dst, desc, payload, n)
	case section.EncodingDictUtf8:
		if !desc.LogicalType.IsUtf8Like() {
			return batch.ColumnData{}, errs.New(errs.Malformed, "dict_utf8 encoding used on non-utf8-like type %s", desc.LogicalType)
		}

		col, consumed, err := encoding.DecodeDictUtf8(dst, payload, n, wireEndian, desc.LogicalType.IsUtf8Like())
		if err != nil {
			return batch.ColumnData{}, err
		}

		if consumed != len(payload) {
			return batch.ColumnData{}, errs.New(errs.Malformed, "dict_utf8 payload has %d trailing bytes", len(payload)-consumed)
		}

		return col, nil
	case section.EncodingDeltaVarintI64:
		if desc.LogicalType != schema.I64 && desc.LogicalType != schema.TimestampTzMicros {
			return batch.ColumnData{}, errs.New(errs.Malformed, "delta_varint_i64 encoding used on non-i64-like type %s", desc.LogicalType)
		}

		col, consumed, err := encoding.DecodeDeltaVarintI64(dst, payload, n)
		if err != nil {
			return batch.ColumnData{}, err
		}

		if consumed != len(payload) {
			return batch.ColumnData{}, errs.New(errs.Malformed, "delta_varint_i64 payload has %d trailing bytes", len(payload)-consumed)
		}

		return col, nil
	default:
		return batch.ColumnData{}, errs.New(errs.UnsupportedEncoding, "unknown encoding_id %d", desc.EncodingID)
	}
}

func decodePlain(dst batch.ColumnData, desc section.Descriptor, payload []byte, n uint32) (batch.ColumnData, error) {
	if desc.LogicalType.IsFixedWidth() {
		col, consumed, err := encoding.DecodePlainFixed(dst, payload, n, desc.LogicalType.Width())
		if err != nil {
			return batch.ColumnData{}, err
		}

		if consumed != len(payload) {
			return batch.ColumnData{}, errs.New(errs.Malformed, "plain fixed payload has %d trailing bytes", len(payload)-consumed)
		}

		return col, nil
	}

	col, consumed, err := encoding.DecodePlainVarlen(dst, payload, n, wireEndian, desc.LogicalType.IsUtf8Like())
	if err != nil {
		return batch.ColumnData{}, err
	}

	if consumed != len(payload) {
		return batch.ColumnData{}, errs.New(errs.Malformed, "plain varlen payload has %d trailing bytes", len(payload)-consumed)
	}

	return col, nil
}
