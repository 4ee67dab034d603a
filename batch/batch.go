// Package batch defines the owned ColumnarBatch record-batch model and its
// borrowed BatchView counterpart, plus the invariant checks both sides of
// the codec rely on (spec data model: schema + row count + one ColumnData
// per field).
package batch

import (
	"unicode/utf8"

	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/schema"
)

// ColumnData is the storage for one column of an owned ColumnarBatch.
//
// Validity is always present, ValidityLen(RowCount) bytes. Fixed-width
// columns use Data only (RowCount*Width(type) bytes); variable-length
// columns use Offsets (RowCount+1 entries) and Data as the referenced byte
// block, with Offsets[RowCount] == len(Data).
type ColumnData struct {
	Validity []byte
	Data     []byte
	Offsets  []uint32
}

// ColumnarBatch is a schema paired with one ColumnData per field, in
// schema order.
type ColumnarBatch struct {
	Schema   *schema.ColumnarSchema
	RowCount uint32
	Columns  []ColumnData
}

// NewOwned returns a ColumnarBatch with Columns pre-sized for sch, all
// columns zero-valued (no rows). Callers then populate each ColumnData.
func NewOwned(sch *schema.ColumnarSchema, rowCount uint32) *ColumnarBatch {
	return &ColumnarBatch{
		Schema:   sch,
		RowCount: rowCount,
		Columns:  make([]ColumnData, sch.Len()),
	}
}

// Validate checks every invariant of spec §3 against b. It is called at
// encode entry and is also exercised by tests that build batches by hand.
func Validate(b *ColumnarBatch) error {
	if b.Schema == nil {
		return errs.New(errs.InvalidBatch, "batch has nil schema")
	}

	if len(b.Columns) != b.Schema.Len() {
		return errs.New(errs.InvalidBatch, "column count %d does not match schema field count %d", len(b.Columns), b.Schema.Len())
	}

	for i, col := range b.Columns {
		field := b.Schema.Field(i)
		if err := validateColumn(field, col, b.RowCount); err != nil {
			return err.WithColumn(i)
		}
	}

	return nil
}

func validateColumn(field schema.Field, col ColumnData, n uint32) *errs.Error {
	wantValidityLen := ValidityLen(n)
	if len(col.Validity) != wantValidityLen {
		return errs.New(errs.InvalidBatch, "column %q validity bitmap has %d bytes, want %d", field.Name, len(col.Validity), wantValidityLen)
	}

	if !TrailingBitsZero(col.Validity, n) {
		return errs.New(errs.InvalidBatch, "column %q validity bitmap has non-zero trailing bits", field.Name)
	}

	if field.Type.IsFixedWidth() {
		want := int(n) * field.Type.Width()
		if len(col.Data) != want {
			return errs.New(errs.InvalidBatch, "column %q fixed-width data has %d bytes, want %d", field.Name, len(col.Data), want)
		}

		return nil
	}

	return validateVarlen(field, col, n)
}

func validateVarlen(field schema.Field, col ColumnData, n uint32) *errs.Error {
	if len(col.Offsets) != int(n)+1 {
		return errs.New(errs.InvalidBatch, "column %q has %d offsets, want %d", field.Name, len(col.Offsets), n+1)
	}

	if col.Offsets[0] != 0 {
		return errs.New(errs.InvalidBatch, "column %q offsets[0] = %d, want 0", field.Name, col.Offsets[0])
	}

	for i := 1; i < len(col.Offsets); i++ {
		if col.Offsets[i] < col.Offsets[i-1] {
			return errs.New(errs.InvalidBatch, "column %q offsets are not monotonically non-decreasing at index %d", field.Name, i)
		}
	}

	last := col.Offsets[len(col.Offsets)-1]
	if int(last) != len(col.Data) {
		return errs.New(errs.InvalidBatch, "column %q offsets[n] = %d, want len(data) = %d", field.Name, last, len(col.Data))
	}

	if field.Type.IsUtf8Like() && !utf8.Valid(col.Data) {
		return errs.New(errs.BadUtf8, "column %q data is not valid utf-8", field.Name)
	}

	return nil
}
