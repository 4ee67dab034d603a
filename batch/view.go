package batch

import (
	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/schema"
)

// ColumnView mirrors ColumnData but documents, by type, that its slices are
// borrowed from the caller and must never be mutated by the encoder.
type ColumnView struct {
	Validity []byte
	Data     []byte
	Offsets  []uint32
}

// BatchView is the borrow-only counterpart of ColumnarBatch, consumed by
// the fast-path encoder. It aliases its producer's memory and carries the
// same invariants as ColumnarBatch.
type BatchView struct {
	Schema   *schema.ColumnarSchema
	RowCount uint32
	Columns  []ColumnView
}

// View returns a BatchView aliasing b's column slices. No bytes are
// copied; the returned view is only valid as long as b is not mutated.
func (b *ColumnarBatch) View() BatchView {
	cols := make([]ColumnView, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = ColumnView{Validity: c.Validity, Data: c.Data, Offsets: c.Offsets}
	}

	return BatchView{Schema: b.Schema, RowCount: b.RowCount, Columns: cols}
}

// ValidateView checks every invariant of spec §3 against v, identically to
// Validate(*ColumnarBatch).
func ValidateView(v *BatchView) error {
	if v.Schema == nil {
		return errs.New(errs.InvalidBatch, "batch view has nil schema")
	}

	owned := &ColumnarBatch{
		Schema:   v.Schema,
		RowCount: v.RowCount,
		Columns:  make([]ColumnData, len(v.Columns)),
	}

	for i, c := range v.Columns {
		owned.Columns[i] = ColumnData{Validity: c.Validity, Data: c.Data, Offsets: c.Offsets}
	}

	return Validate(owned)
}
