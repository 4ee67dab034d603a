package batch

import (
	"testing"

	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/schema"
	"github.com/stretchr/testify/require"
)

func mustSchema(t *testing.T, fields ...schema.Field) *schema.ColumnarSchema {
	t.Helper()
	s, err := schema.New(fields)
	require.NoError(t, err)

	return s
}

func TestValidate_EmptyBatch(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "a", Type: schema.I32, Nullable: true})
	b := NewOwned(sch, 0)
	b.Columns[0] = ColumnData{Validity: []byte{}, Data: []byte{}}

	require.NoError(t, Validate(b))
}

func TestValidate_FixedWidthColumn(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "a", Type: schema.I32, Nullable: true})
	b := NewOwned(sch, 3)
	b.Columns[0] = ColumnData{
		Validity: []byte{0b00000101},
		Data:     make([]byte, 12),
	}

	require.NoError(t, Validate(b))
}

func TestValidate_WrongDataLength(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "a", Type: schema.I32})
	b := NewOwned(sch, 3)
	b.Columns[0] = ColumnData{Validity: NewAllValid(3), Data: make([]byte, 11)}

	err := Validate(b)
	require.ErrorIs(t, err, errs.ErrInvalidBatch)
}

func TestValidate_WrongValidityLength(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "a", Type: schema.I32})
	b := NewOwned(sch, 3)
	b.Columns[0] = ColumnData{Validity: []byte{0}, Data: make([]byte, 12)}

	err := Validate(b)
	require.ErrorIs(t, err, errs.ErrInvalidBatch)
}

func TestValidate_NonZeroTrailingBits(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "a", Type: schema.I32})
	b := NewOwned(sch, 3)
	b.Columns[0] = ColumnData{Validity: []byte{0b10000111}, Data: make([]byte, 12)}

	err := Validate(b)
	require.ErrorIs(t, err, errs.ErrInvalidBatch)
}

func TestValidate_Varlen(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "s", Type: schema.Utf8})
	b := NewOwned(sch, 2)
	b.Columns[0] = ColumnData{
		Validity: NewAllValid(2),
		Offsets:  []uint32{0, 2, 5},
		Data:     []byte("hiyou"),
	}

	require.NoError(t, Validate(b))
}

func TestValidate_VarlenNonMonotonicOffsets(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "s", Type: schema.Utf8})
	b := NewOwned(sch, 2)
	b.Columns[0] = ColumnData{
		Validity: NewAllValid(2),
		Offsets:  []uint32{0, 3, 2},
		Data:     []byte("abc"),
	}

	err := Validate(b)
	require.ErrorIs(t, err, errs.ErrInvalidBatch)
}

func TestValidate_VarlenFirstOffsetNonzero(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "s", Type: schema.Utf8})
	b := NewOwned(sch, 1)
	b.Columns[0] = ColumnData{
		Validity: NewAllValid(1),
		Offsets:  []uint32{1, 2},
		Data:     []byte("ab"),
	}

	err := Validate(b)
	require.ErrorIs(t, err, errs.ErrInvalidBatch)
}

func TestValidate_InvalidUtf8(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "s", Type: schema.Utf8})
	b := NewOwned(sch, 1)
	b.Columns[0] = ColumnData{
		Validity: NewAllValid(1),
		Offsets:  []uint32{0, 2},
		Data:     []byte{0xff, 0xfe},
	}

	err := Validate(b)
	require.ErrorIs(t, err, errs.ErrBadUtf8)
}

func TestValidate_ColumnCountMismatch(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "a", Type: schema.I32})
	b := &ColumnarBatch{Schema: sch, RowCount: 0, Columns: nil}

	err := Validate(b)
	require.ErrorIs(t, err, errs.ErrInvalidBatch)
}

func TestView_AliasesAndValidates(t *testing.T) {
	sch := mustSchema(t, schema.Field{Name: "a", Type: schema.I32})
	b := NewOwned(sch, 1)
	b.Columns[0] = ColumnData{Validity: NewAllValid(1), Data: make([]byte, 4)}

	v := b.View()
	require.NoError(t, ValidateView(&v))

	// Mutating through the view's slice mutates the owner's backing array,
	// confirming View aliases rather than copies.
	v.Columns[0].Data[0] = 0xAB
	require.Equal(t, byte(0xAB), b.Columns[0].Data[0])
}
