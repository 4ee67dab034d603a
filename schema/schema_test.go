package schema

import (
	"testing"

	"github.com/mathldbt/mathldbt/errs"
	"github.com/stretchr/testify/require"
)

func TestColumnType_String(t *testing.T) {
	require.Equal(t, "Bool", Bool.String())
	require.Equal(t, "I32", I32.String())
	require.Equal(t, "I64", I64.String())
	require.Equal(t, "F32", F32.String())
	require.Equal(t, "F64", F64.String())
	require.Equal(t, "TimestampTzMicros", TimestampTzMicros.String())
	require.Equal(t, "Utf8", Utf8.String())
	require.Equal(t, "JsonbText", JsonbText.String())
	require.Equal(t, "Unknown", ColumnType(0).String())
	require.Equal(t, "Unknown", ColumnType(99).String())
}

func TestColumnType_Width(t *testing.T) {
	require.Equal(t, 1, Bool.Width())
	require.Equal(t, 4, I32.Width())
	require.Equal(t, 4, F32.Width())
	require.Equal(t, 8, I64.Width())
	require.Equal(t, 8, F64.Width())
	require.Equal(t, 8, TimestampTzMicros.Width())

	require.Panics(t, func() { Utf8.Width() })
	require.Panics(t, func() { JsonbText.Width() })
}

func TestColumnType_IsFixedWidth_IsVarlen(t *testing.T) {
	for _, ct := range []ColumnType{Bool, I32, I64, F32, F64, TimestampTzMicros} {
		require.True(t, ct.IsFixedWidth(), ct)
		require.False(t, ct.IsVarlen(), ct)
	}

	for _, ct := range []ColumnType{Utf8, JsonbText} {
		require.False(t, ct.IsFixedWidth(), ct)
		require.True(t, ct.IsVarlen(), ct)
	}

	require.False(t, ColumnType(0).IsVarlen())
}

func TestColumnType_IsUtf8Like(t *testing.T) {
	require.True(t, Utf8.IsUtf8Like())
	require.True(t, JsonbText.IsUtf8Like())
	require.False(t, I64.IsUtf8Like())
}

func TestNew_ValidSchema(t *testing.T) {
	s, err := New([]Field{
		{Name: "id", Type: I64},
		{Name: "label", Type: Utf8, Nullable: true},
	})
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	require.Equal(t, "id", s.Field(0).Name)
	require.Equal(t, 1, s.IndexOf("label"))
	require.Equal(t, -1, s.IndexOf("missing"))
}

func TestNew_EmptyName(t *testing.T) {
	_, err := New([]Field{{Name: "", Type: I64}})
	require.ErrorIs(t, err, errs.ErrBadSchema)
}

func TestNew_DuplicateName(t *testing.T) {
	_, err := New([]Field{
		{Name: "id", Type: I64},
		{Name: "id", Type: F64},
	})
	require.ErrorIs(t, err, errs.ErrBadSchema)
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New([]Field{{Name: "x", Type: ColumnType(255)}})
	require.ErrorIs(t, err, errs.ErrBadSchema)
}

func TestNew_EmptyFieldsIsValid(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
}

func TestFields_ReturnsCopy(t *testing.T) {
	s, err := New([]Field{{Name: "a", Type: Bool}})
	require.NoError(t, err)

	fs := s.Fields()
	fs[0].Name = "mutated"

	require.Equal(t, "a", s.Field(0).Name)
}
