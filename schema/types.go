// Package schema defines the closed set of logical column types and the
// ColumnarSchema that names and orders them. It has no encoding logic of
// its own; batch.ColumnarBatch and the codec packages consume it.
package schema

// ColumnType is the closed set of logical column types MATHLDBT can carry.
// Each value is either fixed-width (Bool, I32, I64, F32, F64,
// TimestampTzMicros) or variable-length (Utf8, JsonbText). The wire tag is
// the byte value itself (section.Descriptor writes it as logical_type).
type ColumnType uint8

const (
	Bool ColumnType = iota + 1
	I32
	I64
	F32
	F64
	// TimestampTzMicros is a signed 64-bit count of microseconds since the
	// Unix epoch, UTC.
	TimestampTzMicros
	// Utf8 is a variable-length column whose payload bytes must be valid UTF-8.
	Utf8
	// JsonbText is UTF-8 treated as opaque JSON document text; the codec
	// never parses it, only validates it as UTF-8 like Utf8.
	JsonbText
)

// String renders the type the way error messages and tests name it.
func (t ColumnType) String() string {
	switch t {
	case Bool:
		return "Bool"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case TimestampTzMicros:
		return "TimestampTzMicros"
	case Utf8:
		return "Utf8"
	case JsonbText:
		return "JsonbText"
	default:
		return "Unknown"
	}
}

// IsFixedWidth reports whether the type has a constant per-row byte width.
func (t ColumnType) IsFixedWidth() bool {
	switch t {
	case Bool, I32, I64, F32, F64, TimestampTzMicros:
		return true
	default:
		return false
	}
}

// IsVarlen reports whether the type is stored as an offset table plus a
// byte block (Utf8, JsonbText).
func (t ColumnType) IsVarlen() bool {
	return !t.IsFixedWidth() && t.IsValid()
}

// IsValid reports whether t is one of the eight defined ColumnType values.
func (t ColumnType) IsValid() bool {
	return t >= Bool && t <= JsonbText
}

// Width returns the fixed per-row byte width of t. It panics if t is not
// fixed-width; callers must check IsFixedWidth first, since calling Width
// on a varlen type is a programmer error, not a decodable condition.
func (t ColumnType) Width() int {
	switch t {
	case Bool:
		return 1
	case I32, F32:
		return 4
	case I64, F64, TimestampTzMicros:
		return 8
	default:
		panic("schema: Width called on non-fixed-width type " + t.String())
	}
}

// IsUtf8Like reports whether t's payload bytes must be valid UTF-8 (Utf8 and
// JsonbText share this constraint; JsonbText is not otherwise parsed).
func (t ColumnType) IsUtf8Like() bool {
	return t == Utf8 || t == JsonbText
}
