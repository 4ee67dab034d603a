package section

import (
	"testing"

	"github.com/mathldbt/mathldbt/endian"
	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/schema"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	d := Descriptor{
		Name:        "price",
		LogicalType: schema.F64,
		Nullable:    true,
		EncodingID:  EncodingPlain,
		PayloadLen:  42,
	}

	buf := d.Bytes(nil, engine)
	got, n, err := ParseDescriptor(buf, engine)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, d, got)
}

func TestDescriptor_EmptyName(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	d := Descriptor{Name: "", LogicalType: schema.I32, EncodingID: EncodingPlain}
	buf := d.Bytes(nil, engine)

	_, _, err := ParseDescriptor(buf, engine)
	require.ErrorIs(t, err, errs.ErrBadSchema)
}

func TestDescriptor_InvalidUtf8Name(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := engine.AppendUint32(nil, 2)
	buf = append(buf, 0xff, 0xfe)
	buf = append(buf, byte(schema.I32), 0, EncodingPlain)
	buf = engine.AppendUint32(buf, 0)

	_, _, err := ParseDescriptor(buf, engine)
	require.ErrorIs(t, err, errs.ErrBadSchema)
}

func TestDescriptor_UnknownLogicalType(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	d := Descriptor{Name: "x", LogicalType: schema.ColumnType(200), EncodingID: EncodingPlain}
	buf := d.Bytes(nil, engine)

	_, _, err := ParseDescriptor(buf, engine)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestDescriptor_UnknownEncodingID(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	d := Descriptor{Name: "x", LogicalType: schema.I32, EncodingID: 99}
	buf := d.Bytes(nil, engine)

	_, _, err := ParseDescriptor(buf, engine)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestDescriptor_TruncatedName(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	d := Descriptor{Name: "longname", LogicalType: schema.I32, EncodingID: EncodingPlain}
	buf := d.Bytes(nil, engine)

	_, _, err := ParseDescriptor(buf[:6], engine)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDescriptor_NullableByteOutOfRange(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := engine.AppendUint32(nil, 1)
	buf = append(buf, 'x')
	buf = append(buf, byte(schema.I32), 7, EncodingPlain)
	buf = engine.AppendUint32(buf, 0)

	_, _, err := ParseDescriptor(buf, engine)
	require.ErrorIs(t, err, errs.ErrMalformed)
}
