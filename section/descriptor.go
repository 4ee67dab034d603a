package section

import (
	"unicode/utf8"

	"github.com/mathldbt/mathldbt/endian"
	"github.com/mathldbt/mathldbt/errs"
	"github.com/mathldbt/mathldbt/schema"
)

// Encoding ids, stable across versions: new encodings get new ids, existing
// ids never change meaning.
const (
	EncodingPlain          = uint8(1)
	EncodingDictUtf8       = uint8(2)
	EncodingDeltaVarintI64 = uint8(3)
)

// Descriptor is the fixed-shape prefix of one column's envelope entry; the
// payload bytes that follow it are handled by the encoding package, not
// here.
type Descriptor struct {
	Name        string
	LogicalType schema.ColumnType
	Nullable    bool
	EncodingID  uint8
	PayloadLen  uint32
}

// Bytes appends the wire encoding of d (excluding its payload) to dst.
func (d Descriptor) Bytes(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, uint32(len(d.Name)))
	dst = append(dst, d.Name...)
	dst = append(dst, byte(d.LogicalType))
	dst = append(dst, boolByte(d.Nullable))
	dst = append(dst, d.EncodingID)
	dst = engine.AppendUint32(dst, d.PayloadLen)

	return dst
}

func boolByte(b bool) byte {
	if b {
		return 1
	}

	return 0
}

// ParseDescriptor validates and reads a Descriptor (minus its payload)
// from the front of src, returning the descriptor and the number of bytes
// consumed. The caller is responsible for slicing off the following
// PayloadLen bytes and for cross-column checks like name uniqueness.
func ParseDescriptor(src []byte, engine endian.EndianEngine) (Descriptor, int, error) {
	if len(src) < 4 {
		return Descriptor{}, 0, errs.New(errs.Truncated, "descriptor truncated before name_len")
	}

	nameLen := engine.Uint32(src[:4])
	off := 4

	if uint64(off)+uint64(nameLen) > uint64(len(src)) {
		return Descriptor{}, 0, errs.New(errs.Truncated, "descriptor name truncated: need %d bytes, have %d", nameLen, len(src)-off)
	}

	nameBytes := src[off : off+int(nameLen)]
	off += int(nameLen)

	if nameLen == 0 {
		return Descriptor{}, 0, errs.New(errs.BadSchema, "column name is empty")
	}

	if !utf8.Valid(nameBytes) {
		return Descriptor{}, 0, errs.New(errs.BadSchema, "column name is not valid utf-8")
	}

	if len(src)-off < 7 {
		return Descriptor{}, 0, errs.New(errs.Truncated, "descriptor truncated before fixed tail")
	}

	logicalType := schema.ColumnType(src[off])
	off++

	nullableByte := src[off]
	off++

	if nullableByte > 1 {
		return Descriptor{}, 0, errs.New(errs.Malformed, "nullable byte is %d, want 0 or 1", nullableByte)
	}

	encodingID := src[off]
	off++

	payloadLen := engine.Uint32(src[off : off+4])
	off += 4

	if !logicalType.IsValid() {
		return Descriptor{}, 0, errs.New(errs.UnsupportedEncoding, "unknown logical_type %d", uint8(logicalType))
	}

	if encodingID < EncodingPlain || encodingID > EncodingDeltaVarintI64 {
		return Descriptor{}, 0, errs.New(errs.UnsupportedEncoding, "unknown encoding_id %d", encodingID)
	}

	d := Descriptor{
		Name:        string(nameBytes),
		LogicalType: logicalType,
		Nullable:    nullableByte == 1,
		EncodingID:  encodingID,
		PayloadLen:  payloadLen,
	}

	return d, off, nil
}
