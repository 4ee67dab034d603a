// Package section implements the fixed-layout pieces of the MATHLDBT
// envelope: the file header and the per-column descriptor. Both follow the
// same Parse/Bytes pairing: Bytes appends the wire representation to a
// caller-owned buffer, Parse validates and reads one back from the front
// of a byte slice.
package section

import (
	"github.com/mathldbt/mathldbt/endian"
	"github.com/mathldbt/mathldbt/errs"
)

// Magic is the 8-byte prefix of every MATHLDBT v1 envelope.
const Magic = "MATHLDBT"

// Version is the only envelope version this package writes or accepts.
const Version = uint16(1)

// HeaderLen is the fixed byte length of Header.Bytes: 8 (magic) + 2
// (version) + 2 (reserved) + 4 (row_count) + 4 (column_count).
const HeaderLen = 8 + 2 + 2 + 4 + 4

// Header is the fixed prefix of an envelope: magic, version, reserved,
// row_count, column_count.
type Header struct {
	RowCount    uint32
	ColumnCount uint32
}

// Bytes appends the wire encoding of h to dst using engine and returns the
// extended slice.
func (h Header) Bytes(dst []byte, engine endian.EndianEngine) []byte {
	dst = append(dst, Magic...)
	dst = engine.AppendUint16(dst, Version)
	dst = engine.AppendUint16(dst, 0) // reserved
	dst = engine.AppendUint32(dst, h.RowCount)
	dst = engine.AppendUint32(dst, h.ColumnCount)

	return dst
}

// ParseHeader validates and reads a Header from the front of src. It
// returns the header and the number of bytes consumed (always HeaderLen on
// success).
func ParseHeader(src []byte, engine endian.EndianEngine) (Header, int, error) {
	if len(src) < HeaderLen {
		return Header{}, 0, errs.New(errs.Truncated, "envelope shorter than header (%d bytes, need %d)", len(src), HeaderLen)
	}

	if string(src[:8]) != Magic {
		return Header{}, 0, errs.New(errs.BadMagic, "magic bytes %x do not match %q", src[:8], Magic)
	}

	version := engine.Uint16(src[8:10])
	if version != Version {
		return Header{}, 0, errs.New(errs.UnsupportedVersion, "version %d is not supported", version)
	}

	reserved := engine.Uint16(src[10:12])
	if reserved != 0 {
		return Header{}, 0, errs.New(errs.Malformed, "reserved field is %d, want 0", reserved)
	}

	h := Header{
		RowCount:    engine.Uint32(src[12:16]),
		ColumnCount: engine.Uint32(src[16:20]),
	}

	return h, HeaderLen, nil
}
