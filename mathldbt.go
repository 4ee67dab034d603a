// Package mathldbt provides a versioned, lossless, deterministic binary
// envelope for transporting in-memory columnar record batches.
//
// A producer holds a ColumnarBatch (a schema plus one buffer per column
// plus a validity bitmap per column) and emits a self-contained byte
// sequence with Encode; a consumer validates and reconstructs a
// logically equal batch with Decode. The envelope is not a storage
// format, does not self-describe its compression, and is not
// streamable: each envelope represents one complete batch.
//
// # Package structure
//
// This package provides convenient top-level wrappers around the
// lower-level packages (schema, batch, codec, compress). For advanced
// usage — reusing workspaces across many calls, working with borrowed
// views, driving the compression wrapper directly — use those packages.
package mathldbt

import (
	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/codec"
	"github.com/mathldbt/mathldbt/compress"
	"github.com/mathldbt/mathldbt/schema"
)

// Re-exported types so callers need only import this package for the
// common path.
type (
	// ColumnType is a column's logical type.
	ColumnType = schema.ColumnType
	// Field describes one column: name, logical type, nullability.
	Field = schema.Field
	// ColumnarSchema is a validated, ordered set of Fields.
	ColumnarSchema = schema.ColumnarSchema
	// ColumnData holds one column's validity bitmap plus its fixed or
	// variable-length storage.
	ColumnData = batch.ColumnData
	// ColumnarBatch is a schema plus one ColumnData per column.
	ColumnarBatch = batch.ColumnarBatch
	// ColumnView aliases one column's storage without copying.
	ColumnView = batch.ColumnView
	// BatchView aliases a ColumnarBatch's storage without copying.
	BatchView = batch.BatchView
	// EncodeWorkspace carries reusable scratch state across Encode calls.
	EncodeWorkspace = codec.EncodeWorkspace
	// DecodeWorkspace carries reusable scratch state across DecodeInto calls.
	DecodeWorkspace = codec.DecodeWorkspace
	// EncodeOption configures an EncodeWorkspace for a single call.
	EncodeOption = codec.EncodeOption
	// Algorithm identifies a compression codec for CompressEncode/DecompressDecode.
	Algorithm = compress.Algorithm
)

const (
	Bool              = schema.Bool
	I32               = schema.I32
	I64               = schema.I64
	F32               = schema.F32
	F64               = schema.F64
	TimestampTzMicros = schema.TimestampTzMicros
	Utf8              = schema.Utf8
	JsonbText         = schema.JsonbText
)

const (
	CompressNone = compress.None
	CompressGzip = compress.Gzip
	CompressZstd = compress.Zstd
	CompressS2   = compress.S2
	CompressLZ4  = compress.LZ4
)

// NewSchema validates fields and returns a ColumnarSchema.
func NewSchema(fields []Field) (*ColumnarSchema, error) {
	return schema.New(fields)
}

// NewEncodeWorkspace returns a workspace with both opt-in encodings disabled.
func NewEncodeWorkspace() *EncodeWorkspace {
	return codec.NewEncodeWorkspace()
}

// NewDecodeWorkspace returns a workspace for DecodeInto.
func NewDecodeWorkspace() *DecodeWorkspace {
	return codec.NewDecodeWorkspace()
}

// WithDictUtf8 enables or disables DictUtf8 selection for a single EncodeOpt call.
func WithDictUtf8(enabled bool) EncodeOption {
	return codec.WithDictUtf8(enabled)
}

// WithDeltaVarintI64 enables or disables DeltaVarintI64 selection for a single EncodeOpt call.
func WithDeltaVarintI64(enabled bool) EncodeOption {
	return codec.WithDeltaVarintI64(enabled)
}

// Encode validates b and appends its envelope encoding to dst.
func Encode(ws *EncodeWorkspace, b *ColumnarBatch, dst []byte) ([]byte, int, error) {
	return codec.Encode(ws, b, dst)
}

// EncodeOpt is Encode with inline per-call options applied to ws first.
func EncodeOpt(ws *EncodeWorkspace, b *ColumnarBatch, dst []byte, opts ...EncodeOption) ([]byte, int, error) {
	return codec.EncodeOpt(ws, b, dst, opts...)
}

// EncodeFastPath is the byte-identical counterpart of Encode for a
// borrowed BatchView.
func EncodeFastPath(ws *EncodeWorkspace, v *BatchView, dst []byte) ([]byte, int, error) {
	return codec.EncodeFastPath(ws, v, dst)
}

// EncodeFastPathOpt is EncodeFastPath with inline per-call options.
func EncodeFastPathOpt(ws *EncodeWorkspace, v *BatchView, dst []byte, opts ...EncodeOption) ([]byte, int, error) {
	return codec.EncodeFastPathOpt(ws, v, dst, opts...)
}

// Decode parses src into a freshly allocated ColumnarBatch.
func Decode(src []byte) (*ColumnarBatch, error) {
	return codec.Decode(src)
}

// DecodeInto parses src and populates dst in place, reusing dst's
// existing column slice capacity where possible.
func DecodeInto(ws *DecodeWorkspace, src []byte, dst *ColumnarBatch) error {
	return codec.DecodeInto(ws, src, dst)
}

// CompressEncode encodes b and compresses the resulting envelope with
// algo, appending the result to dst. The algorithm identity is not
// embedded in the output; callers must track it out-of-band to call
// DecompressDecode later.
func CompressEncode(ws *EncodeWorkspace, b *ColumnarBatch, dst []byte, algo Algorithm, level int) ([]byte, error) {
	envelope, _, err := codec.Encode(ws, b, nil)
	if err != nil {
		return dst, err
	}

	return compress.CompressEncode(envelope, dst, algo, level)
}

// DecompressDecode decompresses src, produced by CompressEncode with the
// same algo, refusing to allocate or return more than
// maxUncompressedLen bytes, then decodes the resulting envelope.
func DecompressDecode(src []byte, algo Algorithm, maxUncompressedLen int) (*ColumnarBatch, error) {
	envelope, err := compress.DecompressDecode(src, algo, maxUncompressedLen)
	if err != nil {
		return nil, err
	}

	return codec.Decode(envelope)
}
