// Package compress wraps already-finalised envelope bytes with a
// general-purpose compressor. It has no knowledge of the envelope's
// internal structure: compress_encode runs after codec.Encode has
// produced a complete byte slice, and decompress_decode runs before
// codec.Decode sees one. The algorithm identity travels out-of-band
// (a transport header, a config value); no byte of it is written into
// the compressed payload itself, so a corrupted or mismatched algorithm
// choice surfaces as a decompression error rather than silent
// misinterpretation.
package compress

import (
	"fmt"

	"github.com/mathldbt/mathldbt/errs"
)

// Algorithm identifies a compression codec. It is never embedded in the
// compressed bytes; callers track it alongside the bytes themselves.
type Algorithm uint8

const (
	// None passes data through unchanged.
	None Algorithm = iota + 1
	// Gzip uses klauspost/compress's gzip implementation.
	Gzip
	// Zstd uses klauspost/compress/zstd.
	Zstd
	// S2 uses klauspost/compress/s2, a Snappy-compatible fast codec.
	S2
	// LZ4 uses pierrec/lz4/v4's block format.
	LZ4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Compressor compresses a complete byte slice in one call.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete byte slice in one call, refusing
// to allocate beyond maxUncompressedLen.
type Decompressor interface {
	Decompress(data []byte, maxUncompressedLen int) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Algorithm]Codec{
	None: noopCodec{},
	Gzip: gzipCodec{},
	Zstd: zstdCodec{},
	S2:   s2Codec{},
	LZ4:  lz4Codec{},
}

// CreateCodec returns the built-in Codec for algo.
func CreateCodec(algo Algorithm) (Codec, error) {
	codec, ok := builtinCodecs[algo]
	if !ok {
		return nil, errs.New(errs.FeatureDisabled, "compression algorithm %s is not built in", algo)
	}

	return codec, nil
}
