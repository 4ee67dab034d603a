package compress

// leveledCompressor is implemented by codecs whose ratio/speed tradeoff
// is tunable. Codecs that don't implement it (None, S2, LZ4) ignore the
// level argument to CompressEncode; their formats expose no comparable
// knob at the block-API granularity this package uses.
type leveledCompressor interface {
	CompressLevel(data []byte, level int) ([]byte, error)
}

// CompressEncode compresses the already-encoded envelope bytes in data
// with algo, appending the result to dst. level is a small positive
// integer (roughly: 1 fastest, higher numbers favor ratio); codecs that
// don't support tunable levels ignore it.
func CompressEncode(data []byte, dst []byte, algo Algorithm, level int) ([]byte, error) {
	codec, err := CreateCodec(algo)
	if err != nil {
		return dst, err
	}

	var compressed []byte
	if lc, ok := codec.(leveledCompressor); ok {
		compressed, err = lc.CompressLevel(data, level)
	} else {
		compressed, err = codec.Compress(data)
	}

	if err != nil {
		return dst, err
	}

	return append(dst, compressed...), nil
}

// DecompressDecode decompresses src, which was produced by CompressEncode
// with the same algo, refusing to allocate or return more than
// maxUncompressedLen bytes.
func DecompressDecode(src []byte, algo Algorithm, maxUncompressedLen int) ([]byte, error) {
	codec, err := CreateCodec(algo)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(src, maxUncompressedLen)
}
