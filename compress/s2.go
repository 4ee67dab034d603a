package compress

import (
	"bytes"

	"github.com/klauspost/compress/s2"
)

// s2Codec wraps klauspost/compress/s2, a Snappy-compatible codec tuned
// for speed over ratio.
type s2Codec struct{}

var _ Codec = s2Codec{}

func (s2Codec) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (s2Codec) Decompress(data []byte, maxUncompressedLen int) ([]byte, error) {
	r := s2.NewReader(bytes.NewReader(data))

	return readBounded(r, maxUncompressedLen)
}
