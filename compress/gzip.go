package compress

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

// gzipCodec wraps klauspost/compress/gzip. It is the slowest and most
// portable of the four real algorithms; included mainly because it is
// the one every consumer of this package can already decode without a
// mathldbt-specific dependency.
type gzipCodec struct{}

var _ Codec = gzipCodec{}

func (gzipCodec) Compress(data []byte) ([]byte, error) {
	return gzipCodec{}.CompressLevel(data, gzip.DefaultCompression)
}

// CompressLevel compresses at an explicit gzip level (gzip.NoCompression
// through gzip.BestCompression, or gzip.DefaultCompression).
func (gzipCodec) CompressLevel(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer

	w, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (gzipCodec) Decompress(data []byte, maxUncompressedLen int) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readBounded(r, maxUncompressedLen)
}
