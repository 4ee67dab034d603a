package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/mathldbt/mathldbt/errs"
)

// lz4CompressorPool pools lz4.Compressor instances; they carry internal
// state worth keeping warm across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// lz4Codec wraps pierrec/lz4/v4's block API, the fastest-decompressing
// of the four real algorithms.
type lz4Codec struct{}

var _ Codec = lz4Codec{}

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress grows its scratch buffer geometrically starting at 4x the
// compressed size, the block format carries no size header so the
// decompressed length is unknown up front. Growth never passes
// maxUncompressedLen: the next candidate size is clamped to the bound,
// and a short buffer at the bound means the true size exceeds it.
func (lz4Codec) Decompress(data []byte, maxUncompressedLen int) ([]byte, error) {
	if maxUncompressedLen < 0 {
		return nil, errs.New(errs.DecompressTooLarge, "max_uncompressed_len must be non-negative")
	}

	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	if bufSize > maxUncompressedLen {
		bufSize = maxUncompressedLen
	}

	for {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}

		if bufSize >= maxUncompressedLen {
			return nil, errs.New(errs.DecompressTooLarge, "decompressed size exceeds bound of %d bytes", maxUncompressedLen)
		}

		bufSize *= 2
		if bufSize > maxUncompressedLen {
			bufSize = maxUncompressedLen
		}
	}
}
