package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders; the library documents them as
// designed for reuse once warmed up.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to build pooled zstd decoder: %v", err))
		}

		return dec
	},
}

// zstdEncoderPool pools encoders at the default level. CompressLevel
// bypasses the pool for non-default levels since zstd.Encoder's level is
// fixed at construction.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to build pooled zstd encoder: %v", err))
		}

		return enc
	},
}

type zstdCodec struct{}

var _ Codec = zstdCodec{}

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// CompressLevel maps an integer level onto zstd's named speed tiers.
// Anything outside 1-4 falls back to SpeedDefault.
func (zstdCodec) CompressLevel(data []byte, level int) ([]byte, error) {
	zlevel := zstd.SpeedDefault

	switch level {
	case 1:
		zlevel = zstd.SpeedFastest
	case 2:
		zlevel = zstd.SpeedDefault
	case 3:
		zlevel = zstd.SpeedBetterCompression
	case 4:
		zlevel = zstd.SpeedBestCompression
	}

	if zlevel == zstd.SpeedDefault {
		return zstdCodec{}.Compress(data)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zlevel))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte, maxUncompressedLen int) ([]byte, error) {
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	if err := dec.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return readBounded(dec, maxUncompressedLen)
}
