package compress

import "github.com/mathldbt/mathldbt/errs"

// noopCodec passes data through unchanged. Useful as a baseline and for
// payloads the caller already knows are incompressible.
type noopCodec struct{}

var _ Codec = noopCodec{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (noopCodec) Decompress(data []byte, maxUncompressedLen int) ([]byte, error) {
	if len(data) > maxUncompressedLen {
		return nil, errs.New(errs.DecompressTooLarge, "decompressed size exceeds bound of %d bytes", maxUncompressedLen)
	}

	return data, nil
}
