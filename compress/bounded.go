package compress

import (
	"io"

	"github.com/mathldbt/mathldbt/errs"
)

// readBounded drains r into a buffer, refusing to allocate or return more
// than maxUncompressedLen bytes. It reads one byte past the bound to
// distinguish "exactly at the bound" from "would exceed it" without ever
// growing the buffer past maxUncompressedLen+1.
func readBounded(r io.Reader, maxUncompressedLen int) ([]byte, error) {
	if maxUncompressedLen < 0 {
		return nil, errs.New(errs.DecompressTooLarge, "max_uncompressed_len must be non-negative")
	}

	limited := io.LimitReader(r, int64(maxUncompressedLen)+1)

	buf := make([]byte, 0, min(maxUncompressedLen, 1<<20)+1)
	for {
		if len(buf) == cap(buf) && cap(buf) <= maxUncompressedLen {
			buf = append(make([]byte, 0, min(2*cap(buf), maxUncompressedLen)+1), buf...)
		}

		n, err := limited.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]

		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
	}

	if len(buf) > maxUncompressedLen {
		return nil, errs.New(errs.DecompressTooLarge, "decompressed size exceeds bound of %d bytes", maxUncompressedLen)
	}

	return buf, nil
}
