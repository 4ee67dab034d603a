package compress

import "time"

// CompressionStats reports the outcome of a single CompressEncodeStats
// call: the algorithm used, the size before and after compression, and
// how long compression took. It's informational only; nothing in the
// wire format depends on it.
type CompressionStats struct {
	Algorithm       Algorithm
	OriginalSize    int
	CompressedSize  int
	CompressionTime time.Duration
}

// CompressionRatio returns CompressedSize/OriginalSize. Values below 1.0
// mean the data shrank; values at or above 1.0 mean it didn't.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the reduction in size as a percentage, derived
// from CompressionRatio as (1 - ratio) * 100. It is negative when the
// compressed output is larger than the original, and 100 when
// OriginalSize is 0.
func (s CompressionStats) SpaceSavings() float64 {
	return (1 - s.CompressionRatio()) * 100
}

// CompressEncodeStats behaves like CompressEncode but also returns
// CompressionStats for the call, for callers that want to log or export
// compression effectiveness without re-deriving it from the two byte
// slices themselves.
func CompressEncodeStats(data []byte, dst []byte, algo Algorithm, level int) ([]byte, CompressionStats, error) {
	start := time.Now()

	out, err := CompressEncode(data, dst, algo, level)
	if err != nil {
		return out, CompressionStats{}, err
	}

	stats := CompressionStats{
		Algorithm:       algo,
		OriginalSize:    len(data),
		CompressedSize:  len(out) - len(dst),
		CompressionTime: time.Since(start),
	}

	return out, stats, nil
}
