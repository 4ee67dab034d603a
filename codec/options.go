package codec

import (
	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/internal/options"
)

// EncodeOption configures an EncodeWorkspace for a single EncodeOpt or
// EncodeFastPathOpt call, layered on top of the workspace's own setters so
// callers can express flags inline at the call site.
type EncodeOption = options.Option[*EncodeWorkspace]

// WithDictUtf8 enables or disables DictUtf8 selection for this call.
func WithDictUtf8(enabled bool) EncodeOption {
	return options.NoError(func(w *EncodeWorkspace) { w.SetEnableDictUtf8(enabled) })
}

// WithDeltaVarintI64 enables or disables DeltaVarintI64 selection for this call.
func WithDeltaVarintI64(enabled bool) EncodeOption {
	return options.NoError(func(w *EncodeWorkspace) { w.SetEnableDeltaVarintI64(enabled) })
}

// EncodeOpt is Encode with inline per-call options applied to ws before
// encoding. The options persist on ws after the call, matching the
// workspace setters they wrap.
func EncodeOpt(ws *EncodeWorkspace, b *batch.ColumnarBatch, dst []byte, opts ...EncodeOption) ([]byte, int, error) {
	if err := options.Apply(ws, opts...); err != nil {
		return dst, 0, err
	}

	return Encode(ws, b, dst)
}

// EncodeFastPathOpt is EncodeFastPath with inline per-call options.
func EncodeFastPathOpt(ws *EncodeWorkspace, v *batch.BatchView, dst []byte, opts ...EncodeOption) ([]byte, int, error) {
	if err := options.Apply(ws, opts...); err != nil {
		return dst, 0, err
	}

	return EncodeFastPath(ws, v, dst)
}
