// Package codec implements the MATHLDBT v1 envelope encoder and decoder:
// header and per-column descriptor framing (delegated to section), column
// payload dispatch (delegated to encoding), and the workspace types that
// carry reusable scratch buffers and the two opt-in encoding flags across
// repeated calls.
package codec

import (
	"github.com/mathldbt/mathldbt/batch"
	"github.com/mathldbt/mathldbt/encoding"
	"github.com/mathldbt/mathldbt/internal/pool"
)

// EncodeWorkspace carries scratch state reused across repeated Encode
// calls: a dictionary-building scratch and a pooled byte buffer used to
// stage one column's payload before its length is known. It is not safe
// for concurrent use by multiple calls; each goroutine encoding
// concurrently must hold its own workspace.
type EncodeWorkspace struct {
	enableDictUtf8       bool
	enableDeltaVarintI64 bool

	dict    *encoding.DictScratch
	scratch *pool.ByteBuffer
}

// NewEncodeWorkspace returns a workspace with both opt-in encodings
// disabled. A freshly constructed workspace and a reused one produce
// identical output bytes for the same input; only the two flags below
// affect encoded bytes.
func NewEncodeWorkspace() *EncodeWorkspace {
	return &EncodeWorkspace{
		dict:    encoding.NewDictScratch(),
		scratch: pool.GetScratchBuffer(),
	}
}

// Release returns w's pooled scratch buffer. Callers that construct a
// workspace as a long-lived hot-path object generally don't call this;
// short-lived per-request workspaces should.
func (w *EncodeWorkspace) Release() {
	pool.PutScratchBuffer(w.scratch)
	w.scratch = nil
	w.dict.Release()
}

// SetEnableDictUtf8 enables or disables DictUtf8 selection for eligible
// Utf8/JsonbText columns.
func (w *EncodeWorkspace) SetEnableDictUtf8(enabled bool) {
	w.enableDictUtf8 = enabled
}

// SetEnableDeltaVarintI64 enables or disables DeltaVarintI64 selection for
// eligible all-valid I64/TimestampTzMicros columns.
func (w *EncodeWorkspace) SetEnableDeltaVarintI64(enabled bool) {
	w.enableDeltaVarintI64 = enabled
}

// DecodeWorkspace carries reusable per-column scratch for decode_into: one
// batch.ColumnData per column slot, whose Validity/Offsets/Data backing
// arrays are grown on demand and then reused by every later call that
// decodes a same-shaped column into the same slot. Like EncodeWorkspace, it
// is not safe for concurrent use; calling DecodeInto with the same
// workspace against two different destinations in turn overwrites the
// first destination's column buffers in place, since both alias the
// workspace's scratch.
type DecodeWorkspace struct {
	columns []batch.ColumnData
}

// NewDecodeWorkspace returns a DecodeWorkspace with no scratch allocated
// yet; it grows its per-column buffers lazily as DecodeInto is called.
func NewDecodeWorkspace() *DecodeWorkspace {
	return &DecodeWorkspace{}
}

// column returns w's current scratch for column slot i, or a zero
// batch.ColumnData if the workspace hasn't grown to cover it yet.
func (w *DecodeWorkspace) column(i int) batch.ColumnData {
	if i < len(w.columns) {
		return w.columns[i]
	}

	return batch.ColumnData{}
}

// setColumn records col as the scratch for column slot i, growing w's
// column slice as needed.
func (w *DecodeWorkspace) setColumn(i int, col batch.ColumnData) {
	for len(w.columns) <= i {
		w.columns = append(w.columns, batch.ColumnData{})
	}

	w.columns[i] = col
}
