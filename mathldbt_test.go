package mathldbt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndToEnd_EncodeCompressDecompressDecode(t *testing.T) {
	sch, err := NewSchema([]Field{
		{Name: "id", Type: I32},
		{Name: "label", Type: Utf8, Nullable: true},
	})
	require.NoError(t, err)

	n := uint32(4)
	idData := make([]byte, n*4)
	for i := uint32(0); i < n; i++ {
		binary.LittleEndian.PutUint32(idData[i*4:i*4+4], i)
	}

	labels := []string{"red", "", "blue", "green"}
	offsets := make([]uint32, n+1)
	var labelData []byte
	for i, v := range labels {
		offsets[i] = uint32(len(labelData))
		labelData = append(labelData, v...)
	}
	offsets[n] = uint32(len(labelData))

	b := &ColumnarBatch{
		Schema:   sch,
		RowCount: n,
		Columns: []ColumnData{
			{Validity: []byte{0b1111}, Data: idData},
			{Validity: []byte{0b1101}, Offsets: offsets, Data: labelData},
		},
	}

	ws := NewEncodeWorkspace()
	ws.SetEnableDictUtf8(true)
	envelope, _, err := Encode(ws, b, nil)
	require.NoError(t, err)

	compressed, err := CompressEncode(ws, b, nil, CompressZstd, 2)
	require.NoError(t, err)

	decoded, err := DecompressDecode(compressed, CompressZstd, len(envelope)*2+64)
	require.NoError(t, err)
	require.Equal(t, b.RowCount, decoded.RowCount)
	require.Equal(t, b.Columns[0].Data, decoded.Columns[0].Data)
	require.Equal(t, b.Columns[1].Data, decoded.Columns[1].Data)
	require.Equal(t, b.Columns[1].Offsets, decoded.Columns[1].Offsets)
}

func TestEncodeOpt_FastPathEquivalence(t *testing.T) {
	sch, err := NewSchema([]Field{{Name: "tag", Type: Utf8}})
	require.NoError(t, err)

	offsets := []uint32{0, 1, 2, 3}
	b := &ColumnarBatch{
		Schema:   sch,
		RowCount: 3,
		Columns:  []ColumnData{{Validity: []byte{0b111}, Offsets: offsets, Data: []byte("abc")}},
	}

	ws1 := NewEncodeWorkspace()
	owned, _, err := EncodeOpt(ws1, b, nil, WithDictUtf8(true), WithDeltaVarintI64(true))
	require.NoError(t, err)

	view := BatchView{Schema: b.Schema, RowCount: b.RowCount, Columns: []ColumnView{
		{Validity: b.Columns[0].Validity, Offsets: b.Columns[0].Offsets, Data: b.Columns[0].Data},
	}}

	ws2 := NewEncodeWorkspace()
	fast, _, err := EncodeFastPathOpt(ws2, &view, nil, WithDictUtf8(true), WithDeltaVarintI64(true))
	require.NoError(t, err)

	require.Equal(t, owned, fast)
}

func TestDecodeInto_ReusesDestination(t *testing.T) {
	sch, err := NewSchema([]Field{{Name: "a", Type: I64}})
	require.NoError(t, err)

	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, uint64(42))

	b := &ColumnarBatch{Schema: sch, RowCount: 1, Columns: []ColumnData{{Validity: []byte{0b1}, Data: data}}}

	ws := NewEncodeWorkspace()
	envelope, _, err := Encode(ws, b, nil)
	require.NoError(t, err)

	dst := &ColumnarBatch{Columns: make([]ColumnData, 1, 2)}
	dws := NewDecodeWorkspace()
	require.NoError(t, DecodeInto(dws, envelope, dst))
	require.Equal(t, b.Columns[0].Data, dst.Columns[0].Data)
}
