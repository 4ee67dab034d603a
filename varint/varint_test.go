package varint

import (
	"testing"

	"github.com/mathldbt/mathldbt/errs"
	"github.com/stretchr/testify/require"
)

func TestUvarint_RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1, 1 << 63, ^uint64(0)}

	for _, v := range cases {
		buf := AppendUvarint(nil, v)
		got, n, err := ReadUvarint(buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), n)
		require.LessOrEqual(t, len(buf), MaxLen)
	}
}

func TestUvarint_Truncated(t *testing.T) {
	buf := AppendUvarint(nil, 1<<20)
	_, _, err := ReadUvarint(buf[:len(buf)-1])
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestUvarint_EmptyInput(t *testing.T) {
	_, _, err := ReadUvarint(nil)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestUvarint_OverlongEncoding(t *testing.T) {
	// 9 continuation-flagged bytes carrying 63 bits, final byte (no
	// continuation bit) still holding more than the one remaining bit 64
	// bits allows for: overflows.
	buf := make([]byte, MaxLen)
	for i := 0; i < MaxLen-1; i++ {
		buf[i] = 0xff
	}

	buf[MaxLen-1] = 0x02 // < 0x80 (final byte), but > 1, overflows

	_, _, err := ReadUvarint(buf)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestUvarint_NeverOverreads(t *testing.T) {
	// A buffer of all-continuation bytes longer than MaxLen must fail
	// with Malformed, not read past MaxLen bytes.
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = 0xff
	}

	_, _, err := ReadUvarint(buf)
	require.Error(t, err)
}

func TestVarint_RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -64, 1000000, -1000000, 1<<62 - 1, -(1 << 62)}

	for _, n := range cases {
		buf := AppendVarint(nil, n)
		got, read, err := ReadVarint(buf)
		require.NoError(t, err)
		require.Equal(t, n, got)
		require.Equal(t, len(buf), read)
	}
}

func TestZigZag_KnownValues(t *testing.T) {
	require.Equal(t, uint64(0), ZigZagEncode(0))
	require.Equal(t, uint64(1), ZigZagEncode(-1))
	require.Equal(t, uint64(2), ZigZagEncode(1))
	require.Equal(t, uint64(3), ZigZagEncode(-2))
	require.Equal(t, uint64(4), ZigZagEncode(2))

	require.Equal(t, int64(0), ZigZagDecode(0))
	require.Equal(t, int64(-1), ZigZagDecode(1))
	require.Equal(t, int64(1), ZigZagDecode(2))
}

func TestAppendUvarint_MultiValueBuffer(t *testing.T) {
	var buf []byte
	buf = AppendUvarint(buf, 5)
	buf = AppendUvarint(buf, 300)
	buf = AppendUvarint(buf, 0)

	v1, n1, err := ReadUvarint(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(5), v1)

	v2, n2, err := ReadUvarint(buf[n1:])
	require.NoError(t, err)
	require.Equal(t, uint64(300), v2)

	v3, _, err := ReadUvarint(buf[n1+n2:])
	require.NoError(t, err)
	require.Equal(t, uint64(0), v3)
}
