package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		InvalidBatch:        "InvalidBatch",
		BadMagic:            "BadMagic",
		UnsupportedVersion:  "UnsupportedVersion",
		Malformed:           "Malformed",
		Truncated:           "Truncated",
		BadSchema:           "BadSchema",
		BadUtf8:             "BadUtf8",
		UnsupportedEncoding: "UnsupportedEncoding",
		DictTooLarge:        "DictTooLarge",
		DecompressTooLarge:  "DecompressTooLarge",
		FeatureDisabled:     "FeatureDisabled",
		Kind(255):           "Unknown",
	}

	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}

func TestError_Error_Formatting(t *testing.T) {
	bare := New(Malformed, "bad thing")
	require.Equal(t, "mathldbt: Malformed: bad thing", bare.Error())

	withColumn := New(Malformed, "bad thing").WithColumn(3)
	require.Equal(t, "mathldbt: Malformed: bad thing (column 3)", withColumn.Error())

	withOffset := New(Truncated, "ran out").WithOffset(128)
	require.Equal(t, "mathldbt: Truncated: ran out (offset 128)", withOffset.Error())

	withBoth := New(Truncated, "ran out").WithColumn(2).WithOffset(128)
	require.Equal(t, "mathldbt: Truncated: ran out (column 2, offset 128)", withBoth.Error())
}

func TestError_Unwrap_MatchesSentinel(t *testing.T) {
	err := New(BadMagic, "wrong prefix").WithColumn(0)

	require.ErrorIs(t, err, ErrBadMagic)
	require.NotErrorIs(t, err, ErrMalformed)
}

func TestError_Unwrap_DirectSentinel(t *testing.T) {
	var err error = ErrDecompressTooLarge
	require.True(t, errors.Is(err, ErrDecompressTooLarge))
}

func TestWithColumn_DoesNotMutateOriginal(t *testing.T) {
	base := New(BadSchema, "dup field")
	annotated := base.WithColumn(5)

	require.Equal(t, -1, base.Column)
	require.Equal(t, 5, annotated.Column)
}

func TestWithOffset_DoesNotMutateOriginal(t *testing.T) {
	base := New(Truncated, "short read")
	annotated := base.WithOffset(64)

	require.Equal(t, int64(-1), base.Offset)
	require.Equal(t, int64(64), annotated.Offset)
}

func TestNew_DefaultsColumnAndOffsetToNegativeOne(t *testing.T) {
	err := New(Malformed, "x")
	require.Equal(t, -1, err.Column)
	require.Equal(t, int64(-1), err.Offset)
}
