package scan

import (
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/rowscan/rowscan/errs"
)

const sampleRows = "1,110,4.0,t1\n2,110,3.0,t2\n3,111,5.0,t3\n"

func TestAggregate(t *testing.T) {
	result, err := Aggregate(strings.NewReader(sampleRows), []byte("110"))
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
	require.Equal(t, 3.5, result.Average())
}

func TestAggregate_ChunkCapacityInvariance(t *testing.T) {
	// The aggregate must not depend on where refill boundaries land.
	for _, capacity := range []int{16, 17, 32, 64, DefaultChunkCapacity} {
		result, err := Aggregate(strings.NewReader(sampleRows), []byte("110"),
			WithChunkCapacity(capacity))
		require.NoError(t, err, "capacity %d", capacity)
		require.Equal(t, 7.0, result.Sum, "capacity %d", capacity)
		require.Equal(t, int64(2), result.Count, "capacity %d", capacity)
	}
}

func TestAggregate_OneByteReads(t *testing.T) {
	result, err := Aggregate(iotest.OneByteReader(strings.NewReader(sampleRows)), []byte("110"))
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
}

func TestAggregate_ZeroMatches(t *testing.T) {
	result, err := Aggregate(strings.NewReader(sampleRows), []byte("404"))
	require.NoError(t, err)
	require.Zero(t, result.Sum)
	require.Zero(t, result.Count)
	require.True(t, math.IsNaN(result.Average()))
}

func TestAggregate_NoTrailingTerminator(t *testing.T) {
	rows := "1,110,4.0,t1\n2,110,3.0,t2"
	result, err := Aggregate(strings.NewReader(rows), []byte("110"))
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
}

func TestAggregate_ValueParseError(t *testing.T) {
	rows := sampleRows + "4,110,abc,t4\n5,110,1.0,t5\n"
	result, err := Aggregate(strings.NewReader(rows), []byte("110"))
	require.ErrorIs(t, err, errs.ErrValueParse)
	require.Zero(t, result) // no partial aggregate on corrupt input

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, int64(4), rowErr.Line)
	require.Equal(t, int64(len(sampleRows)), rowErr.Offset)
	require.Contains(t, err.Error(), "abc")
}

func TestAggregate_MalformedRow(t *testing.T) {
	// The row matches the key but carries no value field; skipping it
	// would silently understate the sum, so the scan must fail.
	rows := "1,110,4.0,t1\n2,110\n"
	result, err := Aggregate(strings.NewReader(rows), []byte("110"))
	require.ErrorIs(t, err, errs.ErrMalformedRow)
	require.Zero(t, result)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, int64(2), rowErr.Line)
}

func TestAggregate_ShortNonMatchingRowsSkipped(t *testing.T) {
	// Rows too short to carry the filter field cannot match; they are
	// skipped rather than treated as malformed.
	rows := "junk\n\n1,110,4.0,t1\n"
	result, err := Aggregate(strings.NewReader(rows), []byte("110"))
	require.NoError(t, err)
	require.Equal(t, 4.0, result.Sum)
	require.Equal(t, int64(1), result.Count)
}

func TestAggregate_HeaderNaturallySkipped(t *testing.T) {
	rows := "id,account,amount,tag\n" + sampleRows
	result, err := Aggregate(strings.NewReader(rows), []byte("110"))
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
}

func TestAggregate_CustomLayout(t *testing.T) {
	rows := "cpu|0.5|eu\nmem|1.5|eu\ncpu|0.25|us\n"
	result, err := Aggregate(strings.NewReader(rows), []byte("cpu"),
		WithDelimiter('|'),
		WithFilterField(0),
		WithValueField(1),
	)
	require.NoError(t, err)
	require.Equal(t, 0.75, result.Sum)
	require.Equal(t, int64(2), result.Count)
}

func TestAggregate_NumericLiterals(t *testing.T) {
	rows := "1,k,1e3\n2,k,-2.5e-1\n3,k,+4\n4,k,.5\n"
	result, err := Aggregate(strings.NewReader(rows), []byte("k"))
	require.NoError(t, err)
	require.Equal(t, int64(4), result.Count)
	require.InDelta(t, 1004.25, result.Sum, 1e-9)
}

func TestAggregate_InvalidOptions(t *testing.T) {
	_, err := Aggregate(strings.NewReader(sampleRows), []byte("110"), WithChunkCapacity(0))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = Aggregate(strings.NewReader(sampleRows), []byte("110"), WithFilterField(-1))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = Aggregate(strings.NewReader(sampleRows), []byte("110"), WithDelimiter('\n'))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestAggregate_LineTooLong(t *testing.T) {
	result, err := Aggregate(strings.NewReader(sampleRows), []byte("110"), WithChunkCapacity(8))
	require.ErrorIs(t, err, errs.ErrLineTooLong)
	require.Zero(t, result)
}

func TestAggregate_LineTooLongWithGrowth(t *testing.T) {
	result, err := Aggregate(strings.NewReader(sampleRows), []byte("110"),
		WithChunkCapacity(8), WithBufferGrowth())
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
}
