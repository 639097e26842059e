package rowscan

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/rowscan/rowscan/errs"
	"github.com/rowscan/rowscan/scan"
)

const sampleRows = "1,110,4.0,t1\n2,110,3.0,t2\n3,111,5.0,t3\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleRows), 0o644))

	return path
}

func TestScanFile(t *testing.T) {
	result, err := ScanFile(writeSample(t), "110")
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
}

func TestScanFile_Options(t *testing.T) {
	result, err := ScanFile(writeSample(t), "110", scan.WithChunkCapacity(16))
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
}

func TestScanFile_Missing(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "absent.csv"), "110")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestAverageFile(t *testing.T) {
	avg, err := AverageFile(writeSample(t), "110")
	require.NoError(t, err)
	require.Equal(t, 3.5, avg)
}

func TestAverageFile_NoMatches(t *testing.T) {
	avg, err := AverageFile(writeSample(t), "404")
	require.NoError(t, err)
	require.True(t, math.IsNaN(avg))
}

func TestGroupFile(t *testing.T) {
	stats, err := GroupFile(writeSample(t))
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.Equal(t, int64(2), stats["110"].Count)
	require.Equal(t, 5.0, stats["111"].Max)
}

func TestScanFile_Compressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(sampleRows))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	result, err := ScanFile(path, "110")
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Sum)
	require.Equal(t, int64(2), result.Count)
}

func TestScanFile_CorruptValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleRows+"4,110,abc,t4\n"), 0o644))

	_, err := ScanFile(path, "110")
	require.ErrorIs(t, err, errs.ErrValueParse)
}
