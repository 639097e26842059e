package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rowscan/rowscan/errs"
)

// Compression identifies a supported input compression format.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionGzip
	CompressionS2
	CompressionLZ4
)

// String returns the canonical name of the compression format.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Codec wraps a raw stream with streaming decompression.
type Codec interface {
	// NewReader returns a reader producing the decompressed content of r.
	// Closing the returned reader releases codec resources but does not
	// close r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Codec returns the codec for the compression format, or ErrUnknownCodec
// for a format this package does not implement.
func (c Compression) Codec() (Codec, error) {
	switch c {
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionGzip:
		return NewGzipCodec(), nil
	case CompressionS2:
		return NewS2Codec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCodec, c)
	}
}

// ForPath returns the compression format implied by the path's extension.
func ForPath(path string) Compression {
	switch filepath.Ext(path) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".gz":
		return CompressionGzip
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Open opens the file at path for scanning, transparently decompressing it
// when the extension names a supported format. The returned ReadCloser
// owns the underlying file; closing it closes both.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	compression := ForPath(path)
	if compression == CompressionNone {
		return f, nil
	}

	codec, err := compression.Codec()
	if err != nil {
		f.Close()
		return nil, err
	}
	rc, err := codec.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s stream for %s: %w", compression, path, err)
	}

	return &fileReadCloser{rc: rc, f: f}, nil
}

// fileReadCloser closes the decompressor first, then the file under it.
type fileReadCloser struct {
	rc io.ReadCloser
	f  *os.File
}

func (c *fileReadCloser) Read(p []byte) (int, error) {
	return c.rc.Read(p)
}

func (c *fileReadCloser) Close() error {
	rcErr := c.rc.Close()
	fErr := c.f.Close()
	if rcErr != nil {
		return rcErr
	}

	return fErr
}
