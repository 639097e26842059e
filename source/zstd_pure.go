//go:build !nobuild

package source

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewReader returns a streaming Zstandard decoder over r.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	// Single-threaded and low-memory: the scanner reads sequentially into
	// one chunk buffer, so decoder concurrency buys nothing here.
	decoder, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, err
	}

	return decoder.IOReadCloser(), nil
}
