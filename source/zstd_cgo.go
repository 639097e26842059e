//go:build nobuild

package source

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewReader returns a streaming Zstandard decoder over r backed by the
// cgo libzstd bindings.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReadCloser{zr: gozstd.NewReader(r)}, nil
}

// gozstdReadCloser adapts gozstd's Release lifecycle to io.ReadCloser.
type gozstdReadCloser struct {
	zr *gozstd.Reader
}

func (rc *gozstdReadCloser) Read(p []byte) (int, error) {
	return rc.zr.Read(p)
}

func (rc *gozstdReadCloser) Close() error {
	rc.zr.Release()
	return nil
}
