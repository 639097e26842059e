package source

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec decodes gzip streams.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a new gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// NewReader returns a streaming gzip decoder over r. It fails immediately
// if r does not start with a gzip header.
func (c GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
