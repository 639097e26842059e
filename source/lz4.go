package source

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec decodes LZ4 frame streams.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// NewReader returns a streaming LZ4 frame decoder over r.
func (c LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
