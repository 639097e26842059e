package source

// ZstdCodec decodes Zstandard streams.
//
// Two implementations exist: the default pure-Go decoder from
// klauspost/compress, and a cgo variant backed by valyala/gozstd selected
// with the "nobuild" tag for deployments that link libzstd anyway.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
