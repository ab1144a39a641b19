package compress

// ZstdCodec compresses with Zstandard, trading a little speed for the
// best ratio of the built-in codecs. The implementation is selected at
// build time: the cgo build binds libzstd, the pure-Go build uses
// klauspost's port. Both produce interchangeable streams.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
