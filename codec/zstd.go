package codec

// ZstdCodec implements block compression using the Zstandard algorithm.
//
// Two implementations are selected at build time:
//   - CGO build: uses valyala/gozstd (libzstd bindings) for best performance
//   - Pure Go build: uses klauspost/compress/zstd
//
// Both produce standard zstd payloads, so frames written by one build can
// be read by the other.
//
// Level mapping (1 = fastest, 5 = best ratio) is implementation specific;
// see zstd_cgo.go and zstd_pure.go.
type ZstdCodec struct{}

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() *ZstdCodec {
	return &ZstdCodec{}
}

// zstdNativeLevels maps levels 1..5 to native zstd compression levels.
// Indexed by level; index 0 is unused.
var zstdNativeLevels = [...]int{0, 1, 3, 7, 15, 19}
