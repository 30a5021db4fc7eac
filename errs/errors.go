// Package errs defines the sentinel errors returned by the zxc frame
// format, codecs and streaming pipelines.
//
// All errors are plain sentinels so callers can classify failures with
// errors.Is regardless of the wrapping added along the way (streaming
// errors are wrapped with the sequence index of the earliest failing
// block).
package errs

import "errors"

var (
	// ErrInvalidLevel is returned when a compression level is outside the
	// supported range. Raised before any work is dispatched.
	ErrInvalidLevel = errors.New("invalid compression level")

	// ErrInvalidBlockSize is returned when a configured block size is zero,
	// negative, or exceeds the format limit.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidThreadCount is returned when a negative thread count is
	// requested.
	ErrInvalidThreadCount = errors.New("invalid thread count")

	// ErrFormat is returned when the input does not start with a
	// recognized frame magic number or declares an incompatible version.
	ErrFormat = errors.New("unrecognized frame format")

	// ErrCorruptFrame is returned when the frame structure is invalid:
	// out-of-order or duplicated block indices, lengths exceeding the
	// declared block size, or codec output that does not match the
	// recorded original length.
	ErrCorruptFrame = errors.New("corrupt frame")

	// ErrTruncatedInput is returned when the input stream ends before the
	// bytes a frame declares are present.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrChecksumMismatch is returned when every block decoded cleanly but
	// the reconstructed stream does not match the recorded digest.
	// All reconstructed bytes have already been flushed when this is
	// raised; callers decide whether to discard them.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrCodec is returned when the underlying block codec rejects a block
	// it cannot process.
	ErrCodec = errors.New("block codec failure")

	// ErrMissingEOFMarker is returned when a frame ends without the
	// end-of-blocks marker.
	ErrMissingEOFMarker = errors.New("missing end-of-blocks marker")
)
