package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/zxclab/zxc/errs"
)

// Reader parses a frame incrementally: header on construction, then one
// block record per Next call, then the optional trailer.
//
// Records are validated as they are read: sequence indices must be
// contiguous starting at zero, and declared lengths must be consistent
// with the header's block size. Payload bytes are returned in freshly
// allocated slices whose ownership transfers to the caller, which is what
// lets a parallel decompressor hand them straight to workers.
type Reader struct {
	r      io.Reader
	header Header

	nextIndex uint32
	sawEOF    bool
	n         int64

	hdrBuf [BlockHeaderSize]byte
}

// NewReader reads and validates the frame header from r.
//
// Returns ErrFormat for inputs that are not zxc frames, ErrCorruptFrame
// for recognized frames with invalid parameters, and ErrTruncatedInput if
// r ends before a full header arrives.
func NewReader(r io.Reader) (*Reader, error) {
	fr := &Reader{r: r}

	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	fr.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errs.ErrTruncatedInput
		}

		return nil, fmt.Errorf("read frame header: %w", err)
	}

	if err := fr.header.Parse(buf); err != nil {
		return nil, err
	}

	return fr, nil
}

// Header returns the parsed frame header.
func (fr *Reader) Header() Header {
	return fr.header
}

// Next reads the next block record.
//
// For a regular record it returns the validated block header and the
// compressed payload. For the EOF marker it returns a header for which
// IsEOF reports true and a nil payload; no further records follow.
func (fr *Reader) Next() (BlockHeader, []byte, error) {
	if fr.sawEOF {
		return BlockHeader{}, nil, errs.ErrCorruptFrame
	}

	n, err := io.ReadFull(fr.r, fr.hdrBuf[:])
	fr.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// The sequence must be closed by an explicit EOF marker.
			return BlockHeader{}, nil, errs.ErrTruncatedInput
		}

		return BlockHeader{}, nil, fmt.Errorf("read block header: %w", err)
	}

	engine := fr.header.Flag.GetEndianEngine()

	var bh BlockHeader
	if err := bh.Parse(fr.hdrBuf[:], engine); err != nil {
		return BlockHeader{}, nil, err
	}

	if err := bh.Validate(fr.nextIndex, fr.header.BlockSize); err != nil {
		return BlockHeader{}, nil, err
	}

	if bh.IsEOF() {
		fr.sawEOF = true
		return bh, nil, nil
	}

	payload := make([]byte, bh.CompLen)
	n, err = io.ReadFull(fr.r, payload)
	fr.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return BlockHeader{}, nil, errs.ErrTruncatedInput
		}

		return BlockHeader{}, nil, fmt.Errorf("read block %d payload: %w", bh.Index, err)
	}

	fr.nextIndex++

	return bh, payload, nil
}

// ReadTrailer reads the checksum trailer after the EOF marker.
//
// Only valid once Next has returned the EOF marker. If the frame header
// does not declare checksum-present there is no trailer and ReadTrailer
// returns (0, false, nil).
func (fr *Reader) ReadTrailer() (uint64, bool, error) {
	if !fr.sawEOF {
		return 0, false, errs.ErrMissingEOFMarker
	}

	if !fr.header.Flag.HasChecksum() {
		return 0, false, nil
	}

	buf := make([]byte, TrailerSize)
	n, err := io.ReadFull(fr.r, buf)
	fr.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// Checksum-present flag without a trailer is invalid.
			return 0, false, errs.ErrTruncatedInput
		}

		return 0, false, fmt.Errorf("read checksum trailer: %w", err)
	}

	engine := fr.header.Flag.GetEndianEngine()

	return engine.Uint64(buf), true, nil
}

// BlocksRead returns the number of regular block records consumed so far.
func (fr *Reader) BlocksRead() uint32 {
	return fr.nextIndex
}

// BytesRead returns the total number of frame bytes consumed so far.
func (fr *Reader) BytesRead() int64 {
	return fr.n
}
