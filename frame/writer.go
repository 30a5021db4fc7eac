package frame

import (
	"fmt"
	"io"

	"github.com/zxclab/zxc/internal/pool"
)

// Writer emits a frame incrementally: header first, then block records as
// they become ready, then the EOF marker and the optional trailer.
//
// The writer never reorders records; callers must hand it records in
// sequence order. It does not need to know the total block count in
// advance.
type Writer struct {
	w      io.Writer
	header *Header
	n      int64

	wroteHeader bool
	closed      bool
}

// NewWriter creates a frame writer over w with the given header.
func NewWriter(w io.Writer, header *Header) *Writer {
	return &Writer{w: w, header: header}
}

// WriteHeader serializes and writes the frame header. It is called
// automatically by the first WriteBlock/WriteEOF if the caller has not
// done so already.
func (fw *Writer) WriteHeader() error {
	if fw.wroteHeader {
		return nil
	}
	fw.wroteHeader = true

	if err := fw.write(fw.header.Bytes()); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}

	return nil
}

// WriteBlock writes one block record: the 12-byte record header followed
// by the compressed payload.
func (fw *Writer) WriteBlock(bh BlockHeader, payload []byte) error {
	if err := fw.WriteHeader(); err != nil {
		return err
	}

	engine := fw.header.Flag.GetEndianEngine()

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.B = bh.AppendBytes(buf.B, engine)
	buf.MustWrite(payload)

	if err := fw.write(buf.Bytes()); err != nil {
		return fmt.Errorf("write block %d: %w", bh.Index, err)
	}

	return nil
}

// WriteEOF writes the end-of-blocks marker. No further records may be
// written afterwards.
func (fw *Writer) WriteEOF() error {
	if err := fw.WriteHeader(); err != nil {
		return err
	}
	fw.closed = true

	engine := fw.header.Flag.GetEndianEngine()
	if err := fw.write(NewEOFMarker().Bytes(engine)); err != nil {
		return fmt.Errorf("write EOF marker: %w", err)
	}

	return nil
}

// WriteTrailer writes the checksum trailer. Only valid after WriteEOF on
// a frame whose header declares checksum-present.
func (fw *Writer) WriteTrailer(sum uint64) error {
	engine := fw.header.Flag.GetEndianEngine()
	if err := fw.write(engine.AppendUint64(make([]byte, 0, TrailerSize), sum)); err != nil {
		return fmt.Errorf("write checksum trailer: %w", err)
	}

	return nil
}

// BytesWritten returns the total number of frame bytes written so far.
func (fw *Writer) BytesWritten() int64 {
	return fw.n
}

func (fw *Writer) write(data []byte) error {
	n, err := fw.w.Write(data)
	fw.n += int64(n)

	return err
}
