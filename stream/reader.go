package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/opd-ai/nv21kit/limits"
	"github.com/opd-ai/nv21kit/nv21"
)

// ErrTruncatedFrame is returned when a stream ends in the middle of a frame.
var ErrTruncatedFrame = errors.New("truncated frame")

// Reader reads fixed-size NV21 frames from an io.Reader.
type Reader struct {
	r      io.Reader
	width  int
	height int
	size   int
	count  int
}

// NewReader creates a reader of width x height frames. Both dimensions must
// be non-zero and even.
func NewReader(r io.Reader, width, height int) (*Reader, error) {
	if err := limits.ValidateFrameDimensions(width, height); err != nil {
		return nil, err
	}
	return &Reader{
		r:      r,
		width:  width,
		height: height,
		size:   nv21.FrameSize(width, height),
	}, nil
}

// Width returns the frame width.
func (fr *Reader) Width() int { return fr.width }

// Height returns the frame height.
func (fr *Reader) Height() int { return fr.height }

// FrameSize returns the size of one frame in bytes.
func (fr *Reader) FrameSize() int { return fr.size }

// Count returns the number of frames read so far.
func (fr *Reader) Count() int { return fr.count }

// ReadFrame reads the next frame into a new buffer. It returns io.EOF when
// the stream ends cleanly on a frame boundary.
func (fr *Reader) ReadFrame() ([]byte, error) {
	buf := make([]byte, fr.size)
	if err := fr.ReadFrameInto(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadFrameInto reads the next frame into buf, which must be FrameSize
// bytes long.
func (fr *Reader) ReadFrameInto(buf []byte) error {
	if len(buf) != fr.size {
		return fmt.Errorf("%w: buffer has %d bytes, frame needs %d", nv21.ErrSizeMismatch, len(buf), fr.size)
	}

	n, err := io.ReadFull(fr.r, buf)
	switch {
	case err == io.EOF:
		return io.EOF
	case err == io.ErrUnexpectedEOF:
		return fmt.Errorf("%w: frame %d has %d of %d bytes", ErrTruncatedFrame, fr.count, n, fr.size)
	case err != nil:
		return fmt.Errorf("read frame %d: %w", fr.count, err)
	}
	fr.count++
	return nil
}
