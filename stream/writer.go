package stream

import (
	"fmt"
	"io"

	"github.com/opd-ai/nv21kit/limits"
	"github.com/opd-ai/nv21kit/nv21"
)

// Writer appends fixed-size NV21 frames to an io.Writer. It implements
// interfaces.FrameSink.
type Writer struct {
	w      io.Writer
	width  int
	height int
	count  int
}

// NewWriter creates a writer of width x height frames.
func NewWriter(w io.Writer, width, height int) (*Writer, error) {
	if err := limits.ValidateFrameDimensions(width, height); err != nil {
		return nil, err
	}
	return &Writer{w: w, width: width, height: height}, nil
}

// WriteFrame writes one frame. Frames of a different size than the stream
// are rejected so the output stays seekable by frame index.
func (fw *Writer) WriteFrame(buf []byte, width, height int) error {
	if width != fw.width || height != fw.height {
		return fmt.Errorf("%w: %dx%d frame in %dx%d stream", nv21.ErrSizeMismatch, width, height, fw.width, fw.height)
	}
	if err := nv21.ValidateBufferSize(buf, width, height); err != nil {
		return err
	}
	if _, err := fw.w.Write(buf); err != nil {
		return fmt.Errorf("write frame %d: %w", fw.count, err)
	}
	fw.count++
	return nil
}

// Count returns the number of frames written.
func (fw *Writer) Count() int { return fw.count }
