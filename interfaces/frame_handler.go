package interfaces

import "github.com/opd-ai/nv21kit/nv21"

// FrameHandler defines the interface for in-place NV21 frame editing.
type FrameHandler interface {
	// HandleNV21 processes a width x height frame captured at the given
	// rotation. It reports whether buf holds output that should replace the
	// original frame. When it returns false buf must be unchanged.
	HandleNV21(buf []byte, width, height int, rotation nv21.Rotation) bool
}

// FrameHandlerFunc adapts a function to the FrameHandler interface.
type FrameHandlerFunc func(buf []byte, width, height int, rotation nv21.Rotation) bool

// HandleNV21 calls f.
func (f FrameHandlerFunc) HandleNV21(buf []byte, width, height int, rotation nv21.Rotation) bool {
	return f(buf, width, height, rotation)
}

// FrameSink receives NV21 frames leaving a pipeline stage.
type FrameSink interface {
	// WriteFrame consumes one frame. The sink must not retain buf after
	// returning unless it copies it.
	WriteFrame(buf []byte, width, height int) error
}
