package video

import (
	"fmt"

	"github.com/opd-ai/nv21kit/nv21"
)

// VideoFrame represents a video frame in YUV420 planar (I420) format.
//
// This is the frame type exchanged with capture sources and sinks. Frame
// handlers work on NV21; ToNV21 and VideoFrameFromNV21 move between the two
// layouts without touching sample values.
type VideoFrame struct {
	Width       uint16
	Height      uint16
	Y           []byte        // Luminance plane
	U           []byte        // Chrominance U plane
	V           []byte        // Chrominance V plane
	YStride     int           // Stride for Y plane
	UStride     int           // Stride for U plane
	VStride     int           // Stride for V plane
	Rotation    nv21.Rotation // Clockwise rotation needed for display
	TimestampNs int64         // Capture timestamp
}

// NewVideoFrame allocates a zeroed, tightly packed I420 frame.
func NewVideoFrame(width, height uint16) *VideoFrame {
	ySize := int(width) * int(height)
	uvSize := int(width/2) * int(height/2)
	return &VideoFrame{
		Width:   width,
		Height:  height,
		Y:       make([]byte, ySize),
		U:       make([]byte, uvSize),
		V:       make([]byte, uvSize),
		YStride: int(width),
		UStride: int(width / 2),
		VStride: int(width / 2),
	}
}

// ToNV21 packs the frame's planes into a new NV21 buffer.
func (f *VideoFrame) ToNV21() ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("video frame cannot be nil")
	}
	yStride, uStride, vStride := f.strides()
	return nv21.FromI420(f.Y, f.U, f.V, yStride, uStride, vStride, int(f.Width), int(f.Height))
}

// VideoFrameFromNV21 unpacks an NV21 buffer into a new I420 frame carrying
// the given rotation and timestamp.
func VideoFrameFromNV21(buf []byte, width, height uint16, rotation nv21.Rotation, timestampNs int64) (*VideoFrame, error) {
	y, u, v, err := nv21.ToI420(buf, int(width), int(height))
	if err != nil {
		return nil, err
	}
	return &VideoFrame{
		Width:       width,
		Height:      height,
		Y:           y,
		U:           u,
		V:           v,
		YStride:     int(width),
		UStride:     int(width / 2),
		VStride:     int(width / 2),
		Rotation:    rotation,
		TimestampNs: timestampNs,
	}, nil
}

// strides returns the plane strides, treating zero as tightly packed.
func (f *VideoFrame) strides() (y, u, v int) {
	y, u, v = f.YStride, f.UStride, f.VStride
	if y == 0 {
		y = int(f.Width)
	}
	if u == 0 {
		u = int(f.Width / 2)
	}
	if v == 0 {
		v = int(f.Width / 2)
	}
	return y, u, v
}

// copyFrame creates a deep copy of a video frame.
func copyFrame(frame *VideoFrame) *VideoFrame {
	return &VideoFrame{
		Width:       frame.Width,
		Height:      frame.Height,
		YStride:     frame.YStride,
		UStride:     frame.UStride,
		VStride:     frame.VStride,
		Y:           append([]byte(nil), frame.Y...),
		U:           append([]byte(nil), frame.U...),
		V:           append([]byte(nil), frame.V...),
		Rotation:    frame.Rotation,
		TimestampNs: frame.TimestampNs,
	}
}
