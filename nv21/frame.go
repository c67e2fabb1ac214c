package nv21

// Frame is an NV21 buffer together with its dimensions.
//
// A Frame returned by this package is either owned (freshly allocated, the
// caller may do anything with it) or borrowed (Data aliases a buffer the
// caller passed in). Writes to a borrowed Frame are writes to the caller's
// original buffer.
type Frame struct {
	Data   []byte
	Width  int
	Height int

	borrowed bool
}

// NewFrame allocates a zeroed width x height frame.
func NewFrame(width, height int) Frame {
	return Frame{
		Data:   make([]byte, FrameSize(width, height)),
		Width:  width,
		Height: height,
	}
}

// Borrowed reports whether Data aliases a buffer owned by someone else.
func (f Frame) Borrowed() bool {
	return f.borrowed
}

// Owned returns a frame whose Data is safe to mutate. Owned frames are
// returned as is; borrowed frames are copied.
func (f Frame) Owned() Frame {
	if !f.borrowed {
		return f
	}
	return Frame{
		Data:   append([]byte(nil), f.Data...),
		Width:  f.Width,
		Height: f.Height,
	}
}

// Y returns the luma plane.
func (f Frame) Y() []byte {
	return f.Data[:f.Width*f.Height]
}

// VU returns the interleaved chroma plane.
func (f Frame) VU() []byte {
	return f.Data[f.Width*f.Height:]
}

// Validate checks that Data matches the frame dimensions.
func (f Frame) Validate() error {
	return ValidateBufferSize(f.Data, f.Width, f.Height)
}

func borrow(buf []byte, width, height int) Frame {
	return Frame{Data: buf, Width: width, Height: height, borrowed: true}
}
