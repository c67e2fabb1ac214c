package nv21

import (
	"fmt"

	"github.com/opd-ai/nv21kit/limits"
)

const (
	// TransparentY is the luma byte treated as transparent by Overlay.
	TransparentY byte = 0x10
	// TransparentUV is the chroma byte treated as transparent by Overlay.
	TransparentUV byte = 0x80
)

// Region is a rectangle in luma pixel coordinates.
type Region struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Full returns the region covering a whole width x height frame.
func Full(width, height int) Region {
	return Region{Width: width, Height: height}
}

// Even rounds every field down to the nearest even value by clearing the
// low bit. 3 becomes 2, 2 stays 2.
func (r Region) Even() Region {
	return Region{
		Left:   r.Left &^ 1,
		Top:    r.Top &^ 1,
		Width:  r.Width &^ 1,
		Height: r.Height &^ 1,
	}
}

// Chroma returns the region in chroma sample coordinates (every field halved).
// The receiver is expected to be even.
func (r Region) Chroma() Region {
	return Region{
		Left:   r.Left / 2,
		Top:    r.Top / 2,
		Width:  r.Width / 2,
		Height: r.Height / 2,
	}
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// String implements fmt.Stringer.
func (r Region) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.Left, r.Top)
}

// FrameSize returns the NV21 buffer length for a width x height frame.
func FrameSize(width, height int) int {
	return width * height * 3 / 2
}

// ValidateBufferSize checks that buf holds exactly one width x height frame.
func ValidateBufferSize(buf []byte, width, height int) error {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return err
	}
	if want := FrameSize(width, height); len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrSizeMismatch, len(buf), want, width, height)
	}
	return nil
}

// ValidateRegionFits checks that r lies inside a srcWidth x srcHeight frame.
// The check runs on the region as given, before any even rounding.
func ValidateRegionFits(r Region, srcWidth, srcHeight int) error {
	if r.Left < 0 || r.Top < 0 || r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: %s has negative fields", ErrOutOfBounds, r)
	}
	// Compared without adding so huge coordinates cannot wrap around.
	if r.Width > srcWidth || r.Left > srcWidth-r.Width ||
		r.Height > srcHeight || r.Top > srcHeight-r.Height {
		return fmt.Errorf("%w: %s exceeds %dx%d", ErrOutOfBounds, r, srcWidth, srcHeight)
	}
	return nil
}
