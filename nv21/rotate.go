package nv21

import (
	"fmt"
)

// Rotation is a clockwise rotation in degrees.
type Rotation int

// Supported rotations.
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// ParseRotation converts degrees to a Rotation. Any multiple of 90 is
// accepted and reduced modulo 360, so -90 becomes Rotate270.
func ParseRotation(degrees int) (Rotation, error) {
	if degrees%90 != 0 {
		return Rotate0, fmt.Errorf("%w: %d degrees", ErrUnsupportedRotation, degrees)
	}
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return Rotation(d), nil
}

// Valid reports whether r is one of the four supported rotations.
func (r Rotation) Valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	default:
		return false
	}
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation((360 - int(r)) % 360)
}

// SwapsAxes reports whether r exchanges width and height.
func (r Rotation) SwapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// String implements fmt.Stringer.
func (r Rotation) String() string {
	return fmt.Sprintf("%d°", int(r))
}

// mapPoint returns where pixel (x, y) of a w x h grid lands after rotation.
func (r Rotation) mapPoint(x, y, w, h int) (int, int) {
	switch r {
	case Rotate90:
		return h - 1 - y, x
	case Rotate180:
		return w - 1 - x, h - 1 - y
	case Rotate270:
		return y, w - 1 - x
	default:
		return x, y
	}
}

// Rotate rotates a width x height NV21 frame clockwise by r.
//
// Rotate0 returns src itself as a borrowed Frame. Other rotations allocate
// a new frame; Rotate90 and Rotate270 swap width and height. Chroma V,U
// pairs move as a unit, so both dimensions must be even.
func Rotate(src []byte, width, height int, r Rotation) (Frame, error) {
	if !r.Valid() {
		return Frame{}, fmt.Errorf("%w: %d degrees", ErrUnsupportedRotation, int(r))
	}
	if err := ValidateBufferSize(src, width, height); err != nil {
		return Frame{}, err
	}
	if width%2 != 0 || height%2 != 0 {
		return Frame{}, fmt.Errorf("%w: %dx%d", ErrOddDimensions, width, height)
	}
	if r == Rotate0 {
		return borrow(src, width, height), nil
	}

	dstWidth, dstHeight := width, height
	if r.SwapsAxes() {
		dstWidth, dstHeight = height, width
	}
	out := NewFrame(dstWidth, dstHeight)

	for y := 0; y < height; y++ {
		for x, b := range src[y*width : (y+1)*width] {
			dx, dy := r.mapPoint(x, y, width, height)
			out.Data[dy*dstWidth+dx] = b
		}
	}

	srcVU := src[width*height:]
	dstVU := out.VU()
	chromaWidth, chromaHeight := width/2, height/2
	for y := 0; y < chromaHeight; y++ {
		for x := 0; x < chromaWidth; x++ {
			dx, dy := r.mapPoint(x, y, chromaWidth, chromaHeight)
			s := y*width + 2*x
			d := dy*dstWidth + 2*dx
			dstVU[d] = srcVU[s]
			dstVU[d+1] = srcVU[s+1]
		}
	}

	return out, nil
}
