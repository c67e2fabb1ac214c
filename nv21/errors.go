package nv21

import "errors"

// Sentinel errors for nv21 operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrSizeMismatch indicates a buffer length that does not equal width*height*3/2.
	ErrSizeMismatch = errors.New("nv21 buffer size mismatch")

	// ErrOutOfBounds indicates a region that does not fit inside its frame.
	ErrOutOfBounds = errors.New("region out of bounds")

	// ErrEmptyRegion indicates an overlay that has nothing left to draw after clipping.
	ErrEmptyRegion = errors.New("empty region")

	// ErrOddDimensions indicates a frame whose width or height is odd where even is required.
	ErrOddDimensions = errors.New("frame dimensions must be even")

	// ErrUnsupportedRotation indicates a rotation other than 0, 90, 180 or 270 degrees.
	ErrUnsupportedRotation = errors.New("unsupported rotation")
)
