// Package nv21 crops and composites raw NV21 video frames.
//
// An NV21 frame is a single byte slice holding a full-resolution luma
// plane followed by a half-resolution chroma plane of interleaved V,U
// pairs:
//
//	+----------------------+  0
//	|  Y  (width*height)   |
//	+----------------------+  width*height
//	|  VUVU... (height/2   |
//	|  rows of width)      |
//	+----------------------+  width*height*3/2
//
// Every V,U pair covers a 2x2 block of luma pixels, so all regions are
// aligned to even coordinates before any bytes move. Odd coordinates are
// never an error: they are rounded down by Region.Even.
//
// # Cropping
//
//	frame, err := nv21.Crop(src, 640, 480, nv21.Region{Left: 100, Top: 50, Width: 320, Height: 240})
//	if err != nil {
//	    return err // ErrSizeMismatch or ErrOutOfBounds
//	}
//
// When the region is the whole source, Crop returns the source itself as a
// borrowed Frame. Call Frame.Owned before mutating a result that may alias
// the caller's buffer.
//
// # Overlaying
//
//	err := nv21.Overlay(dst, 640, 480, 16, 16, logo, 128, 64, true)
//
// Overlay writes the foreground into dst in place. A foreground that hangs
// over the right or bottom edge is clipped. With transparency enabled, a
// foreground luma byte equal to TransparentY (0x10) or a chroma byte equal
// to TransparentUV (0x80) keeps the background byte. A failed Overlay
// leaves dst untouched.
//
// # Errors
//
// Malformed input never panics. Operations return one of the sentinel
// errors (ErrSizeMismatch, ErrOutOfBounds, ErrEmptyRegion, ErrOddDimensions,
// ErrUnsupportedRotation) wrapped with context, or an error from the limits
// package for negative or oversized dimensions. Use errors.Is to classify.
//
// # Thread Safety
//
// The package holds no state. Concurrent calls are safe as long as no two
// calls write the same destination buffer and no caller reads a buffer
// while Overlay writes it.
package nv21
