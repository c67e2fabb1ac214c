// Package limits provides centralized frame geometry limits and validation
// functions for NV21 frame processing. It ensures consistent dimension
// enforcement across the nv21, av/video and stream packages.
//
// # Dimension Limits
//
//   - MaxFrameDimension (16384 pixels): The largest width or height accepted
//     for any frame. This is larger than any capture or encoder resolution
//     in practical use and keeps width*height*3/2 well inside int range on
//     32-bit platforms.
//
//   - MaxFrameBytes: The NV21 buffer size of a MaxFrameDimension square
//     frame. Readers use it to bound allocations driven by untrusted
//     headers or flags.
//
// # Validation Functions
//
//	err := limits.ValidateDimensions(width, height)
//	if err != nil {
//	    // ErrDimensionInvalid or ErrDimensionTooLarge
//	}
//
// Zero dimensions are valid here: a zero-sized frame is an empty buffer and
// callers decide whether that is meaningful. Use ValidateFrameDimensions
// when a frame must contain at least one 2x2 block.
//
// # Error Types
//
//   - ErrDimensionInvalid: a dimension is negative, or zero/odd where a
//     full NV21 frame is required
//   - ErrDimensionTooLarge: a dimension exceeds MaxFrameDimension
//
// Errors carry the offending values and can be classified with errors.Is.
package limits
