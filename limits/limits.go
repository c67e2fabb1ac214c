// Package limits provides centralized frame geometry limits for NV21 processing.
// This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxFrameDimension is the largest accepted frame width or height in pixels.
	MaxFrameDimension = 16384

	// MaxFrameBytes is the NV21 size of a MaxFrameDimension x MaxFrameDimension frame.
	MaxFrameBytes = MaxFrameDimension * MaxFrameDimension * 3 / 2
)

var (
	// ErrDimensionInvalid indicates a negative, zero or misaligned dimension.
	ErrDimensionInvalid = errors.New("invalid frame dimension")

	// ErrDimensionTooLarge indicates a dimension above MaxFrameDimension.
	ErrDimensionTooLarge = errors.New("frame dimension too large")
)

// ValidateDimensions checks that width and height are within [0, MaxFrameDimension].
// Returns an error with context including the offending values.
func ValidateDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d is negative", ErrDimensionInvalid, width, height)
	}
	if width > MaxFrameDimension || height > MaxFrameDimension {
		return fmt.Errorf("%w: %dx%d exceeds limit %d", ErrDimensionTooLarge, width, height, MaxFrameDimension)
	}
	return nil
}

// ValidateFrameDimensions is ValidateDimensions for frames that must hold at
// least one full 2x2 block: both dimensions positive and even.
func ValidateFrameDimensions(width, height int) error {
	if err := ValidateDimensions(width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d is empty", ErrDimensionInvalid, width, height)
	}
	if width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("%w: %dx%d is not even", ErrDimensionInvalid, width, height)
	}
	return nil
}
