package nv21

import (
	"fmt"

	"github.com/opd-ai/nv21kit/limits"
	"github.com/sirupsen/logrus"
)

// Fit returns buf trimmed to exactly one width x height frame.
//
// Some producers pad NV21 output for odd dimensions or row alignment, so a
// longer buffer is accepted and its first FrameSize(width, height) bytes are
// copied into a new slice. An exact buffer is returned as is. A shorter
// buffer cannot hold the frame and fails with ErrSizeMismatch.
func Fit(buf []byte, width, height int) ([]byte, error) {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	size := FrameSize(width, height)
	switch {
	case len(buf) == size:
		return buf, nil
	case len(buf) < size:
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d for %dx%d",
			ErrSizeMismatch, len(buf), size, width, height)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Fit",
		"width":    width,
		"height":   height,
		"size":     len(buf),
		"expected": size,
	}).Debug("Trimming padded NV21 buffer")

	out := make([]byte, size)
	copy(out, buf)
	return out, nil
}
