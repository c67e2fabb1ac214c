package nv21

import (
	"github.com/sirupsen/logrus"
)

// Crop extracts region r from a srcWidth x srcHeight NV21 buffer.
//
// The buffer length and the region bounds are checked first; the region is
// then rounded down to even coordinates. When r is exactly the whole
// frame, src itself is returned as a borrowed Frame and nothing is copied.
// Otherwise the result is a new buffer of FrameSize(w, h) bytes for the
// rounded region.
func Crop(src []byte, srcWidth, srcHeight int, r Region) (Frame, error) {
	if err := ValidateBufferSize(src, srcWidth, srcHeight); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Crop",
			"width":    srcWidth,
			"height":   srcHeight,
			"size":     len(src),
			"error":    err.Error(),
		}).Debug("Rejecting crop of malformed frame")
		return Frame{}, err
	}
	if err := ValidateRegionFits(r, srcWidth, srcHeight); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Crop",
			"width":    srcWidth,
			"height":   srcHeight,
			"region":   r.String(),
			"error":    err.Error(),
		}).Debug("Rejecting crop outside frame")
		return Frame{}, err
	}

	if r == Full(srcWidth, srcHeight) {
		return borrow(src, srcWidth, srcHeight), nil
	}

	r = r.Even()
	out := NewFrame(r.Width, r.Height)
	planeCopy{
		src:       src,
		srcWidth:  srcWidth,
		srcHeight: srcHeight,
		srcX:      r.Left,
		srcY:      r.Top,
		dst:       out.Data,
		dstWidth:  r.Width,
		dstHeight: r.Height,
		width:     r.Width,
		height:    r.Height,
	}.run()

	return out, nil
}
