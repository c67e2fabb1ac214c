package nv21

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Overlay composites a fgWidth x fgHeight foreground onto a width x height
// destination with the foreground's top-left corner at (left, top).
//
// The foreground is clipped to the destination's right and bottom edges,
// then placement and size are rounded down to even values. With
// transparent set, foreground bytes equal to TransparentY (luma) or
// TransparentUV (chroma) keep the destination byte; otherwise the
// foreground is copied verbatim, sentinel bytes included.
//
// dst is modified in place. On any error dst is left untouched.
func Overlay(dst []byte, width, height, left, top int, fg []byte, fgWidth, fgHeight int, transparent bool) error {
	if err := overlay(dst, width, height, left, top, fg, fgWidth, fgHeight, transparent); err != nil {
		logrus.WithFields(logrus.Fields{
			"function":    "Overlay",
			"width":       width,
			"height":      height,
			"left":        left,
			"top":         top,
			"fg_width":    fgWidth,
			"fg_height":   fgHeight,
			"transparent": transparent,
			"error":       err.Error(),
		}).Debug("Overlay skipped, destination unchanged")
		return err
	}
	return nil
}

func overlay(dst []byte, width, height, left, top int, fg []byte, fgWidth, fgHeight int, transparent bool) error {
	if err := ValidateBufferSize(dst, width, height); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if err := ValidateBufferSize(fg, fgWidth, fgHeight); err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	if left < 0 || top < 0 {
		return fmt.Errorf("%w: overlay placed at (%d,%d)", ErrOutOfBounds, left, top)
	}

	placed := clipOverlay(Region{Left: left, Top: top, Width: fgWidth, Height: fgHeight}, width, height).Even()
	if placed.Empty() {
		return fmt.Errorf("%w: overlay %dx%d at (%d,%d) outside %dx%d",
			ErrEmptyRegion, fgWidth, fgHeight, left, top, width, height)
	}

	patch, err := Crop(fg, fgWidth, fgHeight, Region{Width: placed.Width, Height: placed.Height})
	if err != nil {
		return fmt.Errorf("clip overlay: %w", err)
	}

	if transparent {
		background, err := Crop(dst, width, height, placed)
		if err != nil {
			return fmt.Errorf("crop background: %w", err)
		}
		// The background may alias dst when the overlay covers the whole
		// frame; merge into a private copy so dst is written only by the blit.
		background = background.Owned()
		if err := Merge(background.Data, patch.Data, placed.Width, placed.Height); err != nil {
			return err
		}
		patch = background
	}

	planeCopy{
		src:       patch.Data,
		srcWidth:  placed.Width,
		srcHeight: placed.Height,
		dst:       dst,
		dstWidth:  width,
		dstHeight: height,
		dstX:      placed.Left,
		dstY:      placed.Top,
		width:     placed.Width,
		height:    placed.Height,
	}.run()

	return nil
}

// clipOverlay shrinks r so it does not extend past the right or bottom edge
// of a width x height frame. Placement is not rounded here; callers round
// the clipped result with Even. A region starting at or past an edge comes
// back empty. r must not have negative fields.
func clipOverlay(r Region, width, height int) Region {
	if r.Left >= width || r.Top >= height {
		r.Width, r.Height = 0, 0
		return r
	}
	if r.Left > width-r.Width {
		r.Width = width - r.Left
	}
	if r.Top > height-r.Height {
		r.Height = height - r.Top
	}
	return r
}

// Merge copies fg into background byte by byte, skipping transparent bytes.
// Both buffers hold one width x height frame. Indices below width*height
// are luma and skip TransparentY; the rest are chroma and skip
// TransparentUV. On a size mismatch background is not modified.
func Merge(background, fg []byte, width, height int) error {
	if err := ValidateBufferSize(background, width, height); err != nil {
		return fmt.Errorf("merge background: %w", err)
	}
	if err := ValidateBufferSize(fg, width, height); err != nil {
		return fmt.Errorf("merge overlay: %w", err)
	}

	split := width * height
	for i, b := range fg[:split] {
		if b != TransparentY {
			background[i] = b
		}
	}
	for i, b := range fg[split:] {
		if b != TransparentUV {
			background[split+i] = b
		}
	}
	return nil
}
