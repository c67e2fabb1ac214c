package video

import (
	"fmt"
	"sync"

	"github.com/opd-ai/nv21kit/nv21"
	"github.com/sirupsen/logrus"
)

// OverlayProcessor draws a fixed NV21 image onto captured frames.
//
// Placement (left, top) is given in display coordinates: the top-left
// corner of the upright picture the viewer sees. Capture buffers arrive in
// sensor orientation together with the clockwise rotation needed to
// display them, so the overlay is rotated by the inverse angle and its
// placement mapped into buffer coordinates before drawing. The adapted
// overlay is cached and rebuilt only when the frame size or rotation
// changes.
//
// OverlayProcessor implements interfaces.FrameHandler and is safe for
// concurrent use.
type OverlayProcessor struct {
	overlay     nv21.Frame
	left        int
	top         int
	transparent bool

	mu      sync.Mutex
	current *overlayPlacement
}

// overlayPlacement is the overlay adapted to one frame geometry.
type overlayPlacement struct {
	frameWidth  int
	frameHeight int
	rotation    nv21.Rotation

	data   []byte
	width  int
	height int
	left   int
	top    int
	err    error
}

func (p *overlayPlacement) matches(width, height int, rotation nv21.Rotation) bool {
	return p != nil && p.frameWidth == width && p.frameHeight == height && p.rotation == rotation
}

// NewOverlayProcessor creates an overlay handler.
//
// overlay may be longer than width*height*3/2 (padded producer output); it
// is trimmed with nv21.Fit. Odd dimensions are rounded down to even so the
// image can be rotated. The processor keeps its own copy of the image.
func NewOverlayProcessor(overlay []byte, width, height, left, top int, transparent bool) (*OverlayProcessor, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "NewOverlayProcessor",
		"width":       width,
		"height":      height,
		"left":        left,
		"top":         top,
		"transparent": transparent,
	}).Info("Creating overlay processor")

	if left < 0 || top < 0 {
		return nil, fmt.Errorf("%w: overlay placed at (%d,%d)", nv21.ErrOutOfBounds, left, top)
	}

	fitted, err := nv21.Fit(overlay, width, height)
	if err != nil {
		return nil, fmt.Errorf("overlay image: %w", err)
	}
	even, err := nv21.Crop(fitted, width, height, nv21.Region{Width: width &^ 1, Height: height &^ 1})
	if err != nil {
		return nil, fmt.Errorf("overlay image: %w", err)
	}
	if even.Width == 0 || even.Height == 0 {
		return nil, fmt.Errorf("%w: overlay image %dx%d", nv21.ErrEmptyRegion, width, height)
	}

	return &OverlayProcessor{
		overlay:     even.Owned(),
		left:        left,
		top:         top,
		transparent: transparent,
	}, nil
}

// HandleNV21 draws the overlay onto buf. It returns false, leaving buf
// untouched, when the overlay cannot be placed on this frame geometry or
// the frame is malformed.
func (op *OverlayProcessor) HandleNV21(buf []byte, width, height int, rotation nv21.Rotation) bool {
	placement := op.placementFor(width, height, rotation)
	if placement.err != nil {
		return false
	}

	err := nv21.Overlay(buf, width, height, placement.left, placement.top,
		placement.data, placement.width, placement.height, op.transparent)
	return err == nil
}

// placementFor returns the cached placement for the geometry, adapting the
// overlay first when the geometry changed.
func (op *OverlayProcessor) placementFor(width, height int, rotation nv21.Rotation) *overlayPlacement {
	op.mu.Lock()
	defer op.mu.Unlock()

	if op.current.matches(width, height, rotation) {
		return op.current
	}

	placement := op.adapt(width, height, rotation)
	if placement.err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "OverlayProcessor.HandleNV21",
			"width":    width,
			"height":   height,
			"rotation": int(rotation),
			"left":     op.left,
			"top":      op.top,
			"error":    placement.err.Error(),
		}).Warn("Overlay cannot be placed on this frame geometry, frames pass through unchanged")
	} else {
		logrus.WithFields(logrus.Fields{
			"function":       "OverlayProcessor.HandleNV21",
			"width":          width,
			"height":         height,
			"rotation":       int(rotation),
			"overlay_width":  placement.width,
			"overlay_height": placement.height,
			"buffer_left":    placement.left,
			"buffer_top":     placement.top,
		}).Debug("Overlay adapted to frame geometry")
	}

	op.current = placement
	return placement
}

// adapt rotates the overlay into buffer orientation and maps its display
// placement into buffer coordinates. Parts hanging off the leading (left or
// top) buffer edge are cropped away here; nv21.Overlay clips the trailing
// edges itself.
func (op *OverlayProcessor) adapt(width, height int, rotation nv21.Rotation) *overlayPlacement {
	placement := &overlayPlacement{frameWidth: width, frameHeight: height, rotation: rotation}

	if !rotation.Valid() {
		placement.err = fmt.Errorf("%w: %d degrees", nv21.ErrUnsupportedRotation, int(rotation))
		return placement
	}

	displayWidth, displayHeight := width, height
	if rotation.SwapsAxes() {
		displayWidth, displayHeight = height, width
	}
	if op.left >= displayWidth || op.top >= displayHeight {
		placement.err = fmt.Errorf("%w: overlay at (%d,%d) outside %dx%d display",
			nv21.ErrEmptyRegion, op.left, op.top, displayWidth, displayHeight)
		return placement
	}

	rotated, err := nv21.Rotate(op.overlay.Data, op.overlay.Width, op.overlay.Height, rotation.Inverse())
	if err != nil {
		placement.err = err
		return placement
	}
	ow, oh := rotated.Width, rotated.Height

	var x, y int
	switch rotation {
	case nv21.Rotate0:
		x, y = op.left, op.top
	case nv21.Rotate90:
		x, y = op.top, height-op.left-oh
	case nv21.Rotate180:
		x, y = width-op.left-ow, height-op.top-oh
	case nv21.Rotate270:
		x, y = width-op.top-ow, op.left
	}

	data := rotated.Data
	if x < 0 || y < 0 {
		cut := nv21.Region{Left: max(-x, 0), Top: max(-y, 0)}
		cut.Width = ow - cut.Left
		cut.Height = oh - cut.Top
		if cut.Empty() {
			placement.err = fmt.Errorf("%w: overlay entirely off the frame edge", nv21.ErrEmptyRegion)
			return placement
		}
		cropped, err := nv21.Crop(rotated.Data, ow, oh, cut)
		if err != nil {
			placement.err = err
			return placement
		}
		data, ow, oh = cropped.Data, cropped.Width, cropped.Height
		x, y = max(x, 0), max(y, 0)
	}

	placement.data = data
	placement.width = ow
	placement.height = oh
	placement.left = x
	placement.top = y
	return placement
}
