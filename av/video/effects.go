// Package video provides frame effects for the NV21 processing pipeline.
//
// This file implements effects that can be applied to YUV420 frames
// through the nv21 core: overlay, crop and rotation.
package video

import (
	"fmt"
	"sync"

	"github.com/opd-ai/nv21kit/nv21"
)

// Effect transforms a whole frame. Implementations return a new frame and
// leave their input alone.
type Effect interface {
	Apply(frame *VideoFrame) (*VideoFrame, error)
	GetName() string
}

// EffectChain runs effects one after another, each on the previous result.
// A Processor applies its chain after the frame handler.
type EffectChain struct {
	mu      sync.RWMutex
	effects []Effect
}

// NewEffectChain creates a chain of the given effects. Nil effects are
// skipped.
func NewEffectChain(effects ...Effect) *EffectChain {
	ec := &EffectChain{}
	for _, e := range effects {
		ec.Add(e)
	}
	return ec
}

// Add appends an effect to the chain.
func (ec *EffectChain) Add(e Effect) {
	if e == nil {
		return
	}
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.effects = append(ec.effects, e)
}

// Len returns the number of effects in the chain.
func (ec *EffectChain) Len() int {
	if ec == nil {
		return 0
	}
	ec.mu.RLock()
	defer ec.mu.RUnlock()
	return len(ec.effects)
}

// Clear empties the chain.
func (ec *EffectChain) Clear() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.effects = nil
}

// Apply runs frame through every effect. An empty chain returns a copy, so
// the result never aliases frame.
func (ec *EffectChain) Apply(frame *VideoFrame) (*VideoFrame, error) {
	if frame == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	ec.mu.RLock()
	effects := ec.effects
	ec.mu.RUnlock()

	if len(effects) == 0 {
		return copyFrame(frame), nil
	}

	out := frame
	for i, e := range effects {
		next, err := e.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("effect %d (%s) failed: %w", i, e.GetName(), err)
		}
		out = next
	}
	return out, nil
}

// OverlayEffect composites a fixed NV21 image onto every frame.
type OverlayEffect struct {
	overlay     []byte
	width       int
	height      int
	left        int
	top         int
	transparent bool
}

// NewOverlayEffect creates an overlay effect. The overlay buffer is checked
// here so a malformed image fails at construction, not per frame.
func NewOverlayEffect(overlay []byte, width, height, left, top int, transparent bool) (*OverlayEffect, error) {
	if err := nv21.ValidateBufferSize(overlay, width, height); err != nil {
		return nil, fmt.Errorf("overlay image: %w", err)
	}
	return &OverlayEffect{
		overlay:     overlay,
		width:       width,
		height:      height,
		left:        left,
		top:         top,
		transparent: transparent,
	}, nil
}

// Apply draws the overlay in frame buffer coordinates.
func (oe *OverlayEffect) Apply(frame *VideoFrame) (*VideoFrame, error) {
	if frame == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	buf, err := frame.ToNV21()
	if err != nil {
		return nil, err
	}
	width, height := int(frame.Width), int(frame.Height)
	if err := nv21.Overlay(buf, width, height, oe.left, oe.top, oe.overlay, oe.width, oe.height, oe.transparent); err != nil {
		return nil, err
	}
	return VideoFrameFromNV21(buf, frame.Width, frame.Height, frame.Rotation, frame.TimestampNs)
}

// GetName returns the effect name.
func (oe *OverlayEffect) GetName() string {
	mode := "Opaque"
	if oe.transparent {
		mode = "Transparent"
	}
	return fmt.Sprintf("Overlay(%dx%d@%d,%d,%s)", oe.width, oe.height, oe.left, oe.top, mode)
}

// CropEffect cuts a fixed region out of every frame.
type CropEffect struct {
	region nv21.Region
}

// NewCropEffect creates a crop effect. Odd region values are rounded down
// to even when applied.
func NewCropEffect(region nv21.Region) *CropEffect {
	return &CropEffect{region: region}
}

// Apply returns a new frame holding the cropped region.
func (ce *CropEffect) Apply(frame *VideoFrame) (*VideoFrame, error) {
	if frame == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	buf, err := frame.ToNV21()
	if err != nil {
		return nil, err
	}
	cropped, err := nv21.Crop(buf, int(frame.Width), int(frame.Height), ce.region)
	if err != nil {
		return nil, err
	}
	return VideoFrameFromNV21(cropped.Data, uint16(cropped.Width), uint16(cropped.Height), frame.Rotation, frame.TimestampNs)
}

// GetName returns the effect name.
func (ce *CropEffect) GetName() string {
	return fmt.Sprintf("Crop(%s)", ce.region)
}

// RotateEffect turns every frame clockwise by a fixed angle and updates
// the frame's display rotation so it still displays the same way.
type RotateEffect struct {
	rotation nv21.Rotation
}

// NewRotateEffect creates a rotation effect.
func NewRotateEffect(rotation nv21.Rotation) (*RotateEffect, error) {
	if !rotation.Valid() {
		return nil, fmt.Errorf("%w: %d degrees", nv21.ErrUnsupportedRotation, int(rotation))
	}
	return &RotateEffect{rotation: rotation}, nil
}

// Apply returns the rotated frame.
func (re *RotateEffect) Apply(frame *VideoFrame) (*VideoFrame, error) {
	if frame == nil {
		return nil, fmt.Errorf("input frame cannot be nil")
	}

	buf, err := frame.ToNV21()
	if err != nil {
		return nil, err
	}
	rotated, err := nv21.Rotate(buf, int(frame.Width), int(frame.Height), re.rotation)
	if err != nil {
		return nil, err
	}
	display := nv21.Rotation((int(frame.Rotation) + int(re.rotation.Inverse())) % 360)
	return VideoFrameFromNV21(rotated.Data, uint16(rotated.Width), uint16(rotated.Height), display, frame.TimestampNs)
}

// GetName returns the effect name.
func (re *RotateEffect) GetName() string {
	return fmt.Sprintf("Rotate(%d)", int(re.rotation))
}
