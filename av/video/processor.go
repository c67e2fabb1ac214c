package video

import (
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/nv21kit/interfaces"
	"github.com/sirupsen/logrus"
)

// TimeProvider abstracts time for deterministic testing.
type TimeProvider interface {
	Now() time.Time
}

// DefaultTimeProvider uses the system clock.
type DefaultTimeProvider struct{}

// Now returns the current time.
func (DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// Sink receives frames leaving the processor.
type Sink interface {
	OnFrame(frame *VideoFrame)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(frame *VideoFrame)

// OnFrame calls f.
func (f SinkFunc) OnFrame(frame *VideoFrame) {
	f(frame)
}

// ProcessorStats tracks frames seen by a Processor.
type ProcessorStats struct {
	FramesIn            uint64
	FramesHandled       uint64
	FramesPassedThrough uint64
	LastProcessing      time.Duration
}

// Processor sits between a capture source and a sink. Every captured frame
// is repacked to NV21 and given to the frame handler, then run through the
// effect chain if one is set. When either stage changes the frame the
// result goes to the sink, otherwise the original frame does.
type Processor struct {
	mu           sync.RWMutex
	handler      interfaces.FrameHandler
	effects      *EffectChain
	sink         Sink
	timeProvider TimeProvider
	stats        ProcessorStats

	// lastFailure is the geometry of the last frame that failed, used to
	// keep repeated failures out of the warning log.
	lastFailure string
}

// NewProcessor creates a processor around handler. A nil handler passes
// every frame through.
func NewProcessor(handler interfaces.FrameHandler) *Processor {
	logrus.WithFields(logrus.Fields{
		"function":    "NewProcessor",
		"has_handler": handler != nil,
	}).Info("Creating video processor")

	return &Processor{
		handler:      handler,
		timeProvider: DefaultTimeProvider{},
	}
}

// SetHandler replaces the frame handler.
func (p *Processor) SetHandler(handler interfaces.FrameHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = handler
}

// SetEffects sets the effect chain run after the handler. Nil or an empty
// chain disables effects.
func (p *Processor) SetEffects(chain *EffectChain) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.effects = chain
}

// SetSink sets where OnFrameCaptured delivers frames.
func (p *Processor) SetSink(sink Sink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink = sink
}

// SetTimeProvider sets the clock used for processing statistics. Passing
// nil restores the system clock.
func (p *Processor) SetTimeProvider(tp TimeProvider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if tp == nil {
		tp = DefaultTimeProvider{}
	}
	p.timeProvider = tp
}

// ProcessFrame runs the handler and the effect chain on frame. It returns
// the edited frame and true when either changed it, or frame itself and
// false otherwise. The input frame is never modified.
func (p *Processor) ProcessFrame(frame *VideoFrame) (*VideoFrame, bool, error) {
	if frame == nil {
		return nil, false, fmt.Errorf("input frame cannot be nil")
	}

	p.mu.RLock()
	handler := p.handler
	effects := p.effects
	tp := p.timeProvider
	p.mu.RUnlock()

	start := tp.Now()
	out, handled, err := p.process(handler, effects, frame)
	elapsed := tp.Now().Sub(start)

	p.mu.Lock()
	p.stats.FramesIn++
	if handled {
		p.stats.FramesHandled++
	} else {
		p.stats.FramesPassedThrough++
	}
	p.stats.LastProcessing = elapsed
	p.mu.Unlock()

	if err != nil {
		return frame, false, err
	}
	return out, handled, nil
}

func (p *Processor) process(handler interfaces.FrameHandler, effects *EffectChain, frame *VideoFrame) (*VideoFrame, bool, error) {
	out, handled := frame, false

	if handler != nil {
		buf, err := frame.ToNV21()
		if err != nil {
			return frame, false, fmt.Errorf("repack captured frame: %w", err)
		}

		width, height := int(frame.Width), int(frame.Height)
		if handler.HandleNV21(buf, width, height, frame.Rotation) {
			out, err = VideoFrameFromNV21(buf, frame.Width, frame.Height, frame.Rotation, frame.TimestampNs)
			if err != nil {
				return frame, false, fmt.Errorf("unpack handled frame: %w", err)
			}
			handled = true
		}
	}

	if effects.Len() == 0 {
		return out, handled, nil
	}
	out, err := effects.Apply(out)
	if err != nil {
		return frame, false, fmt.Errorf("apply effects: %w", err)
	}
	return out, true, nil
}

// OnFrameCaptured processes frame and delivers the result to the sink.
// Errors are logged and the original frame is delivered instead, so a
// failing handler never drops frames. The first failure for a frame
// geometry is logged at Warn, repeats at Debug.
func (p *Processor) OnFrameCaptured(frame *VideoFrame) {
	out, _, err := p.ProcessFrame(frame)
	if err != nil {
		p.logFailure(frame, err)
		out = frame
	}

	p.mu.RLock()
	sink := p.sink
	p.mu.RUnlock()

	if sink != nil && out != nil {
		sink.OnFrame(out)
	}
}

func (p *Processor) logFailure(frame *VideoFrame, err error) {
	geometry := "nil"
	if frame != nil {
		geometry = fmt.Sprintf("%dx%d", frame.Width, frame.Height)
	}

	p.mu.Lock()
	repeated := p.lastFailure == geometry
	p.lastFailure = geometry
	p.mu.Unlock()

	entry := logrus.WithFields(logrus.Fields{
		"function": "Processor.OnFrameCaptured",
		"geometry": geometry,
		"error":    err.Error(),
	})
	if repeated {
		entry.Debug("Frame processing failed, delivering original frame")
		return
	}
	entry.Warn("Frame processing failed, delivering original frame")
}

// GetStats returns a snapshot of the processing statistics.
func (p *Processor) GetStats() ProcessorStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats
}
