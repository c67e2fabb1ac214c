package testing

import (
	"fmt"
	"sync"

	"github.com/opd-ai/nv21kit/nv21"
	"github.com/sirupsen/logrus"
)

// FrameRecord is one frame received by a SimulatedFrameSink.
type FrameRecord struct {
	Sequence int
	Width    int
	Height   int
	Data     []byte
}

// SimulatedFrameSink records frames in memory for test verification.
type SimulatedFrameSink struct {
	mu        sync.RWMutex
	frames    []FrameRecord
	failAfter int
	failErr   error
	rejected  int
}

// NewSimulatedFrameSink creates an empty sink that accepts every frame.
func NewSimulatedFrameSink() *SimulatedFrameSink {
	logrus.WithFields(logrus.Fields{
		"function": "NewSimulatedFrameSink",
	}).Debug("Creating simulated frame sink for testing")

	return &SimulatedFrameSink{failAfter: -1}
}

// WriteFrame implements interfaces.FrameSink. The frame is validated and
// copied into the log.
func (s *SimulatedFrameSink) WriteFrame(buf []byte, width, height int) error {
	if err := nv21.ValidateBufferSize(buf, width, height); err != nil {
		return fmt.Errorf("simulated sink: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failAfter >= 0 && len(s.frames) >= s.failAfter {
		s.rejected++
		logrus.WithFields(logrus.Fields{
			"function": "SimulatedFrameSink.WriteFrame",
			"accepted": len(s.frames),
			"rejected": s.rejected,
			"error":    s.failErr.Error(),
		}).Debug("Simulated sink rejecting frame")
		return s.failErr
	}

	s.frames = append(s.frames, FrameRecord{
		Sequence: len(s.frames),
		Width:    width,
		Height:   height,
		Data:     append([]byte(nil), buf...),
	})
	return nil
}

// FailAfter makes every write fail with err once n frames have been
// recorded. A negative n disables failure injection.
func (s *SimulatedFrameSink) FailAfter(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = fmt.Errorf("simulated sink failure")
	}
	s.failAfter = n
	s.failErr = err
}

// Frames returns a copy of the frame log.
func (s *SimulatedFrameSink) Frames() []FrameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]FrameRecord, len(s.frames))
	copy(out, s.frames)
	return out
}

// Count returns the number of accepted frames.
func (s *SimulatedFrameSink) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

// Rejected returns the number of writes refused by failure injection.
func (s *SimulatedFrameSink) Rejected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rejected
}

// Reset clears the log and disables failure injection.
func (s *SimulatedFrameSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = nil
	s.rejected = 0
	s.failAfter = -1
	s.failErr = nil
}
