package testing

import (
	"errors"
	"sync"
	"testing"

	"github.com/opd-ai/nv21kit/interfaces"
	"github.com/opd-ai/nv21kit/nv21"
)

var _ interfaces.FrameSink = (*SimulatedFrameSink)(nil)

func TestNewSimulatedFrameSink(t *testing.T) {
	sink := NewSimulatedFrameSink()

	if sink == nil {
		t.Fatal("expected non-nil SimulatedFrameSink")
	}
	if sink.Count() != 0 {
		t.Error("new sink should have an empty log")
	}
}

func TestWriteFrameRecordsCopy(t *testing.T) {
	sink := NewSimulatedFrameSink()
	buf := make([]byte, nv21.FrameSize(4, 2))
	buf[0] = 7

	if err := sink.WriteFrame(buf, 4, 2); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	buf[0] = 9

	frames := sink.Frames()
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if frames[0].Data[0] != 7 {
		t.Error("sink must copy frame data")
	}
	if frames[0].Width != 4 || frames[0].Height != 2 {
		t.Errorf("unexpected dimensions %dx%d", frames[0].Width, frames[0].Height)
	}
}

func TestWriteFrameRejectsMalformed(t *testing.T) {
	sink := NewSimulatedFrameSink()

	err := sink.WriteFrame(make([]byte, 5), 4, 2)
	if !errors.Is(err, nv21.ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	if sink.Count() != 0 {
		t.Error("malformed frame should not be recorded")
	}
}

func TestFailAfter(t *testing.T) {
	sink := NewSimulatedFrameSink()
	boom := errors.New("boom")
	sink.FailAfter(2, boom)

	buf := make([]byte, nv21.FrameSize(2, 2))
	for i := 0; i < 2; i++ {
		if err := sink.WriteFrame(buf, 2, 2); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}
	if err := sink.WriteFrame(buf, 2, 2); !errors.Is(err, boom) {
		t.Errorf("expected injected error, got %v", err)
	}
	if sink.Count() != 2 || sink.Rejected() != 1 {
		t.Errorf("expected 2 accepted and 1 rejected, got %d and %d", sink.Count(), sink.Rejected())
	}

	sink.Reset()
	if err := sink.WriteFrame(buf, 2, 2); err != nil {
		t.Errorf("write after Reset failed: %v", err)
	}
}

func TestSequenceUnderConcurrency(t *testing.T) {
	sink := NewSimulatedFrameSink()
	buf := make([]byte, nv21.FrameSize(2, 2))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = sink.WriteFrame(buf, 2, 2)
			}
		}()
	}
	wg.Wait()

	frames := sink.Frames()
	if len(frames) != 100 {
		t.Fatalf("expected 100 frames, got %d", len(frames))
	}
	for i, rec := range frames {
		if rec.Sequence != i {
			t.Errorf("frame %d has sequence %d", i, rec.Sequence)
		}
	}
}
