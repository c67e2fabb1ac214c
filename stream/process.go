package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/opd-ai/nv21kit/interfaces"
	"github.com/opd-ai/nv21kit/nv21"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Stats summarises a Process run.
type Stats struct {
	FramesRead    int
	FramesHandled int
	FramesWritten int
}

// Process reads every frame from r, runs handler on it and writes the
// result to sink in input order.
//
// Frames are handled in batches of up to workers frames in parallel, so
// handler must be safe for concurrent use. A frame the handler declines is
// written unchanged. Process stops at the first read or write error, or
// when ctx is cancelled, and returns the statistics gathered so far.
func Process(ctx context.Context, r *Reader, sink interfaces.FrameSink, workers int, handler interfaces.FrameHandler, rotation nv21.Rotation) (Stats, error) {
	if workers < 1 {
		workers = 1
	}

	logrus.WithFields(logrus.Fields{
		"function": "Process",
		"width":    r.Width(),
		"height":   r.Height(),
		"workers":  workers,
		"rotation": int(rotation),
	}).Info("Processing NV21 stream")

	var stats Stats
	batch := make([][]byte, 0, workers)
	eof := false

	for !eof {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		batch = batch[:0]
		for len(batch) < workers {
			buf, err := r.ReadFrame()
			if errors.Is(err, io.EOF) {
				eof = true
				break
			}
			if err != nil {
				return stats, err
			}
			batch = append(batch, buf)
		}
		stats.FramesRead += len(batch)

		handled, err := handleBatch(ctx, batch, r.Width(), r.Height(), workers, handler, rotation)
		stats.FramesHandled += handled
		if err != nil {
			return stats, err
		}

		for _, buf := range batch {
			if err := sink.WriteFrame(buf, r.Width(), r.Height()); err != nil {
				return stats, fmt.Errorf("deliver frame %d: %w", stats.FramesWritten, err)
			}
			stats.FramesWritten++
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":       "Process",
		"frames_read":    stats.FramesRead,
		"frames_handled": stats.FramesHandled,
		"frames_written": stats.FramesWritten,
	}).Info("NV21 stream processed")

	return stats, nil
}

// handleBatch runs handler over every buffer of batch in parallel and
// returns how many frames it changed.
func handleBatch(ctx context.Context, batch [][]byte, width, height, workers int, handler interfaces.FrameHandler, rotation nv21.Rotation) (int, error) {
	if handler == nil || len(batch) == 0 {
		return 0, nil
	}

	var handled atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, buf := range batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if handler.HandleNV21(buf, width, height, rotation) {
				handled.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	return int(handled.Load()), err
}
