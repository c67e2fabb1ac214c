// Package testing provides in-memory frame sinks for deterministic testing
// of NV21 pipelines.
//
// # Overview
//
// SimulatedFrameSink implements interfaces.FrameSink without touching files
// or devices. Every delivered frame is copied into a log so tests can check
// what a pipeline produced, and in which order:
//
//	sink := testing.NewSimulatedFrameSink()
//	err := stream.Process(ctx, reader, sink, 4, handler)
//
//	for _, rec := range sink.Frames() {
//	    fmt.Println(rec.Sequence, rec.Width, rec.Height, len(rec.Data))
//	}
//
// # Failure Injection
//
// FailAfter makes the sink accept a fixed number of frames and then return
// an error, which exercises the error paths of producers:
//
//	sink.FailAfter(2, io.ErrShortWrite)
//
// # Thread Safety
//
// SimulatedFrameSink is safe for concurrent use.
package testing
