// Package stream moves raw NV21 frames between byte streams and frame
// handlers.
//
// A raw NV21 stream is a plain concatenation of frames of one fixed size,
// as written by capture tools and read by players such as ffplay with
// -pix_fmt nv21. Reader splits such a stream into frames, Writer appends
// frames to one, and Process runs an interfaces.FrameHandler over every
// frame on a bounded worker pool while keeping output in input order:
//
//	r, err := stream.NewReader(in, 1280, 720)
//	if err != nil {
//	    return err
//	}
//	w, err := stream.NewWriter(out, 1280, 720)
//	if err != nil {
//	    return err
//	}
//	stats, err := stream.Process(ctx, r, w, runtime.NumCPU(), handler, nv21.Rotate0)
package stream
