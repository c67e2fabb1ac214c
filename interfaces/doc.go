// Package interfaces defines the data-plane abstractions shared by the
// frame pipeline packages.
//
// The core nv21 package is a set of pure functions. Everything that sits
// around it (capture callbacks, the video processor, the raw stream tool)
// talks to frame-editing stages through the small interfaces declared here,
// so stages can be chained, swapped for simulations in tests, or built from
// configuration by the factory package.
//
// # Core Interfaces
//
// [FrameHandler] edits one NV21 frame in place and reports whether the
// edited buffer should replace the original frame:
//
//	type Watermark struct{ logo []byte }
//
//	func (w *Watermark) HandleNV21(buf []byte, width, height int, rotation nv21.Rotation) bool {
//	    return nv21.Overlay(buf, width, height, 16, 16, w.logo, 64, 32, true) == nil
//	}
//
// A handler that returns false must leave buf untouched; callers rely on
// this to fall back to the unmodified frame. Every nv21 operation already
// guarantees it.
//
// [FrameHandlerFunc] adapts an ordinary function:
//
//	handler := interfaces.FrameHandlerFunc(func(buf []byte, w, h int, r nv21.Rotation) bool {
//	    return true
//	})
//
// [FrameSink] is the downstream side: a renderer, an encoder, or a file.
//
// # Thread Safety
//
// Implementations decide their own guarantees. Handlers built by this
// module (video.OverlayProcessor, video.HandlerChain) are safe for
// concurrent use; each call must still own the buffer it passes in.
package interfaces
