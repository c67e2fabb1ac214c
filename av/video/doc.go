// Package video connects NV21 frame editing to a capture pipeline.
//
// Capture sources deliver I420 VideoFrames tagged with the clockwise
// rotation needed to show them upright. A Processor repacks each frame to
// NV21, hands it to an interfaces.FrameHandler and forwards either the
// edited frame or, when the handler declines, the original one:
//
//	Capture → VideoFrame → NV21 → FrameHandler → VideoFrame → Sink
//
// # Overlays
//
// OverlayProcessor is the main handler. Its placement is given in display
// coordinates, so a logo at (16, 16) stays in the viewer's top-left corner
// whatever the sensor orientation:
//
//	logo, err := video.NewOverlayProcessor(img, 64, 32, 16, 16, true)
//	if err != nil {
//	    return err
//	}
//	proc := video.NewProcessor(video.NewHandlerChain(logo))
//	proc.SetSink(video.SinkFunc(func(f *video.VideoFrame) { send(f) }))
//
// With transparency enabled, overlay luma bytes equal to 0x10 and chroma
// bytes equal to 0x80 leave the frame underneath visible.
//
// # Effects
//
// Effects work on whole VideoFrames and always return new frames: overlay
// in buffer coordinates, crop and rotate. They compose with EffectChain,
// which a Processor runs after its frame handler:
//
//	chain := video.NewEffectChain(video.NewCropEffect(nv21.Region{Width: 320, Height: 240}))
//	proc.SetEffects(chain)
//
// # Thread Safety
//
// Processor, HandlerChain, EffectChain and OverlayProcessor are safe for
// concurrent use.
package video
