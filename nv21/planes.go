package nv21

// planeCopy describes one rectangular copy between two NV21 buffers.
// Coordinates are luma pixels and must be even; both buffers must already
// have passed ValidateBufferSize and the rectangle must fit both frames.
type planeCopy struct {
	src       []byte
	srcWidth  int
	srcHeight int
	srcX      int
	srcY      int

	dst       []byte
	dstWidth  int
	dstHeight int
	dstX      int
	dstY      int

	width  int
	height int
}

// run copies the luma rectangle and then the matching chroma rectangle.
func (pc planeCopy) run() {
	pc.copyLuma()
	pc.copyChroma()
}

// copyLuma copies height rows of width bytes inside the luma planes.
func (pc planeCopy) copyLuma() {
	copyRows(pc.dst, pc.dstWidth, pc.dstX, pc.dstY,
		pc.src, pc.srcWidth, pc.srcX, pc.srcY,
		pc.width, pc.height)
}

// copyChroma copies height/2 rows of width bytes inside the chroma planes.
// Chroma rows share the luma stride and start at row index frameHeight of
// the flattened buffer; a V,U pair spans two luma columns, so the horizontal
// byte offset equals the luma x coordinate.
func (pc planeCopy) copyChroma() {
	copyRows(pc.dst, pc.dstWidth, pc.dstX, pc.dstHeight+pc.dstY/2,
		pc.src, pc.srcWidth, pc.srcX, pc.srcHeight+pc.srcY/2,
		pc.width, pc.height/2)
}

func copyRows(dst []byte, dstStride, dstX, dstRow int, src []byte, srcStride, srcX, srcRow, width, rows int) {
	for i := 0; i < rows; i++ {
		so := (srcRow+i)*srcStride + srcX
		do := (dstRow+i)*dstStride + dstX
		copy(dst[do:do+width], src[so:so+width])
	}
}
