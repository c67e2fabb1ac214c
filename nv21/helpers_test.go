package nv21

// solidFrame builds a width x height frame with every luma byte set to y
// and every chroma byte set to vu.
func solidFrame(width, height int, y, vu byte) []byte {
	buf := make([]byte, FrameSize(width, height))
	split := width * height
	for i := range buf {
		if i < split {
			buf[i] = y
		} else {
			buf[i] = vu
		}
	}
	return buf
}

// patternFrame builds a frame where every byte encodes its own position so
// misplaced copies are visible: luma is x+16*y, V is 0x80|x/2+8*y/2, U is
// V with the high nibble cleared.
func patternFrame(width, height int) []byte {
	buf := make([]byte, FrameSize(width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf[y*width+x] = byte(x + 16*y)
		}
	}
	vu := buf[width*height:]
	for y := 0; y < height/2; y++ {
		for x := 0; x < width/2; x++ {
			v := byte(0x80 | (x + 8*y))
			vu[y*width+2*x] = v
			vu[y*width+2*x+1] = v & 0x0f
		}
	}
	return buf
}

// lumaAt returns the luma byte of pixel (x, y).
func lumaAt(buf []byte, width, x, y int) byte {
	return buf[y*width+x]
}

// chromaAt returns the V and U bytes covering pixel (x, y).
func chromaAt(buf []byte, width, height, x, y int) (v, u byte) {
	i := width*height + (y/2)*width + (x &^ 1)
	return buf[i], buf[i+1]
}
