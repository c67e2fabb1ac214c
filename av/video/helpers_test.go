package video

import (
	"testing"

	"github.com/opd-ai/nv21kit/nv21"
	"github.com/stretchr/testify/require"
)

// createTestFrame builds an I420 frame whose samples encode their position.
func createTestFrame(width, height uint16) *VideoFrame {
	frame := NewVideoFrame(width, height)
	for i := range frame.Y {
		frame.Y[i] = byte(i % 251)
	}
	for i := range frame.U {
		frame.U[i] = byte(0x20 + i%97)
		frame.V[i] = byte(0xA0 + i%89)
	}
	return frame
}

// solidNV21 builds an NV21 frame with constant luma and chroma.
func solidNV21(width, height int, y, vu byte) []byte {
	buf := make([]byte, nv21.FrameSize(width, height))
	for i := range buf {
		if i < width*height {
			buf[i] = y
		} else {
			buf[i] = vu
		}
	}
	return buf
}

// logoNV21 builds a 4x2 overlay with distinct luma bytes and two distinct
// chroma pairs so orientation mistakes show up.
func logoNV21() []byte {
	return []byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
		0xA0, 0xA1, 0xB0, 0xB1,
	}
}

func lumaAt(buf []byte, width, x, y int) byte {
	return buf[y*width+x]
}

func chromaAt(buf []byte, width, height, x, y int) (v, u byte) {
	i := width*height + (y/2)*width + (x &^ 1)
	return buf[i], buf[i+1]
}

// toDisplay rotates a buffer-orientation frame upright.
func toDisplay(t *testing.T, buf []byte, width, height int, rotation nv21.Rotation) nv21.Frame {
	t.Helper()
	frame, err := nv21.Rotate(buf, width, height, rotation)
	require.NoError(t, err)
	return frame
}
