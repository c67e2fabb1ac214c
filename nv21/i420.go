package nv21

import (
	"fmt"
	"math"

	"github.com/opd-ai/nv21kit/limits"
)

// FromI420 packs planar I420 data into a new NV21 buffer.
//
// y holds height rows of strideY bytes, u and v hold height/2 rows of
// strideU and strideV bytes. Only the visible width (width for luma,
// width/2 for chroma) of each row is read. Sample values are copied
// unchanged; this is a layout change, not a color conversion.
func FromI420(y, u, v []byte, strideY, strideU, strideV, width, height int) ([]byte, error) {
	if err := limits.ValidateFrameDimensions(width, height); err != nil {
		return nil, err
	}
	chromaWidth, chromaHeight := width/2, height/2
	if strideY < width || strideU < chromaWidth || strideV < chromaWidth {
		return nil, fmt.Errorf("%w: strides %d/%d/%d too small for width %d",
			ErrSizeMismatch, strideY, strideU, strideV, width)
	}
	if err := checkPlane("Y", y, strideY, width, height); err != nil {
		return nil, err
	}
	if err := checkPlane("U", u, strideU, chromaWidth, chromaHeight); err != nil {
		return nil, err
	}
	if err := checkPlane("V", v, strideV, chromaWidth, chromaHeight); err != nil {
		return nil, err
	}

	out := make([]byte, FrameSize(width, height))
	copyRows(out, width, 0, 0, y, strideY, 0, 0, width, height)

	vu := out[width*height:]
	for row := 0; row < chromaHeight; row++ {
		dst := vu[row*width : (row+1)*width]
		uRow := u[row*strideU : row*strideU+chromaWidth]
		vRow := v[row*strideV : row*strideV+chromaWidth]
		for i := 0; i < chromaWidth; i++ {
			dst[2*i] = vRow[i]
			dst[2*i+1] = uRow[i]
		}
	}
	return out, nil
}

// ToI420 splits an NV21 buffer into tightly packed Y, U and V planes.
func ToI420(buf []byte, width, height int) (y, u, v []byte, err error) {
	if err := limits.ValidateFrameDimensions(width, height); err != nil {
		return nil, nil, nil, err
	}
	if err := ValidateBufferSize(buf, width, height); err != nil {
		return nil, nil, nil, err
	}

	lumaSize := width * height
	chromaSize := lumaSize / 4
	y = append([]byte(nil), buf[:lumaSize]...)
	u = make([]byte, chromaSize)
	v = make([]byte, chromaSize)

	vu := buf[lumaSize:]
	for i := 0; i < chromaSize; i++ {
		v[i] = vu[2*i]
		u[i] = vu[2*i+1]
	}
	return y, u, v, nil
}

// checkPlane verifies that a strided plane holds rows x width bytes. The
// last row only needs its visible width.
func checkPlane(name string, plane []byte, stride, width, rows int) error {
	if rows > 1 && stride > (math.MaxInt-width)/(rows-1) {
		return fmt.Errorf("%w: %s stride %d too large for %d rows", ErrSizeMismatch, name, stride, rows)
	}
	need := (rows-1)*stride + width
	if len(plane) < need {
		return fmt.Errorf("%w: %s plane has %d bytes, need %d", ErrSizeMismatch, name, len(plane), need)
	}
	return nil
}
