package nv21

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrop_FullFrameIsBorrowed(t *testing.T) {
	src := patternFrame(16, 12)

	frame, err := Crop(src, 16, 12, Full(16, 12))
	require.NoError(t, err)

	assert.True(t, frame.Borrowed())
	assert.Equal(t, src, frame.Data)
	assert.Same(t, &src[0], &frame.Data[0], "full crop must alias the source")
	assert.Equal(t, 16, frame.Width)
	assert.Equal(t, 12, frame.Height)
}

func TestCrop_OwnedCopyDoesNotAlias(t *testing.T) {
	src := patternFrame(8, 8)

	frame, err := Crop(src, 8, 8, Full(8, 8))
	require.NoError(t, err)

	owned := frame.Owned()
	assert.False(t, owned.Borrowed())
	assert.Equal(t, src, owned.Data)

	owned.Data[0] = 0xEE
	assert.NotEqual(t, byte(0xEE), src[0])
}

func TestCrop_SubRegion(t *testing.T) {
	const width, height = 16, 12
	src := patternFrame(width, height)

	tests := []struct {
		name   string
		region Region
		want   Region
	}{
		{"top left", Region{0, 0, 4, 4}, Region{0, 0, 4, 4}},
		{"centre", Region{4, 2, 8, 6}, Region{4, 2, 8, 6}},
		{"bottom right", Region{10, 8, 6, 4}, Region{10, 8, 6, 4}},
		{"odd rounded down", Region{5, 3, 7, 5}, Region{4, 2, 6, 4}},
		{"full width strip", Region{0, 4, 16, 2}, Region{0, 4, 16, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Crop(src, width, height, tt.region)
			require.NoError(t, err)

			assert.False(t, frame.Borrowed())
			assert.Equal(t, tt.want.Width, frame.Width)
			assert.Equal(t, tt.want.Height, frame.Height)
			require.Len(t, frame.Data, FrameSize(tt.want.Width, tt.want.Height))

			for y := 0; y < frame.Height; y++ {
				for x := 0; x < frame.Width; x++ {
					sx, sy := tt.want.Left+x, tt.want.Top+y
					assert.Equal(t, lumaAt(src, width, sx, sy), lumaAt(frame.Data, frame.Width, x, y),
						"luma at (%d,%d)", x, y)

					wantV, wantU := chromaAt(src, width, height, sx, sy)
					gotV, gotU := chromaAt(frame.Data, frame.Width, frame.Height, x, y)
					assert.Equal(t, wantV, gotV, "V at (%d,%d)", x, y)
					assert.Equal(t, wantU, gotU, "U at (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestCrop_SizeInvariant(t *testing.T) {
	src := patternFrame(20, 20)

	for left := 0; left < 6; left++ {
		for width := 0; width <= 12; width += 3 {
			r := Region{Left: left, Top: left, Width: width, Height: width + 1}
			frame, err := Crop(src, 20, 20, r)
			require.NoError(t, err, "region %s", r)

			even := r.Even()
			assert.Len(t, frame.Data, FrameSize(even.Width, even.Height), "region %s", r)
		}
	}
}

func TestCrop_EmptyRegion(t *testing.T) {
	src := patternFrame(8, 8)

	frame, err := Crop(src, 8, 8, Region{Left: 2, Top: 2, Width: 1, Height: 4})
	require.NoError(t, err)

	assert.Empty(t, frame.Data)
	assert.False(t, frame.Borrowed())
}

func TestCrop_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		width   int
		height  int
		region  Region
		wantErr error
	}{
		{"region exceeds source", FrameSize(50, 50), 50, 50, Region{10, 10, 100, 100}, ErrOutOfBounds},
		{"too wide", FrameSize(50, 50), 50, 50, Region{42, 0, 10, 10}, ErrOutOfBounds},
		{"too tall", FrameSize(50, 50), 50, 50, Region{0, 42, 10, 10}, ErrOutOfBounds},
		{"negative top", FrameSize(50, 50), 50, 50, Region{0, -2, 10, 10}, ErrOutOfBounds},
		{"left near max int", FrameSize(10, 10), 10, 10, Region{math.MaxInt - 1, 0, 4, 4}, ErrOutOfBounds},
		{"top near max int", FrameSize(10, 10), 10, 10, Region{0, math.MaxInt - 1, 4, 4}, ErrOutOfBounds},
		{"width near max int", FrameSize(10, 10), 10, 10, Region{2, 0, math.MaxInt - 1, 4}, ErrOutOfBounds},
		{"short buffer", FrameSize(50, 50) - 1, 50, 50, Region{0, 0, 10, 10}, ErrSizeMismatch},
		{"long buffer", FrameSize(50, 50) + 1, 50, 50, Region{0, 0, 10, 10}, ErrSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				frame Frame
				err   error
			)
			assert.NotPanics(t, func() {
				frame, err = Crop(make([]byte, tt.size), tt.width, tt.height, tt.region)
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, frame.Data)
		})
	}
}

func TestCrop_DoesNotModifySource(t *testing.T) {
	src := patternFrame(12, 12)
	original := append([]byte(nil), src...)

	frame, err := Crop(src, 12, 12, Region{2, 2, 6, 6})
	require.NoError(t, err)
	for i := range frame.Data {
		frame.Data[i] = 0
	}

	assert.Equal(t, original, src)
}
