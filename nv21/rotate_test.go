package nv21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRotation(t *testing.T) {
	tests := []struct {
		degrees int
		want    Rotation
		wantErr bool
	}{
		{0, Rotate0, false},
		{90, Rotate90, false},
		{180, Rotate180, false},
		{270, Rotate270, false},
		{360, Rotate0, false},
		{-90, Rotate270, false},
		{450, Rotate90, false},
		{45, Rotate0, true},
		{1, Rotate0, true},
	}

	for _, tt := range tests {
		got, err := ParseRotation(tt.degrees)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedRotation, "degrees %d", tt.degrees)
			continue
		}
		require.NoError(t, err, "degrees %d", tt.degrees)
		assert.Equal(t, tt.want, got, "degrees %d", tt.degrees)
	}
}

func TestRotationInverse(t *testing.T) {
	assert.Equal(t, Rotate0, Rotate0.Inverse())
	assert.Equal(t, Rotate270, Rotate90.Inverse())
	assert.Equal(t, Rotate180, Rotate180.Inverse())
	assert.Equal(t, Rotate90, Rotate270.Inverse())
}

func TestRotate_Rotate90Layout(t *testing.T) {
	// 4x2 frame, luma:
	//   0 1 2 3
	//   4 5 6 7
	// chroma (one row, two pairs): V0 U0 V1 U1
	src := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		0xA0, 0xB0, 0xA1, 0xB1,
	}

	frame, err := Rotate(src, 4, 2, Rotate90)
	require.NoError(t, err)

	assert.Equal(t, 2, frame.Width)
	assert.Equal(t, 4, frame.Height)
	assert.Equal(t, []byte{
		4, 0,
		5, 1,
		6, 2,
		7, 3,
		0xA0, 0xB0,
		0xA1, 0xB1,
	}, frame.Data)
}

func TestRotate_Rotate180Layout(t *testing.T) {
	src := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		0xA0, 0xB0, 0xA1, 0xB1,
	}

	frame, err := Rotate(src, 4, 2, Rotate180)
	require.NoError(t, err)

	assert.Equal(t, 4, frame.Width)
	assert.Equal(t, 2, frame.Height)
	assert.Equal(t, []byte{
		7, 6, 5, 4,
		3, 2, 1, 0,
		0xA1, 0xB1, 0xA0, 0xB0,
	}, frame.Data)
}

func TestRotate_Rotate270Layout(t *testing.T) {
	src := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		0xA0, 0xB0, 0xA1, 0xB1,
	}

	frame, err := Rotate(src, 4, 2, Rotate270)
	require.NoError(t, err)

	assert.Equal(t, 2, frame.Width)
	assert.Equal(t, 4, frame.Height)
	assert.Equal(t, []byte{
		3, 7,
		2, 6,
		1, 5,
		0, 4,
		0xA1, 0xB1,
		0xA0, 0xB0,
	}, frame.Data)
}

func TestRotate_RoundTrips(t *testing.T) {
	src := patternFrame(8, 6)

	t.Run("four quarter turns", func(t *testing.T) {
		data, w, h := src, 8, 6
		for i := 0; i < 4; i++ {
			frame, err := Rotate(data, w, h, Rotate90)
			require.NoError(t, err)
			data, w, h = frame.Data, frame.Width, frame.Height
		}
		assert.Equal(t, 8, w)
		assert.Equal(t, 6, h)
		assert.Equal(t, src, data)
	})

	t.Run("half turn twice", func(t *testing.T) {
		once, err := Rotate(src, 8, 6, Rotate180)
		require.NoError(t, err)
		twice, err := Rotate(once.Data, once.Width, once.Height, Rotate180)
		require.NoError(t, err)
		assert.Equal(t, src, twice.Data)
	})

	t.Run("rotation then inverse", func(t *testing.T) {
		for _, r := range []Rotation{Rotate90, Rotate180, Rotate270} {
			turned, err := Rotate(src, 8, 6, r)
			require.NoError(t, err)
			back, err := Rotate(turned.Data, turned.Width, turned.Height, r.Inverse())
			require.NoError(t, err)
			assert.Equal(t, src, back.Data, "rotation %s", r)
		}
	})
}

func TestRotate_ZeroIsBorrowed(t *testing.T) {
	src := patternFrame(4, 4)

	frame, err := Rotate(src, 4, 4, Rotate0)
	require.NoError(t, err)
	assert.True(t, frame.Borrowed())
	assert.Same(t, &src[0], &frame.Data[0])
}

func TestRotate_Rejections(t *testing.T) {
	_, err := Rotate(patternFrame(4, 4), 4, 4, Rotation(45))
	assert.ErrorIs(t, err, ErrUnsupportedRotation)

	_, err = Rotate(make([]byte, 10), 4, 4, Rotate90)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = Rotate(make([]byte, FrameSize(3, 4)), 3, 4, Rotate90)
	assert.ErrorIs(t, err, ErrOddDimensions)
}
