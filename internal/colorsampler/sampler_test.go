package colorsampler

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/orgball2608/story-engine/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}
	blue  = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	green = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

// quadrants returns a size x size image with red, blue, green and black quadrants
// (top-left, top-right, bottom-left, bottom-right).
func quadrants(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch {
			case x < half && y < half:
				img.SetRGBA(x, y, red)
			case x >= half && y < half:
				img.SetRGBA(x, y, blue)
			case x < half:
				img.SetRGBA(x, y, green)
			default:
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

func TestSampleStretchesToContainer(t *testing.T) {
	s := NewSurface(quadrants(40))
	// A tall container: the square image is stretched, not cropped.
	container := geometry.Rect{X: 10, Y: 20, Width: 200, Height: 400}

	tests := []struct {
		name string
		at   geometry.Point
		want string
	}{
		{"top left", geometry.Point{X: 30, Y: 40}, "#EF4444"},
		{"top right", geometry.Point{X: 190, Y: 60}, "#3B82F6"},
		{"bottom left", geometry.Point{X: 40, Y: 380}, "#22C55E"},
		{"bottom right", geometry.Point{X: 200, Y: 400}, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex, ok := Sample(s, container, tt.at)
			require.True(t, ok)
			assert.Equal(t, tt.want, hex)
		})
	}
}

func TestSampleClampsPointerToContainer(t *testing.T) {
	s := NewSurface(quadrants(8))
	container := geometry.Rect{Width: 100, Height: 100}

	hex, ok := Sample(s, container, geometry.Point{X: -50, Y: -50})
	require.True(t, ok)
	assert.Equal(t, "#EF4444", hex)
}

func TestSampleWithoutSurfaceIsNoop(t *testing.T) {
	_, ok := Sample(nil, geometry.Rect{Width: 10, Height: 10}, geometry.Point{})
	assert.False(t, ok)

	_, ok = Sample(NewSurface(quadrants(4)), geometry.Rect{}, geometry.Point{})
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, quadrants(4)))

	s, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), s.Bounds())

	_, err = Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestHexDropsAlpha(t *testing.T) {
	assert.Equal(t, "#FFFFFF", Hex(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}))
	assert.Equal(t, "#0A0B0C", Hex(color.NRGBA{R: 0x0A, G: 0x0B, B: 0x0C, A: 0xFF}))
}
