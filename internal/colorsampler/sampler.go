// Package colorsampler implements the eyedropper: it reads the color of the
// displayed still image under a pointer.
//
// The still is redrawn stretched to the container's displayed size and the
// pixel is read from that buffer. This ignores the on-screen object-fit/crop
// transform, so near the cropped edges the picked color can be off.
package colorsampler

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/orgball2608/story-engine/internal/geometry"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Surface is a decoded still image the sampler can draw from.
type Surface struct {
	img image.Image
}

func NewSurface(img image.Image) *Surface {
	if img == nil {
		return nil
	}
	return &Surface{img: img}
}

// Decode builds a surface from encoded png, jpeg, gif or webp bytes.
func Decode(data []byte) (*Surface, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode still image: %w", err)
	}
	return &Surface{img: img}, nil
}

func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Sample returns the #RRGGBB color under pointer, where pointer and container
// share the same coordinate space. ok is false when there is nothing to sample.
func Sample(s *Surface, container geometry.Rect, pointer geometry.Point) (hex string, ok bool) {
	if s == nil || s.img == nil {
		return "", false
	}

	w := int(math.Round(container.Width))
	h := int(math.Round(container.Height))
	if w <= 0 || h <= 0 {
		return "", false
	}

	buf := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(buf, buf.Bounds(), s.img, s.img.Bounds(), xdraw.Src, nil)

	local := container.Local(pointer)
	x := clampInt(int(math.Floor(local.X)), 0, w-1)
	y := clampInt(int(math.Floor(local.Y)), 0, h-1)

	return Hex(buf.RGBAAt(x, y)), true
}

// Hex formats the RGB channels as an uppercase #RRGGBB string; alpha is dropped.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
