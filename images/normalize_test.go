package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient builds a w×h opaque image with per-pixel distinct colors so
// that pad/crop offsets can be verified exactly.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	return img
}

func TestSquareAlreadySquare(t *testing.T) {
	src := gradient(8, 8)
	for _, mode := range []SquareMode{ModeNone, ModePad, ModeCrop} {
		got := Square(src, mode)
		assert.Same(t, image.Image(src), got, "square input must pass through untouched")
	}
}

func TestSquareNoneKeepsNonSquare(t *testing.T) {
	src := gradient(10, 4)
	got := Square(src, ModeNone)
	assert.Same(t, image.Image(src), got)
}

func TestSquarePadWide(t *testing.T) {
	src := gradient(10, 4)
	got := Square(src, ModePad)

	b := got.Bounds()
	require.Equal(t, 10, b.Dx())
	require.Equal(t, 10, b.Dy())

	out, ok := got.(*image.NRGBA)
	require.True(t, ok)

	// Original pixels land at y offset floor((10-4)/2) = 3.
	for _, p := range []image.Point{{0, 0}, {9, 0}, {5, 2}, {0, 3}, {9, 3}} {
		assert.Equal(t, src.NRGBAAt(p.X, p.Y), out.NRGBAAt(p.X, p.Y+3), "pixel %v", p)
	}

	// Everything outside the pasted band is fully transparent.
	for _, p := range []image.Point{{0, 0}, {9, 2}, {0, 7}, {9, 9}, {5, 8}} {
		assert.Equal(t, uint8(0), out.NRGBAAt(p.X, p.Y).A, "pixel %v should be transparent", p)
	}
}

func TestSquarePadTall(t *testing.T) {
	src := gradient(4, 10)
	got := Square(src, ModePad)

	b := got.Bounds()
	require.Equal(t, 10, b.Dx())
	require.Equal(t, 10, b.Dy())

	out, ok := got.(*image.NRGBA)
	require.True(t, ok)

	// x offset floor((10-4)/2) = 3.
	assert.Equal(t, src.NRGBAAt(0, 0), out.NRGBAAt(3, 0))
	assert.Equal(t, src.NRGBAAt(3, 9), out.NRGBAAt(6, 9))
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(9, 9).A)
}

func TestSquarePadOddDifference(t *testing.T) {
	// 5×2: difference 3, floor division puts the image at offset 1, leaving
	// the extra row at the bottom.
	src := gradient(5, 2)
	got := Square(src, ModePad)

	out, ok := got.(*image.NRGBA)
	require.True(t, ok)
	require.Equal(t, 5, out.Bounds().Dx())
	require.Equal(t, 5, out.Bounds().Dy())

	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, src.NRGBAAt(0, 0), out.NRGBAAt(0, 1))
	assert.Equal(t, src.NRGBAAt(4, 1), out.NRGBAAt(4, 2))
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 3).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(4, 4).A)
}

func TestSquareCropWide(t *testing.T) {
	src := gradient(10, 4)
	got := Square(src, ModeCrop)

	b := got.Bounds()
	require.Equal(t, 4, b.Dx())
	require.Equal(t, 4, b.Dy())

	out, ok := got.(*image.NRGBA)
	require.True(t, ok)

	// Centered window starts at x = floor((10-4)/2) = 3.
	for _, p := range []image.Point{{0, 0}, {3, 0}, {0, 3}, {3, 3}, {2, 1}} {
		assert.Equal(t, src.NRGBAAt(p.X+3, p.Y), out.NRGBAAt(p.X, p.Y), "pixel %v", p)
	}
}

func TestSquareCropTall(t *testing.T) {
	src := gradient(4, 10)
	got := Square(src, ModeCrop)

	b := got.Bounds()
	require.Equal(t, 4, b.Dx())
	require.Equal(t, 4, b.Dy())

	out, ok := got.(*image.NRGBA)
	require.True(t, ok)

	assert.Equal(t, src.NRGBAAt(0, 3), out.NRGBAAt(0, 0))
	assert.Equal(t, src.NRGBAAt(3, 6), out.NRGBAAt(3, 3))
}

func TestSquarePadThenCropIsNoop(t *testing.T) {
	// Pad takes precedence when both are requested: the padded image is
	// already square, so the crop must pass it through unchanged.
	src := gradient(10, 4)
	padded := Square(src, ModePad)
	cropped := Square(padded, ModeCrop)
	assert.Same(t, padded, cropped)
}
