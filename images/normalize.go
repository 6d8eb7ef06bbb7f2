package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SquareMode selects how a non-square image is made square.
type SquareMode int

const (
	// ModeNone leaves the image untouched. A non-square source will then
	// be stretched non-uniformly by the renderer.
	ModeNone SquareMode = iota
	// ModePad centers the image on a transparent canvas of side max(w, h).
	ModePad
	// ModeCrop cuts a centered square window of side min(w, h).
	ModeCrop
)

// Square normalizes img to a square according to mode. An already-square
// image is returned unchanged regardless of mode. Centering offsets use
// floor division, so an odd difference leaves the extra pixel on the
// bottom or right edge.
func Square(img image.Image, mode SquareMode) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == h || mode == ModeNone {
		return img
	}

	switch mode {
	case ModePad:
		side := w
		if h > side {
			side = h
		}
		canvas := imaging.New(side, side, color.NRGBA{})
		if w > h {
			return imaging.Paste(canvas, img, image.Pt(0, (side-h)/2))
		}
		return imaging.Paste(canvas, img, image.Pt((side-w)/2, 0))

	case ModeCrop:
		side := w
		if h < side {
			side = h
		}
		if w == side {
			off := (h - w) / 2
			return imaging.Crop(img, image.Rect(0, off, side, off+side))
		}
		off := (w - h) / 2
		return imaging.Crop(img, image.Rect(off, 0, off+side, side))
	}

	return img
}
