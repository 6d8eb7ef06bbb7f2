package iconset

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/img2icns/img2icns/images"
)

// Render resizes img to every applicable catalog rendition and writes the
// PNGs into dir. It returns the renditions written, in catalog order.
//
// Renditions larger than the source are skipped so that a small source is
// not silently blown up into blurred large icons: an entry is rendered
// only while the source width still exceeds the base size of the last
// rendered entry. The bookkeeping uses the base size, not the scaled
// size, so the @2x sibling of an accepted base is rendered whenever the
// source is wider than that base. allSizes overrides the skip and renders
// the full catalog.
func Render(img image.Image, method images.Method, allSizes bool, dir string) ([]Rendition, error) {
	// Clone to NRGBA so an alpha channel is guaranteed present.
	src := imaging.Clone(img)
	width := src.Bounds().Dx()

	var written []Rendition
	lastBase := 0
	for _, r := range Catalog {
		if width <= lastBase && !allSizes {
			continue
		}
		lastBase = r.Base

		px := uint(r.Pixels())
		resized := resize.Resize(px, px, src, method.Filter())
		if err := imaging.Save(resized, filepath.Join(dir, r.Name)); err != nil {
			return written, errors.Wrapf(err, "writing %s", r.Name)
		}
		written = append(written, r)
	}

	return written, nil
}
