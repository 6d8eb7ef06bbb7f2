// Package iconset renders the fixed Apple iconset catalog of PNG
// renditions from a normalized source image.
package iconset

// Rendition is one entry of the Apple iconset naming convention: a file
// name, a base point size and a retina scale factor.
type Rendition struct {
	Name  string
	Base  int
	Scale int
}

// Pixels returns the rendition's edge length in actual pixels.
func (r Rendition) Pixels() int { return r.Base * r.Scale }

// Catalog is the complete iconset file set, ordered ascending by base
// size then scale. iconutil accepts a sparse subset of these names.
var Catalog = []Rendition{
	{"icon_16x16.png", 16, 1},
	{"icon_16x16@2x.png", 16, 2},
	{"icon_32x32.png", 32, 1},
	{"icon_32x32@2x.png", 32, 2},
	{"icon_128x128.png", 128, 1},
	{"icon_128x128@2x.png", 128, 2},
	{"icon_256x256.png", 256, 1},
	{"icon_256x256@2x.png", 256, 2},
	{"icon_512x512.png", 512, 1},
	{"icon_512x512@2x.png", 512, 2},
	{"icon_1024x1024.png", 1024, 1},
}
