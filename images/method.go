// Package images provides the geometry and resampling primitives used to
// build icon renditions from a source image.
package images

import (
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Method selects the interpolation algorithm used when resizing.
type Method int

const (
	// Nearest uses nearest-neighbor interpolation (fastest, lowest quality).
	Nearest Method = iota
	// Bilinear uses bilinear interpolation.
	Bilinear
	// Bicubic uses bicubic interpolation.
	Bicubic
	// Lanczos uses Lanczos resampling with a=3 (slowest, best quality).
	Lanczos
)

// methodNames maps user-facing names to methods. ANTIALIAS and LANCZOS are
// the same algorithm under two historical names.
var methodNames = map[string]Method{
	"NEAREST":   Nearest,
	"BILINEAR":  Bilinear,
	"BICUBIC":   Bicubic,
	"LANCZOS":   Lanczos,
	"ANTIALIAS": Lanczos,
}

// ParseMethod resolves a method name, case-insensitively, to a Method.
// Unknown names are an error rather than a silent default: resizing with a
// different algorithm than the caller asked for is surprising behavior.
func ParseMethod(name string) (Method, error) {
	m, ok := methodNames[strings.ToUpper(name)]
	if !ok {
		return Nearest, errors.Errorf("unknown resampling method %q (valid: NEAREST, BILINEAR, BICUBIC, LANCZOS, ANTIALIAS)", name)
	}
	return m, nil
}

// Filter returns the resize interpolation function implementing m.
func (m Method) Filter() resize.InterpolationFunction {
	switch m {
	case Bilinear:
		return resize.Bilinear
	case Bicubic:
		return resize.Bicubic
	case Lanczos:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

func (m Method) String() string {
	switch m {
	case Bilinear:
		return "BILINEAR"
	case Bicubic:
		return "BICUBIC"
	case Lanczos:
		return "LANCZOS"
	default:
		return "NEAREST"
	}
}
