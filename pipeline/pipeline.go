// Package pipeline drives the full image-to-icns conversion: decode,
// square normalization, multiscale rendering, packaging and the final
// move to the requested output path. The whole run is synchronous; the
// only blocking step is the awaited packaging subprocess. Concurrent runs
// are safe as long as each uses its own WorkDir.
package pipeline

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/img2icns/img2icns/iconset"
	"github.com/img2icns/img2icns/images"
	"github.com/img2icns/img2icns/packager"
)

// ErrInputNotFound reports a source path that does not reference a
// readable image file.
var ErrInputNotFound = errors.New("input file not found")

// Options configures a single conversion run.
type Options struct {
	// Infile is the source image path. Any format the decoder recognizes
	// is accepted; the format is sniffed from content, not the extension.
	Infile string
	// Outfile is the target .icns path. Empty means a sibling of Infile
	// with the extension replaced by .icns.
	Outfile string
	// Binary is the path of the external packaging tool.
	Binary string
	// WorkDir is a run-private directory holding the staging area. The
	// caller owns its lifetime.
	WorkDir string
	// KeepAspect pads the image to square before rendering.
	KeepAspect bool
	// Crop cuts a centered square before rendering. KeepAspect wins when
	// both are set: the padded image is already square, so the crop is a
	// no-op.
	Crop bool
	// Method selects the resampling filter.
	Method images.Method
	// AllSizes renders the full catalog even when that upscales the
	// source.
	AllSizes bool
	// Builtin encodes the container in-process instead of invoking the
	// external tool. The built-in encoder derives its sizes from the
	// normalized image, so Method and AllSizes do not apply.
	Builtin bool
	// Progress receives one line per step. Nil discards progress output.
	Progress io.Writer
}

// Run executes the conversion. It returns the staging directory path so
// the caller can report or keep the rendered PNGs when packaging fails.
func Run(opts Options) (string, error) {
	logf := func(format string, args ...interface{}) {
		if opts.Progress != nil {
			fmt.Fprintf(opts.Progress, format+"\n", args...)
		}
	}

	if fi, err := os.Stat(opts.Infile); err != nil || fi.IsDir() {
		return "", errors.Wrapf(ErrInputNotFound, "%s", opts.Infile)
	}
	src, err := imaging.Open(opts.Infile)
	if err != nil {
		return "", errors.Wrapf(ErrInputNotFound, "decoding %s: %v", opts.Infile, err)
	}

	stem := Stem(opts.Infile)
	outfile := opts.Outfile
	if outfile == "" {
		outfile = filepath.Join(filepath.Dir(opts.Infile), stem+".icns")
	}

	img := image.Image(src)
	if opts.KeepAspect && !isSquare(img) {
		logf("Padding image")
		img = images.Square(img, images.ModePad)
	}
	if opts.Crop && !isSquare(img) {
		logf("Cropping image")
		img = images.Square(img, images.ModeCrop)
	}

	if opts.Builtin {
		logf("Creating file: %s", outfile)
		return "", packager.EncodeBuiltin(img, outfile)
	}

	staging := filepath.Join(opts.WorkDir, stem+".iconset")
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return "", errors.Wrap(err, "creating staging directory")
	}

	written, err := iconset.Render(img, opts.Method, opts.AllSizes, staging)
	if err != nil {
		return staging, err
	}
	for _, r := range written {
		logf("Processed: %s", r.Name)
	}

	if err := packager.Pack(opts.Binary, staging); err != nil {
		return staging, err
	}

	logf("Creating file: %s", outfile)
	if err := packager.Move(packager.OutputPath(staging), outfile); err != nil {
		return staging, err
	}
	return staging, nil
}

// Stem returns the file name of path up to the first dot. The staging
// directory and the packaged file both take their name from it.
func Stem(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

func isSquare(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() == b.Dy()
}
