package packager

import (
	"image"
	"os"

	"github.com/jackmordaunt/icns/v3"
	"github.com/pkg/errors"
)

// EncodeBuiltin writes img as an .icns container directly, without the
// external tool. The encoder derives the embedded sizes from the image
// itself, so no staging directory is involved. Used on systems where
// iconutil is unavailable.
func EncodeBuiltin(img image.Image, outfile string) error {
	f, err := os.Create(outfile)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	if err := icns.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding icns")
	}
	return errors.Wrap(f.Close(), "closing output file")
}
