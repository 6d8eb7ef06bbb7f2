package packager

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Move renames src to dst, overwriting dst if it exists. When src and dst
// live on different filesystems (a temp staging area and the target
// volume) rename fails with EXDEV, so fall back to copy and remove.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening packaged file")
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrap(err, "copying packaged file")
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "closing output file")
	}
	return os.Remove(src)
}
