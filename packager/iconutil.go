// Package packager turns a rendered iconset staging directory into a
// single .icns container, either through the external iconutil tool or
// through a built-in encoder.
package packager

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// DefaultBinary is the standard install location of iconutil on macOS.
const DefaultBinary = "/usr/bin/iconutil"

// ErrToolMissing reports that the packaging binary does not exist at the
// configured path. Distinct from a tool run that failed.
var ErrToolMissing = errors.New("packaging tool not installed")

// ExitError reports a packaging tool run that returned a non-zero exit
// code. The code is propagated unchanged as the pipeline's own result.
type ExitError struct {
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("packaging tool exited with code %d", e.Code)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Pack invokes `binary -c icns stagingDir`. The staging directory must be
// named <stem>.iconset; on success the tool deposits <stem>.icns as a
// sibling of it (see OutputPath). Combined output is captured for
// diagnostics only; the exit code alone decides success.
func Pack(binary, stagingDir string) error {
	if _, err := os.Stat(binary); err != nil {
		return errors.Wrapf(ErrToolMissing, "%s", binary)
	}

	out, err := exec.Command(binary, "-c", "icns", stagingDir).CombinedOutput()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return &ExitError{Code: exit.ExitCode(), Output: string(out)}
		}
		return errors.Wrap(err, "running packaging tool")
	}
	return nil
}

// OutputPath returns where the tool deposits its result for a given
// staging directory: the sibling <stem>.icns.
func OutputPath(stagingDir string) string {
	return strings.TrimSuffix(stagingDir, ".iconset") + ".icns"
}
