// img2icns converts a raster image into a multi-resolution Apple .icns
// icon. Renditions are produced per Apple's iconset naming convention and
// packaged with iconutil, or with a built-in encoder on systems without
// it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/img2icns/img2icns/images"
	"github.com/img2icns/img2icns/packager"
	"github.com/img2icns/img2icns/pipeline"
)

// Exit codes. A non-zero exit code from the packaging tool is propagated
// unchanged, so it takes precedence over these when the tool fails.
const (
	exitOK          = 0
	exitInputError  = 1
	exitBadArgument = 2
	exitToolMissing = 3
	exitUsage       = 128
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("img2icns", flag.ExitOnError)
	var (
		infile     string
		outfile    string
		binary     string
		crop       bool
		keepAspect bool
		methodName string
		allSizes   bool
		builtin    bool
	)
	fs.StringVar(&infile, "i", "", "image file, required")
	fs.StringVar(&infile, "infile", "", "image file, required")
	fs.StringVar(&outfile, "o", "", "icns file (default: infile with .icns extension)")
	fs.StringVar(&outfile, "outfile", "", "icns file (default: infile with .icns extension)")
	fs.StringVar(&binary, "binary", packager.DefaultBinary, "path of the iconutil binary")
	fs.BoolVar(&crop, "c", false, "crop the image square before resizing")
	fs.BoolVar(&crop, "crop", false, "crop the image square before resizing")
	fs.BoolVar(&keepAspect, "k", false, "keep aspect ratio by padding to square")
	fs.BoolVar(&keepAspect, "keep-aspect", false, "keep aspect ratio by padding to square")
	fs.StringVar(&methodName, "m", "LANCZOS", "resampling method: NEAREST, BILINEAR, BICUBIC, LANCZOS (alias ANTIALIAS)")
	fs.StringVar(&methodName, "method", "LANCZOS", "resampling method: NEAREST, BILINEAR, BICUBIC, LANCZOS (alias ANTIALIAS)")
	fs.BoolVar(&allSizes, "a", false, "render all catalog sizes even when that upscales the source")
	fs.BoolVar(&allSizes, "all-sizes", false, "render all catalog sizes even when that upscales the source")
	fs.BoolVar(&builtin, "g", false, "encode the icns in-process instead of invoking iconutil")
	fs.BoolVar(&builtin, "builtin", false, "encode the icns in-process instead of invoking iconutil")
	fs.Parse(args)

	if infile == "" {
		fs.Usage()
		return exitUsage
	}

	method, err := images.ParseMethod(methodName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitBadArgument
	}

	workDir, err := os.MkdirTemp("", "img2icns-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitInputError
	}

	staging, err := pipeline.Run(pipeline.Options{
		Infile:     infile,
		Outfile:    outfile,
		Binary:     binary,
		WorkDir:    workDir,
		KeepAspect: keepAspect,
		Crop:       crop,
		Method:     method,
		AllSizes:   allSizes,
		Builtin:    builtin,
		Progress:   os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		switch {
		case errors.Is(err, packager.ErrToolMissing):
			// The renditions are complete; only the packaging step is
			// unavailable. Keep them so the user can run iconutil by hand.
			fmt.Fprintf(os.Stderr, "Please install %s (renditions kept in %s)\n", binary, staging)
			return exitToolMissing
		case errors.Is(err, pipeline.ErrInputNotFound):
			os.RemoveAll(workDir)
			return exitInputError
		default:
			var exit *packager.ExitError
			if errors.As(err, &exit) {
				fmt.Fprintf(os.Stderr, "Renditions kept in %s\n", staging)
				return exit.Code
			}
			os.RemoveAll(workDir)
			return exitInputError
		}
	}

	os.RemoveAll(workDir)
	fmt.Println("Done")
	return exitOK
}
