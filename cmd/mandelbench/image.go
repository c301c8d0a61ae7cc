package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/mandelbrot"
)

// encoders maps an output file extension to its image encoder.
var encoders = map[string]func(io.Writer, image.Image) error{
	".png":  png.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// countsImage stores row-major counts as 16-bit gray samples, one per
// pixel. Counts are at most IterLimit, so the dump is lossless.
func countsImage(counts []uint32, dims mandelbrot.Dimensions) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, dims.Width, dims.Height))
	for y := range dims.Height {
		row := counts[y*dims.Width : (y+1)*dims.Width]
		for x, c := range row {
			img.SetGray16(x, y, color.Gray16{Y: uint16(c)})
		}
	}
	return img
}

// writeImage encodes counts to path, choosing the format from its extension.
func writeImage(path string, counts []uint32, dims mandelbrot.Dimensions) (err error) {
	encode, ok := encoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("unsupported image format %q (want .png or .tiff)", filepath.Ext(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := encode(f, countsImage(counts, dims)); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
