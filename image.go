package carve

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// maxPixelValue is the upper bound of the intensities produced by the
// binary image loader.
const maxPixelValue = 255

// DecodeImage reads a binary raster (PNG, JPEG, GIF, BMP or WebP) from
// r and converts it to a greyscale intensity grid with 255 as the
// maximum pixel value.
func DecodeImage(r io.Reader) (Grid, int, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not decode the source image")
	}
	return imgToGrid(src), maxPixelValue, nil
}

// imgToGrid converts any image type to an intensity grid holding the
// grayscale luminance of each pixel.
func imgToGrid(src image.Image) Grid {
	gray := imaging.Grayscale(src)
	dx, dy := gray.Bounds().Dx(), gray.Bounds().Dy()

	img := NewGrid(dy, dx)
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			// The image is grayscale, so the R channel carries the luminance.
			img[y][x] = int(gray.Pix[y*gray.Stride+x*4])
		}
	}
	return img
}
