/*
Package carve is a content aware raster resizing library, which shrinks a
greyscale raster seamlessly by repeatedly removing the one pixel wide path
of lowest visual importance (the seam), both vertically and horizontally.

The package provides a command line interface, which loads a plain-text
greyscale raster (or a common binary image converted to greyscale) and
removes the requested number of seams per axis:

	$ carve image.pgm 2 1

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"
		"github.com/greyseam/carve"
	)

	func main() {
		p := &carve.Processor{
			VerticalSeams:   2,
			HorizontalSeams: 1,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error carving the raster: %s", err.Error())
		}
	}
*/
package carve
