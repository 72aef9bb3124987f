package carve

import (
	"fmt"
	"io"
)

// SeamCarver is the interface implemented by the Processor. It takes
// an intensity grid and returns the carved grid.
type SeamCarver interface {
	Carve(Grid) (Grid, error)
}

var _ SeamCarver = (*Processor)(nil)

// Processor options
type Processor struct {
	VerticalSeams   int
	HorizontalSeams int
	Debug           bool
}

// Carve resizes the grid through the SeamCarver interface.
func Carve(s SeamCarver, img Grid) (Grid, error) {
	return s.Carve(img)
}

// Carve removes the requested number of vertical and horizontal seams
// from the grid. Each removal recomputes the energy and cumulative
// energy maps from scratch, since the energies of the pixels adjacent
// to the previous seam have changed. Horizontal seams are carved by
// transposing the grid, reapplying the vertical algorithm and
// transposing the result back.
func (p *Processor) Carve(img Grid) (Grid, error) {
	var err error

	if err = img.Validate(); err != nil {
		return nil, err
	}

	if img, err = p.carve(img, p.VerticalSeams); err != nil {
		return nil, err
	}

	if p.HorizontalSeams > 0 {
		img = img.Transpose()
		if img, err = p.carve(img, p.HorizontalSeams); err != nil {
			return nil, err
		}
		img = img.Transpose()
	}
	return img, nil
}

// carve removes n vertical seams sequentially. The iterations are
// strictly ordered: each one operates on the grid shrunk by the
// previous one.
func (p *Processor) carve(img Grid, n int) (Grid, error) {
	var err error

	for i := 0; i < n; i++ {
		rows, cols := img.Dims()
		c := NewCarver(cols, rows)

		energy := EnergyMap(img)
		cum := c.ComputeSeams(energy)
		seams := c.FindLowestEnergySeams(cum)

		img, err = c.RemoveSeam(img, seams)
		if err != nil {
			return nil, err
		}
	}
	return img, nil
}

// Process reads a plain-text greyscale raster from r, carves the
// requested number of seams per axis and writes the rendering of the
// carved raster to w.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, _, err := DecodePGM(r)
	if err != nil {
		return err
	}

	if p.Debug {
		DebugMaps(w, img)
		fmt.Fprintln(w)
	}

	res, err := Carve(p, img)
	if err != nil {
		return err
	}

	res.Fprint(w)
	return nil
}

// DebugMaps renders the energy and cumulative energy maps of the grid
// to w, in the order they are produced by the pipeline.
func DebugMaps(w io.Writer, img Grid) {
	rows, cols := img.Dims()
	c := NewCarver(cols, rows)

	energy := EnergyMap(img)
	fmt.Fprintln(w, "Energy map:")
	energy.Fprint(w)

	fmt.Fprintln(w, "\nCumulative energy map:")
	c.ComputeSeams(energy).Fprint(w)
}
