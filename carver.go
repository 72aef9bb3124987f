package carve

import (
	"github.com/pkg/errors"

	"github.com/greyseam/carve/utils"
)

// ErrTooNarrow is returned when a seam removal is requested on a grid
// which has no column left to spare.
var ErrTooNarrow = errors.New("cannot remove a seam from a grid with a single column")

// Seam is one pixel of the lowest-energy path, identified by its
// column (X) and row (Y). A full seam holds exactly one pixel per row.
type Seam struct {
	X int
	Y int
}

// Carver computes and removes the lowest-energy vertical seam of a
// grid. A new carver has to be instantiated for every removal, since
// the energies of the pixels adjacent to a removed seam change.
type Carver struct {
	Width  int
	Height int
}

// NewCarver returns an initialized carver for a grid of the given dimensions.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:  width,
		Height: height,
	}
}

// ComputeSeams builds the cumulative energy table of the energy map:
// row 0 is copied verbatim, then each cell gets its own energy summed
// with the minimum cumulative energy of the up to three connected
// cells in the row above. The lowest value in the last row marks the
// end of the lowest-energy seam.
func (c *Carver) ComputeSeams(energy Grid) Grid {
	cum := energy.Clone()

	for y := 1; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			left, middle, right := cum[y-1][x], cum[y-1][x], cum[y-1][x]
			// Do not compute edge cases: pixels are far left.
			if x > 0 {
				left = cum[y-1][x-1]
			}
			// Do not compute edge cases: pixels are far right.
			if x < c.Width-1 {
				right = cum[y-1][x+1]
			}
			cum[y][x] += utils.Min(utils.Min(left, middle), right)
		}
	}
	return cum
}

// FindLowestEnergySeams traces back the lowest-energy seam through the
// cumulative energy table, starting from the minimal cell of the last
// row and walking up. Ties are always broken towards the leftmost
// column, which makes the result deterministic.
//
// At every step only the three connected parent positions are
// compared. Searching the parent row for a matching value instead
// would pick an arbitrary, possibly unconnected column whenever the
// row holds duplicate cumulative energies.
func (c *Carver) FindLowestEnergySeams(cum Grid) []Seam {
	seams := make([]Seam, 0, c.Height)

	// The seam ends at the lowest cell of the bottom row.
	px := 0
	for x := 1; x < c.Width; x++ {
		if cum[c.Height-1][x] < cum[c.Height-1][px] {
			px = x
		}
	}
	seams = append(seams, Seam{X: px, Y: c.Height - 1})

	// Walk up the table, keeping only the connected candidates
	// {px-1, px, px+1} clipped to the grid. The left parent wins a
	// tie with the middle one, the right parent never wins a tie.
	for y := c.Height - 2; y >= 0; y-- {
		best := px
		if px > 0 && cum[y][px-1] <= cum[y][px] {
			best = px - 1
		}
		if px < c.Width-1 && cum[y][px+1] < cum[y][best] {
			best = px + 1
		}
		px = best
		seams = append(seams, Seam{X: px, Y: y})
	}
	return seams
}

// RemoveSeam deletes the seam pixel of every row from the grid,
// shifting the remaining pixels left, so each row shrinks by exactly
// one element. The grid is mutated in place and returned.
func (c *Carver) RemoveSeam(img Grid, seams []Seam) (Grid, error) {
	if c.Width <= 1 {
		return img, ErrTooNarrow
	}
	for _, s := range seams {
		row := img[s.Y]
		img[s.Y] = append(row[:s.X], row[s.X+1:]...)
	}
	return img, nil
}
