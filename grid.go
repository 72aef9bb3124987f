package carve

import (
	"fmt"
	"io"
	"strings"
)

// Grid is a rectangular, row-major raster of greyscale intensities.
// Every row has the same length at all times; RemoveSeam is the only
// operation which mutates a grid, shrinking each row by one element.
type Grid [][]int

// NewGrid allocates a zero-filled grid of the requested dimensions.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	return g
}

// Dims returns the number of rows and columns of the grid.
// A grid with zero rows has zero columns.
func (g Grid) Dims() (rows, cols int) {
	rows = len(g)
	if rows > 0 {
		cols = len(g[0])
	}
	return rows, cols
}

// Validate checks that the grid is non-empty and rectangular.
func (g Grid) Validate() error {
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("grid must have at least one row and one column")
	}
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("grid is not rectangular: row %d has %d columns, expected %d", i, len(row), cols)
		}
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	dst := make(Grid, len(g))
	for i, row := range g {
		dst[i] = make([]int, len(row))
		copy(dst[i], row)
	}
	return dst
}

// Transpose returns a new grid with rows and columns swapped.
// Carving horizontal seams is done by transposing the grid, removing
// vertical seams and transposing the result back.
func (g Grid) Transpose() Grid {
	rows, cols := g.Dims()
	dst := NewGrid(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j][i] = g[i][j]
		}
	}
	return dst
}

// Fprint renders the grid to w, one row per line, each cell zero-padded
// to three digits, i.e. " 007  042  255 ".
func (g Grid) Fprint(w io.Writer) {
	for _, row := range g {
		for _, px := range row {
			fmt.Fprintf(w, " %03d ", px)
		}
		fmt.Fprintln(w)
	}
}

// String implements fmt.Stringer using the Fprint rendering.
func (g Grid) String() string {
	var sb strings.Builder
	g.Fprint(&sb)
	return sb.String()
}
