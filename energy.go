package carve

import "github.com/greyseam/carve/utils"

// EnergyMap computes the per-pixel energy of an intensity grid as the
// absolute gradient magnitude along both axes:
//
//	changeX = |I(i,j) - left| + |I(i,j) - right|
//	changeY = |I(i,j) - up|   + |I(i,j) - down|
//
// Neighbors falling outside the grid are substituted with the pixel's
// own value, which keeps the energies finite and comparable at the
// borders without a separate edge pass. The returned grid has the same
// shape as the input and only non-negative entries; a constant-color
// grid yields zero energy everywhere.
func EnergyMap(img Grid) Grid {
	rows, cols := img.Dims()
	energy := NewGrid(rows, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			px := img[i][j]

			left, right, up, down := px, px, px, px
			if j > 0 {
				left = img[i][j-1]
			}
			if j < cols-1 {
				right = img[i][j+1]
			}
			if i > 0 {
				up = img[i-1][j]
			}
			if i < rows-1 {
				down = img[i+1][j]
			}

			changeX := utils.Abs(px-left) + utils.Abs(px-right)
			changeY := utils.Abs(px-up) + utils.Abs(px-down)

			energy[i][j] = changeX + changeY
		}
	}
	return energy
}
