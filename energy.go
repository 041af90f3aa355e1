package seamcarve

import "github.com/esimov/seamcarve/utils"

// Energy returns the squared color gradient of the pixel at (x, y).
// Neighbours are looked up with wrap-around, so the left neighbour of the
// first column is the last column and the top neighbour of the first row
// is the last row.
func (g *Grid) Energy(x, y int) int {
	left, right := x-1, x+1
	if left < 0 {
		left = g.width - 1
	}
	if right >= g.width {
		right = 0
	}
	up, down := y-1, y+1
	if up < 0 {
		up = g.height - 1
	}
	if down >= g.height {
		down = 0
	}

	return gradient(g.At(left, y), g.At(right, y)) + gradient(g.At(x, up), g.At(x, down))
}

// gradient sums the squared per channel differences of two colors.
func gradient(a, b Color) int {
	dr := utils.Abs(int(a.R) - int(b.R))
	dg := utils.Abs(int(a.G) - int(b.G))
	db := utils.Abs(int(a.B) - int(b.B))

	return dr*dr + dg*dg + db*db
}
