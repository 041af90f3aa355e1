package seamcarve

import (
	"image"
	"math"
)

// maxGridPixels caps the number of cells a single grid may hold.
const maxGridPixels = 1 << 28

// Color holds the three 8 bit channels of a pixel.
type Color struct {
	R, G, B uint8
}

// Grid is a shrinkable pixel buffer addressed by (column, row).
// The backing storage is allocated once for the original dimensions;
// removing a seam only reduces the logical width or height.
type Grid struct {
	capWidth  int
	capHeight int
	width     int
	height    int
	pix       []Color
	// origin holds the source offset of every cell and is shifted together with pix.
	origin []int
}

// NewGrid allocates a width x height grid filled with black pixels.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrAllocation
	}
	if width > math.MaxInt/height || width*height > maxGridPixels {
		return nil, ErrAllocation
	}
	n := width * height
	g := &Grid{
		capWidth:  width,
		capHeight: height,
		width:     width,
		height:    height,
		pix:       make([]Color, n),
		origin:    make([]int, n),
	}
	for i := range g.origin {
		g.origin[i] = i
	}
	return g, nil
}

// Width returns the logical width of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the logical height of the grid.
func (g *Grid) Height() int { return g.height }

// Bounds returns the rectangle of the source image the grid was created for.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.capWidth, g.capHeight)
}

// At returns the color at column x, row y.
func (g *Grid) At(x, y int) Color {
	return g.pix[g.offset(x, y)]
}

// Set sets the color at column x, row y.
func (g *Grid) Set(x, y int, c Color) {
	g.pix[g.offset(x, y)] = c
}

// Origin returns the position the pixel at (x, y) had in the source image.
func (g *Grid) Origin(x, y int) image.Point {
	o := g.origin[g.offset(x, y)]
	return image.Point{X: o % g.capWidth, Y: o / g.capWidth}
}

func (g *Grid) offset(x, y int) int {
	return x + y*g.capWidth
}

// shiftRow closes the gap left by the pixel at column x of row y,
// moving every pixel on its right one column to the left.
func (g *Grid) shiftRow(x, y int) {
	start, end := g.offset(x, y), g.offset(g.width-1, y)
	copy(g.pix[start:end], g.pix[start+1:end+1])
	copy(g.origin[start:end], g.origin[start+1:end+1])
}

// shiftColumn closes the gap left by the pixel at row y of column x,
// moving every pixel below it one row up.
func (g *Grid) shiftColumn(x, y int) {
	for j := y; j < g.height-1; j++ {
		dst, src := g.offset(x, j), g.offset(x, j+1)
		g.pix[dst] = g.pix[src]
		g.origin[dst] = g.origin[src]
	}
}
