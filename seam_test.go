package seamcarve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stripes returns vertical stripes whose red channel per column is
// 0, 0, 0, 100, giving the column energies 10000, 0, 10000, 0.
func stripes(x, y int) Color {
	if x == 3 {
		return Color{R: 100}
	}
	return Color{}
}

func TestSeam_SelectStepPrecedence(t *testing.T) {
	testCases := []struct {
		name     string
		energies [3]int
		want     int
	}{
		{"strict straight", [3]int{1, 2, 3}, 0},
		{"strict preferred", [3]int{2, 1, 3}, 1},
		{"strict other", [3]int{5, 5, 1}, 2},
		{"three way tie", [3]int{5, 5, 5}, 0},
		{"straight ties preferred", [3]int{1, 1, 5}, 0},
		{"straight ties other", [3]int{1, 5, 1}, 0},
		{"side to side tie", [3]int{5, 1, 1}, 1},
		{"other unreachable", [3]int{3, 2, unreachable}, 1},
		{"both sides unreachable", [3]int{7, unreachable, unreachable}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var c [3]step
			for i, e := range tc.energies {
				c[i] = step{offset: i, energy: e}
			}
			got, ok := selectStep(c)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got.offset)
		})
	}
}

func TestSeam_SelectStepShouldAlwaysMatchARule(t *testing.T) {
	const n = 6
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				candidates := [3]step{{0, a}, {1, b}, {-1, c}}
				got, ok := selectStep(candidates)

				assert.True(t, ok, "energies %d %d %d", a, b, c)
				assert.Equal(t, min(a, b, c), got.energy, "energies %d %d %d", a, b, c)
			}
		}
	}
}

func TestSeam_Valid(t *testing.T) {
	assert := assert.New(t)

	assert.True(Seam{1, 2, 2, 1}.Valid(4, 3))
	assert.False(Seam{1, 2, 2}.Valid(4, 3))
	assert.False(Seam{1, 3, 2, 1}.Valid(4, 3))
	assert.False(Seam{0, 2, 2, 1}.Valid(4, 3))
	assert.False(Seam{-1, 0, 0, 0}.Valid(4, 3))
}

func TestSeam_TraceStraightOnUniformImage(t *testing.T) {
	assert := assert.New(t)

	c := NewCarver(newTestGrid(t, 3, 3, uniform(Color{})))
	for start := 0; start < 3; start++ {
		seam, energy := c.TraceSeam(Vertical, start)
		assert.Equal(Seam{start, start, start}, seam)
		assert.Zero(energy)

		seam, energy = c.TraceSeam(Horizontal, start)
		assert.Equal(Seam{start, start, start}, seam)
		assert.Zero(energy)
	}
}

func TestSeam_TraceVerticalSeam(t *testing.T) {
	c := NewCarver(newTestGrid(t, 4, 3, stripes))

	testCases := []struct {
		start  int
		seam   Seam
		energy int
	}{
		{0, Seam{0, 1, 1}, 10000},
		{1, Seam{1, 1, 1}, 0},
		// Both sides are equal, the tracer moves right.
		{2, Seam{2, 3, 3}, 10000},
		{3, Seam{3, 3, 3}, 0},
	}
	for _, tc := range testCases {
		seam, energy := c.TraceSeam(Vertical, tc.start)
		assert.Equal(t, tc.seam, seam, "start %d", tc.start)
		assert.Equal(t, tc.energy, energy, "start %d", tc.start)
	}
}

func TestSeam_TraceHorizontalSeam(t *testing.T) {
	c := NewCarver(newTestGrid(t, 3, 4, func(x, y int) Color { return stripes(y, x) }))

	testCases := []struct {
		start  int
		seam   Seam
		energy int
	}{
		{0, Seam{0, 1, 1}, 10000},
		{1, Seam{1, 1, 1}, 0},
		// Both sides are equal, the tracer moves up.
		{2, Seam{2, 1, 1}, 10000},
		{3, Seam{3, 3, 3}, 0},
	}
	for _, tc := range testCases {
		seam, energy := c.TraceSeam(Horizontal, tc.start)
		assert.Equal(t, tc.seam, seam, "start %d", tc.start)
		assert.Equal(t, tc.energy, energy, "start %d", tc.start)
	}
}

func TestSeam_TracedSeamsShouldBeConnected(t *testing.T) {
	c := NewCarver(newTestGrid(t, 9, 7, randomColors(7)))

	for start := 0; start < 9; start++ {
		seam, energy := c.TraceSeam(Vertical, start)
		assert.True(t, seam.Valid(7, 9), "vertical seam %v", seam)
		assert.GreaterOrEqual(t, energy, 0)
	}
	for start := 0; start < 7; start++ {
		seam, energy := c.TraceSeam(Horizontal, start)
		assert.True(t, seam.Valid(9, 7), "horizontal seam %v", seam)
		assert.GreaterOrEqual(t, energy, 0)
	}
}
