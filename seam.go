package seamcarve

import "math"

// Direction tells along which axis a seam runs.
type Direction int

const (
	// Vertical seams hold one column per row; removing one shrinks the width.
	Vertical Direction = iota
	// Horizontal seams hold one row per column; removing one shrinks the height.
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "unknown"
}

// Seam is a connected path through the grid. Entry i holds the column
// visited on row i for a vertical seam and the row visited on column i
// for a horizontal seam.
type Seam []int

// Valid reports whether the seam has the expected length, stays inside
// [0, span) and moves by at most one position between consecutive entries.
func (s Seam) Valid(length, span int) bool {
	if len(s) != length {
		return false
	}
	for i, p := range s {
		if p < 0 || p >= span {
			return false
		}
		if i > 0 && (p-s[i-1] > 1 || s[i-1]-p > 1) {
			return false
		}
	}
	return true
}

// unreachable marks a candidate lying outside the grid.
const unreachable = math.MaxInt

// step is a candidate move of the tracer: the offset applied to the current
// position and the energy of the pixel it lands on.
type step struct {
	offset int
	energy int
}

// stepOrder lists the candidate offsets of each direction by precedence:
// straight first, then the side winning a pure side to side tie.
var stepOrder = map[Direction][3]int{
	Vertical:   {0, 1, -1},
	Horizontal: {0, -1, 1},
}

// selectStep picks the next move among the ranked candidates
// [straight, preferred, other]. The rules are tried in order:
//
//  1. a strict minimum on straight,
//  2. a strict minimum on preferred,
//  3. a strict minimum on other,
//  4. straight equal to any side,
//  5. both sides equal, resolved to preferred.
//
// With integer energies one of them always matches; the boolean is false
// only if none did, in which case straight is returned.
func selectStep(c [3]step) (step, bool) {
	straight, preferred, other := c[0], c[1], c[2]

	switch {
	case straight.energy < preferred.energy && straight.energy < other.energy:
		return straight, true
	case preferred.energy < straight.energy && preferred.energy < other.energy:
		return preferred, true
	case other.energy < straight.energy && other.energy < preferred.energy:
		return other, true
	case straight.energy == preferred.energy || straight.energy == other.energy:
		return straight, true
	case preferred.energy == other.energy:
		return preferred, true
	}
	return straight, false
}

// TraceSeam greedily follows the lowest energy neighbour starting from
// the given column (vertical) or row (horizontal) and returns the seam
// together with its accumulated energy.
func (c *Carver) TraceSeam(dir Direction, start int) (Seam, int) {
	length, span := c.axis(dir)
	seam := make(Seam, length)
	seam[0] = start

	pos := start
	total := c.energyAt(dir, pos, 0)
	order := stepOrder[dir]

	for i := 1; i < length; i++ {
		var candidates [3]step
		for k, off := range order {
			candidates[k] = step{offset: off, energy: unreachable}
			if p := pos + off; p >= 0 && p < span {
				candidates[k].energy = c.energyAt(dir, p, i)
			}
		}
		next, _ := selectStep(candidates)

		pos += next.offset
		seam[i] = pos
		total += next.energy
	}
	return seam, total
}

// axis returns the seam length and the range its entries move in.
func (c *Carver) axis(dir Direction) (length, span int) {
	if dir == Horizontal {
		return c.grid.Width(), c.grid.Height()
	}
	return c.grid.Height(), c.grid.Width()
}

// energyAt returns the energy of seam entry i placed at position pos.
func (c *Carver) energyAt(dir Direction, pos, i int) int {
	if dir == Horizontal {
		return c.grid.Energy(i, pos)
	}
	return c.grid.Energy(pos, i)
}
