package seamcarve

import (
	"image"

	"github.com/pkg/errors"
)

// State is the stage a carving run is in.
type State int

const (
	Carving State = iota
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Carving:
		return "carving"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Carver removes the lowest energy seams from a grid, in place.
type Carver struct {
	grid  *Grid
	state State
	// Removed holds the source coordinates of every pixel removed so far.
	Removed []image.Point
}

// NewCarver returns a carver operating on g.
func NewCarver(g *Grid) *Carver {
	return &Carver{grid: g}
}

// Grid returns the grid being carved.
func (c *Carver) Grid() *Grid { return c.grid }

// State returns the state of the last Resize call.
func (c *Carver) State() State { return c.state }

// FindLowestEnergySeam traces a seam from every possible start position and
// returns the one with the lowest total energy. On ties the first one wins.
func (c *Carver) FindLowestEnergySeam(dir Direction) (Seam, int) {
	_, span := c.axis(dir)

	minSeam, minEnergy := c.TraceSeam(dir, 0)
	for start := 1; start < span; start++ {
		seam, energy := c.TraceSeam(dir, start)
		if energy < minEnergy {
			minSeam, minEnergy = seam, energy
		}
	}
	return minSeam, minEnergy
}

// RemoveSeam deletes the seam pixels, shifting the remaining ones toward the
// lower index, and shrinks the grid by one along the seam's axis.
func (c *Carver) RemoveSeam(dir Direction, seam Seam) error {
	length, span := c.axis(dir)
	if !seam.Valid(length, span) {
		return errors.Wrapf(ErrInvalidSeam, "%s seam of length %d over %dx%d grid",
			dir, len(seam), c.grid.Width(), c.grid.Height())
	}

	g := c.grid
	switch dir {
	case Vertical:
		for y, x := range seam {
			c.Removed = append(c.Removed, g.Origin(x, y))
			g.shiftRow(x, y)
		}
		g.width--
	case Horizontal:
		for x, y := range seam {
			c.Removed = append(c.Removed, g.Origin(x, y))
			g.shiftColumn(x, y)
		}
		g.height--
	}
	return nil
}

// Resize carves the grid down to the target dimensions. While both axes
// still need shrinking a vertical and a horizontal seam are removed in
// the same iteration.
func (c *Carver) Resize(targetWidth, targetHeight int) error {
	c.state = Carving
	if err := ValidateDimensions(c.grid.Width(), c.grid.Height(), targetWidth, targetHeight); err != nil {
		c.state = Failed
		return err
	}

	for c.grid.Width() > targetWidth || c.grid.Height() > targetHeight {
		if c.grid.Width() > targetWidth {
			if err := c.shrink(Vertical); err != nil {
				return err
			}
		}
		if c.grid.Height() > targetHeight {
			if err := c.shrink(Horizontal); err != nil {
				return err
			}
		}
	}
	c.state = Done
	return nil
}

// shrink removes the lowest energy seam of the given direction.
func (c *Carver) shrink(dir Direction) error {
	seam, _ := c.FindLowestEnergySeam(dir)
	if err := c.RemoveSeam(dir, seam); err != nil {
		c.state = Failed
		return err
	}
	return nil
}
