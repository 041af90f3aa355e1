package seamcarve

import (
	"io"

	"github.com/esimov/seamcarve/utils"
)

// SeamCarver is the interface implemented by Processor.
type SeamCarver interface {
	Carve(*Grid) (*Carver, error)
}

var _ SeamCarver = (*Processor)(nil)

// DefaultSeamColor is used to mark the removed seams when no color is set.
const DefaultSeamColor = "#ff0000"

// Processor options
type Processor struct {
	// Width and Height are the expected source dimensions. Zero accepts
	// whatever the pixel map header declares.
	Width  int
	Height int

	NewWidth  int
	NewHeight int

	SeamColor string
	Spinner   *utils.Spinner
}

// Carve shrinks the grid in place down to NewWidth x NewHeight. A zero
// target leaves that axis untouched. The returned carver holds the final
// state and the source coordinates of every removed pixel.
func (p *Processor) Carve(g *Grid) (*Carver, error) {
	c := NewCarver(g)

	nw, nh := p.NewWidth, p.NewHeight
	if nw == 0 {
		nw = g.Width()
	}
	if nh == 0 {
		nh = g.Height()
	}
	if err := c.Resize(nw, nh); err != nil {
		return c, err
	}
	return c, nil
}

// Process decodes a plain pixel map from r, carves it and encodes
// the result into w. Nothing is written when decoding or carving fails.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	g, err := DecodePPM(r, p.Width, p.Height)
	if err != nil {
		return err
	}
	if _, err := p.Carve(g); err != nil {
		return err
	}
	return EncodePPM(w, g)
}

func (p *Processor) seamColor() string {
	if p.SeamColor == "" {
		return DefaultSeamColor
	}
	return p.SeamColor
}
