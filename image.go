package seamcarve

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// FromImage copies any image into a new grid. The alpha channel is dropped.
func FromImage(img image.Image) (*Grid, error) {
	src := imaging.Clone(img)
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()

	g, err := NewGrid(dx, dy)
	if err != nil {
		return nil, err
	}
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			i := src.PixOffset(x, y)
			g.Set(x, y, Color{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2]})
		}
	}
	return g, nil
}

// Image returns the logical extent of the grid as an opaque NRGBA image.
func (g *Grid) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.At(x, y)
			dst.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}

// isPPM reports whether the file name denotes a plain pixel map.
// Names without extension (pipes) are treated as pixel maps.
func isPPM(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case "", ".ppm", ".pnm":
		return true
	}
	return false
}

// decodeImg decodes the source into a grid, picking the
// pixel map decoder or the generic one depending on the file name.
func decodeImg(r io.Reader, name string, width, height int) (*Grid, error) {
	if isPPM(name) {
		return DecodePPM(r, width, height)
	}
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", filepath.Base(name))
	}
	g, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	if (width != 0 && g.Width() != width) || (height != 0 && g.Height() != height) {
		return nil, formatErrorf("image is %dx%d instead of %dx%d", g.Width(), g.Height(), width, height)
	}
	return g, nil
}

// encodeImg encodes the grid in the format given by the file name extension.
func encodeImg(w io.Writer, name string, g *Grid) error {
	if isPPM(name) {
		return EncodePPM(w, g)
	}
	return encodeRGBA(w, name, g.Image())
}

// encodeRGBA encodes an arbitrary image in the format given by the file name extension.
func encodeRGBA(w io.Writer, name string, img image.Image) error {
	if isPPM(name) {
		g, err := FromImage(img)
		if err != nil {
			return err
		}
		return EncodePPM(w, g)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return errors.Errorf("unsupported image format %q", filepath.Ext(name))
}

// markSeams paints the removed pixels over a copy of the source image.
func markSeams(src *image.NRGBA, removed []image.Point, col color.NRGBA) *image.NRGBA {
	dst := imaging.Clone(src)
	for _, pt := range removed {
		if pt.In(dst.Bounds()) {
			dst.SetNRGBA(pt.X, pt.Y, col)
		}
	}
	return dst
}
