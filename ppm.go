package seamcarve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// maxColorValue is the only channel depth accepted in a pixel map.
const maxColorValue = 255

// DecodePPM reads a plain (P3) pixel map. When width or height are non-zero
// the header must carry exactly those dimensions.
func DecodePPM(r io.Reader, width, height int) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}
		if err := sc.Err(); err != nil {
			return "", false, errors.Wrap(err, "could not read the pixel map")
		}
		return "", false, nil
	}
	// nextInt reports false once the input is exhausted.
	nextInt := func(what string) (int, bool, error) {
		tok, ok, err := next()
		if err != nil || !ok {
			return 0, false, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, false, formatErrorf("read a non-integer %s value %q", what, tok)
		}
		return v, true, nil
	}
	header := func(what string) (int, error) {
		v, ok, err := nextInt(what)
		if err == nil && !ok {
			err = formatErrorf("missing %s", what)
		}
		return v, err
	}

	tag, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatErrorf("empty pixel map")
	}
	if len(tag) != 2 || (tag[0] != 'P' && tag[0] != 'p') || tag[1] != '3' {
		return nil, formatErrorf("type is %s instead of P3", tag)
	}

	w, err := header("width")
	if err != nil {
		return nil, err
	}
	h, err := header("height")
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, formatErrorf("invalid dimensions %dx%d", w, h)
	}
	if width != 0 && w != width {
		return nil, formatErrorf("input width (%d) does not match value in file (%d)", width, w)
	}
	if height != 0 && h != height {
		return nil, formatErrorf("input height (%d) does not match value in file (%d)", height, h)
	}

	colorMax, err := header("maximum color")
	if err != nil {
		return nil, err
	}
	if colorMax != maxColorValue {
		return nil, formatErrorf("maximum color value is %d instead of %d", colorMax, maxColorValue)
	}

	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}

	var ch [3]uint8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for i := range ch {
				v, ok, err := nextInt("color")
				if err != nil {
					return nil, err
				}
				if !ok {
					return nil, formatErrorf("not enough color values")
				}
				if v < 0 || v > maxColorValue {
					return nil, formatErrorf("invalid color value %d", v)
				}
				ch[i] = uint8(v)
			}
			g.Set(x, y, Color{R: ch[0], G: ch[1], B: ch[2]})
		}
	}

	tok, ok, err := next()
	if err != nil {
		return nil, err
	}
	if ok {
		if _, err := strconv.Atoi(tok); err == nil {
			return nil, formatErrorf("too many color values")
		}
		return nil, formatErrorf("unexpected trailing token %q", tok)
	}
	return g, nil
}

// EncodePPM writes the logical extent of the grid as a plain (P3) pixel map.
func EncodePPM(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", g.Width(), g.Height(), maxColorValue)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.At(x, y)
			fmt.Fprintf(bw, "%d %d %d ", c.R, c.G, c.B)
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "could not write the pixel map")
}
