package seamcarve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePPM = "P3\n3 2\n255\n" +
	"255 0 0 0 255 0 0 0 255 \n" +
	"10 20 30 40 50 60 70 80 90 \n"

func TestPPM_Decode(t *testing.T) {
	assert := assert.New(t)

	g, err := DecodePPM(strings.NewReader(samplePPM), 3, 2)
	require.NoError(t, err)

	assert.Equal(3, g.Width())
	assert.Equal(2, g.Height())
	assert.Equal(Color{R: 255}, g.At(0, 0))
	assert.Equal(Color{G: 255}, g.At(1, 0))
	assert.Equal(Color{B: 255}, g.At(2, 0))
	assert.Equal(Color{R: 70, G: 80, B: 90}, g.At(2, 1))
}

func TestPPM_RoundTrip(t *testing.T) {
	g, err := DecodePPM(strings.NewReader(samplePPM), 0, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, g))
	assert.Equal(t, samplePPM, buf.String())
}

func TestPPM_DecodeShouldAcceptLooseWhitespaceAndLowerCaseTag(t *testing.T) {
	g, err := DecodePPM(strings.NewReader("p3 1\t1\n\n255   7\n8 9"), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 7, G: 8, B: 9}, g.At(0, 0))
}

func TestPPM_EncodeShouldWriteTheLogicalExtent(t *testing.T) {
	g, err := DecodePPM(strings.NewReader(samplePPM), 0, 0)
	require.NoError(t, err)
	require.NoError(t, NewCarver(g).RemoveSeam(Vertical, Seam{0, 0}))

	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, g))
	assert.Equal(t, "P3\n2 2\n255\n0 255 0 0 0 255 \n40 50 60 70 80 90 \n", buf.String())
}

func TestPPM_DecodeErrors(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		width  int
		height int
	}{
		{"empty", "", 0, 0},
		{"binary tag", "P6 1 1 255 0 0 0", 0, 0},
		{"long tag", "P33 1 1 255 0 0 0", 0, 0},
		{"non-integer width", "P3 x 1 255 0 0 0", 0, 0},
		{"missing height", "P3 1", 0, 0},
		{"zero width", "P3 0 1 255", 0, 0},
		{"width mismatch", "P3 2 1 255 0 0 0 0 0 0", 3, 1},
		{"height mismatch", "P3 1 1 255 0 0 0", 1, 2},
		{"max color", "P3 1 1 65535 0 0 0", 0, 0},
		{"color above range", "P3 1 1 255 0 256 0", 0, 0},
		{"negative color", "P3 1 1 255 0 -1 0", 0, 0},
		{"non-integer color", "P3 1 1 255 0 1.5 0", 0, 0},
		{"not enough values", "P3 2 1 255 0 0 0 0 0", 0, 0},
		{"too many values", "P3 1 1 255 0 0 0 0", 0, 0},
		{"trailing garbage", "P3 1 1 255 0 0 0 end", 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := DecodePPM(strings.NewReader(tc.input), tc.width, tc.height)
			assert.Nil(t, g)

			var ferr *FormatError
			assert.True(t, errors.As(err, &ferr), "got %v", err)
		})
	}
}
