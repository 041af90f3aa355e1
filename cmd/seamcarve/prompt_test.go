package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/esimov/seamcarve"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt_ShouldReadAllAnswers(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	req, err := prompt(strings.NewReader("image.ppm\n5 4\n3 4\n"), &out, true)
	require.NoError(t, err)

	assert.Equal(&request{filename: "image.ppm", width: 5, height: 4, targetWidth: 3, targetHeight: 4}, req)
	assert.Equal("Input filename: Input width and height: Input target width and target height: ", out.String())
}

func TestPrompt_ShouldStayQuietWhenPiped(t *testing.T) {
	var out bytes.Buffer
	_, err := prompt(strings.NewReader("image.ppm 5 4 3 4"), &out, false)
	require.NoError(t, err)
	assert.Zero(t, out.Len())
}

func TestPrompt_ShouldRejectInvalidInput(t *testing.T) {
	testCases := []struct {
		input string
		field string
	}{
		{"image.ppm five 4 3 4", "width"},
		{"image.ppm 5 0 3 4", "height"},
		{"image.ppm 5 4 -3 4", "target width"},
		{"image.ppm 5 4 3 x", "target height"},
		{"image.ppm 5 4 6 4", "target width"},
		{"image.ppm 5 4 3 5", "target height"},
	}

	for _, tc := range testCases {
		_, err := prompt(strings.NewReader(tc.input), &bytes.Buffer{}, false)

		var verr *seamcarve.InputValidationError
		if assert.True(t, errors.As(err, &verr), "input %q", tc.input) {
			assert.Equal(t, tc.field, verr.Field, "input %q", tc.input)
		}
	}
}

func TestPrompt_ShouldFailOnMissingAnswers(t *testing.T) {
	_, err := prompt(strings.NewReader("image.ppm 5"), &bytes.Buffer{}, false)
	assert.Error(t, err)

	_, err = prompt(strings.NewReader(""), &bytes.Buffer{}, false)
	assert.Error(t, err)
}
