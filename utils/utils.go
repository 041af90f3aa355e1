package utils

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Contains returns true if the value is found in the slice.
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// HexToRGBA converts a color expressed as a hexadecimal string to an opaque NRGBA color.
func HexToRGBA(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
