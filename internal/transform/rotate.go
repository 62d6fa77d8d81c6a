package transform

import (
	"image/color"

	"github.com/disintegration/imaging"

	"image-transform-studio/internal/core"
)

// rotate turns img counter-clockwise by degrees. The canvas grows to hold
// every rotated pixel; uncovered corners are black.
func rotate(img *core.Image, degrees float64) *core.Image {
	rotated := imaging.Rotate(img.ToNRGBA(), degrees, color.Black)
	return core.FromImage(rotated)
}
