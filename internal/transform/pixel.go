package transform

import "image-transform-studio/internal/core"

// maxIntensity is the top of the normalised intensity scale.
const maxIntensity = 1.0

func negative(img *core.Image) *core.Image {
	out := core.NewImage(img.Width(), img.Height())
	for i, v := range img.Pix {
		out.Pix[i] = maxIntensity - v
	}
	return out
}

func isolateChannel(img *core.Image, c core.Channel) *core.Image {
	out := core.NewImage(img.Width(), img.Height())
	copy(out.Plane(c), img.Plane(c))
	return out
}
