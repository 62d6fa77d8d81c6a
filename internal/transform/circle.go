package transform

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"image-transform-studio/internal/core"
)

// Stroke used for circle annotations.
const strokeWidth = 2

var strokeColor = [core.Channels]float32{1, 0, 0}

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// drawCircle strokes an unfilled circle onto a copy of img. The centre is
// the middle of pixel (cx, cy) and the stroke lies inside the circle of the
// given radius, so nothing is painted beyond it. Parts of the stroke outside
// the image are clipped.
func drawCircle(img *core.Image, cx, cy, radius int) *core.Image {
	out := img.Clone()
	w, h := img.Width(), img.Height()
	if radius <= 0 {
		return out
	}

	outer := float32(radius)
	inner := outer - strokeWidth
	fx, fy := float32(cx)+0.5, float32(cy)+0.5

	if fx+outer <= 0 || fy+outer <= 0 || fx-outer >= float32(w) || fy-outer >= float32(h) {
		return out
	}
	if inner > 0 && farthestCorner(fx, fy, w, h) <= inner {
		return out
	}

	z := vector.NewRasterizer(w, h)
	addCircle(z, fx, fy, outer, 1)
	if inner > 0 {
		// Opposite winding cancels the coverage inside the stroke.
		addCircle(z, fx, fy, inner, -1)
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for c := core.Red; c <= core.Blue; c++ {
		plane := out.Plane(c)
		for i, m := range mask.Pix {
			if m == 0 {
				continue
			}
			a := float32(m) / 255
			plane[i] = plane[i]*(1-a) + strokeColor[c]*a
		}
	}
	return out
}

func farthestCorner(cx, cy float32, w, h int) float32 {
	dx := math.Max(math.Abs(float64(cx)), math.Abs(float64(w)-float64(cx)))
	dy := math.Max(math.Abs(float64(cy)), math.Abs(float64(h)-float64(cy)))
	return float32(math.Hypot(dx, dy))
}

// addCircle appends a closed circular path. dir flips the winding.
func addCircle(z *vector.Rasterizer, cx, cy, r, dir float32) {
	k := kappa * r
	s := dir
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+s*k, cx+k, cy+s*r, cx, cy+s*r)
	z.CubeTo(cx-k, cy+s*r, cx-r, cy+s*k, cx-r, cy)
	z.CubeTo(cx-r, cy-s*k, cx-k, cy-s*r, cx, cy-s*r)
	z.CubeTo(cx+k, cy-s*r, cx+r, cy-s*k, cx+r, cy)
	z.ClosePath()
}
